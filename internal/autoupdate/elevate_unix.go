//go:build !windows

package autoupdate

import (
	"context"
	"os"
)

type sudoElevator struct {
	runner Runner
}

func platformElevator(r Runner) Elevator { return sudoElevator{runner: r} }

func (s sudoElevator) Run(ctx context.Context, shell Shell, script string) error {
	name, args := sudoArgs(os.Geteuid() == 0, shell, script)
	return s.runner.Run(ctx, name, args...)
}
