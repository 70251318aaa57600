package cmd

import (
	"fmt"
	"os"

	"github.com/hopinc/hop-cli/tui"
)

func PrintError(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, tui.RenderError(err))
	}
}
