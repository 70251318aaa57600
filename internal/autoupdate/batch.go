package autoupdate

// Command is one shell snippet and whether it needs elevated rights.
type Command struct {
	Script   string
	Elevated bool
}

// Batch collects update commands, tagging each by whether its target is
// writable. It is executed once.
type Batch struct {
	probe    Probe
	commands []Command
	consumed bool
}

// NewBatch returns an empty Batch. A nil probe defaults to IsWritable.
func NewBatch(probe Probe) *Batch {
	if probe == nil {
		probe = IsWritable
	}
	return &Batch{probe: probe}
}

// Add appends script, tagged as elevated unless target is writable.
func (b *Batch) Add(target, script string) {
	b.commands = append(b.commands, Command{
		Script:   script,
		Elevated: !b.probe(target),
	})
}

// Commands returns every command in insertion order.
func (b *Batch) Commands() []Command {
	out := make([]Command, len(b.commands))
	copy(out, b.commands)
	return out
}

// Direct returns the scripts that run without elevation, in order.
func (b *Batch) Direct() []string { return b.scripts(false) }

// Elevated returns the scripts that need elevation, in order.
func (b *Batch) Elevated() []string { return b.scripts(true) }

// Empty reports whether nothing was planned.
func (b *Batch) Empty() bool { return len(b.commands) == 0 }

func (b *Batch) scripts(elevated bool) []string {
	var out []string
	for _, c := range b.commands {
		if c.Elevated == elevated {
			out = append(out, c.Script)
		}
	}
	return out
}
