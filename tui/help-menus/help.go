// Package helpmenus renders the styled --help pages of hop's commands.
package helpmenus

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

// Row is a left/right pair such as a flag and its description.
type Row struct {
	Key  string
	Text string
}

// Page is the content of one help screen.
type Page struct {
	Title       string
	Subtitle    string
	Usage       []string
	Description []string
	Flags       []Row
	Examples    []Row
}

// Render writes p to out.
func Render(out io.Writer, p Page) {
	initStyles(out)

	var b strings.Builder
	b.WriteString(headerStyle.Render(strings.ToUpper(p.Title) + "\n" + p.Subtitle))
	b.WriteString("\n")

	section := func(name string) {
		b.WriteString(sectionStyle.Render("● " + name))
		b.WriteString("\n\n")
	}

	if len(p.Usage) > 0 {
		section("USAGE")
		for _, u := range p.Usage {
			b.WriteString("  " + commandStyle.Render(u) + "\n")
		}
		b.WriteString("\n")
	}
	if len(p.Description) > 0 {
		section("DESCRIPTION")
		for _, d := range p.Description {
			b.WriteString("  " + descStyle.Render(d) + "\n")
		}
		b.WriteString("\n")
	}
	if len(p.Flags) > 0 {
		section("FLAGS")
		for _, f := range p.Flags {
			b.WriteString("  " + flagStyle.Render(f.Key) + descStyle.Render(f.Text) + "\n")
		}
		b.WriteString("\n")
	}
	if len(p.Examples) > 0 {
		section("EXAMPLES")
		for _, e := range p.Examples {
			b.WriteString("  " + exampleStyle.Render("# "+e.Text) + "\n")
			b.WriteString("  " + commandStyle.Render(e.Key) + "\n\n")
		}
	}

	fmt.Fprint(out, b.String())
}

// UpdatePage describes `hop update`.
func UpdatePage() Page {
	return Page{
		Title:    "update command",
		Subtitle: "Update hop to the latest version",
		Usage:    []string{"hop update [flags]"},
		Description: []string{
			"Downloads the newest release for this platform and replaces the",
			"running hop binary. Administrator rights are requested once, and",
			"only when the install location is not writable.",
			"On Linux, shell completions are reinstalled as well.",
		},
		Flags: []Row{
			{Key: "--beta", Text: "Include prereleases"},
			{Key: "--force", Text: "Reinstall even when already up-to-date"},
			{Key: "--check", Text: "Only report whether an update is available"},
			{Key: "-o, --output", Text: "Output format for --check: text, json, yaml"},
			{Key: "--skip-completions", Text: "Do not reinstall shell completions"},
		},
		Examples: []Row{
			{Key: "hop update", Text: "Update to the latest stable release"},
			{Key: "hop update --check -o json", Text: "Check for updates from a script"},
		},
	}
}

// CompletionsPage describes `hop completions`.
func CompletionsPage() Page {
	return Page{
		Title:    "completions command",
		Subtitle: "Generate shell completion scripts",
		Usage:    []string{"hop completions <zsh|fish|bash|powershell>"},
		Description: []string{
			"Writes a completion script for the given shell to standard output.",
		},
		Examples: []Row{
			{Key: "hop completions zsh > \"${fpath[1]}/_hop\"", Text: "Install zsh completions"},
			{Key: "hop completions fish > ~/.config/fish/completions/hop.fish", Text: "Install fish completions"},
		},
	}
}

// HelpFunc adapts a Page to cobra's SetHelpFunc.
func HelpFunc(page func() Page) func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, _ []string) {
		Render(cmd.OutOrStdout(), page())
	}
}
