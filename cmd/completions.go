package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	helpmenus "github.com/hopinc/hop-cli/tui/help-menus"
)

var completionsCmd = &cobra.Command{
	Use:       "completions <shell>",
	Short:     "Generate shell completion scripts",
	ValidArgs: []string{"zsh", "fish", "bash", "powershell"},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	Annotations: map[string]string{
		skipUpdateCheckAnnotation: "true",
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		root := cmd.Root()

		switch args[0] {
		case "zsh":
			return root.GenZshCompletion(out)
		case "fish":
			return root.GenFishCompletion(out, true)
		case "bash":
			return root.GenBashCompletionV2(out, true)
		case "powershell":
			return root.GenPowerShellCompletionWithDesc(out)
		}
		return fmt.Errorf("unsupported shell: %s", args[0])
	},
}

func init() {
	completionsCmd.SetHelpFunc(helpmenus.HelpFunc(helpmenus.CompletionsPage))
	rootCmd.AddCommand(completionsCmd)
}
