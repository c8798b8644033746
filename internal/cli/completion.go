package cli

import (
	"github.com/spf13/cobra"
)

// completionCommand creates the completion command for generating shell completions.
// Chart kinds complete for "surveyplot chart <TAB>"; report files complete as paths.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate a shell completion script for surveyplot.

Once loaded, subcommands and flags complete, "surveyplot chart <TAB>" offers
the chart kinds and "surveyplot report <TAB>" offers report files.

Bash (current session, then permanently on Linux):
  $ source <(surveyplot completion bash)
  $ surveyplot completion bash > /etc/bash_completion.d/surveyplot

Zsh (requires compinit):
  $ surveyplot completion zsh > "${fpath[1]}/_surveyplot"

Fish:
  $ surveyplot completion fish > ~/.config/fish/completions/surveyplot.fish

PowerShell:
  PS> surveyplot completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			default:
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
		},
	}

	return cmd
}
