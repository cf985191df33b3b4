package cli

import (
	"github.com/spf13/cobra"
)

// ageSuggestions are offered when completing --age.
var ageSuggestions = []string{
	"3d\tthree days",
	"1w\tone week",
	"2w\ttwo weeks",
	"1m\tone month (30 days)",
}

// completionCommand prints a completion script for the requested shell.
func (c *CLI) completionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate a completion script for depup and print it to stdout.

  $ source <(depup completion bash)
  $ depup completion zsh > "${fpath[1]}/_depup"
  $ depup completion fish > ~/.config/fish/completions/depup.fish
  PS> depup completion powershell | Out-String | Invoke-Expression`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			root := cmd.Root()
			switch args[0] {
			case "bash":
				return root.GenBashCompletionV2(out, true)
			case "zsh":
				return root.GenZshCompletion(out)
			case "fish":
				return root.GenFishCompletion(out, true)
			default:
				return root.GenPowerShellCompletionWithDesc(out)
			}
		},
	}
}

// registerCompletions teaches the shell what the root command's positional
// argument and value flags accept.
func registerCompletions(root *cobra.Command) {
	root.ValidArgsFunction = func(cmd *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		return nil, cobra.ShellCompDirectiveFilterDirs
	}
	_ = root.RegisterFlagCompletionFunc("config", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{"toml"}, cobra.ShellCompDirectiveFilterFileExt
	})
	_ = root.RegisterFlagCompletionFunc("age", cobra.FixedCompletions(ageSuggestions, cobra.ShellCompDirectiveNoFileComp))
}
