package cli

import (
	"github.com/spf13/cobra"
)

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for hsmgraph.

To load completions:

Bash:
  $ source <(hsmgraph completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ hsmgraph completion bash > /etc/bash_completion.d/hsmgraph
  # macOS:
  $ hsmgraph completion bash > $(brew --prefix)/etc/bash_completion.d/hsmgraph

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ hsmgraph completion zsh > "${fpath[1]}/_hsmgraph"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ hsmgraph completion fish | source

  # To load completions for each session, execute once:
  $ hsmgraph completion fish > ~/.config/fish/completions/hsmgraph.fish

PowerShell:
  PS> hsmgraph completion powershell | Out-String | Invoke-Expression

  # To load completions for every new session, run:
  PS> hsmgraph completion powershell > hsmgraph.ps1
  # and source this file from your PowerShell profile.
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(cmd.OutOrStdout())
			case "zsh":
				return cmd.Root().GenZshCompletion(cmd.OutOrStdout())
			case "fish":
				return cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(cmd.OutOrStdout())
			}
			return nil
		},
	}

	return cmd
}
