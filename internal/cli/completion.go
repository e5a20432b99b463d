package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/boxgrid/pkg/content"
	"github.com/matzehuels/boxgrid/pkg/glyph"
	"github.com/matzehuels/boxgrid/pkg/grid"
)

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for boxgrid.

Besides commands and flags, the scripts complete the values of --style,
--preset, --flow, --justify, --align and --format, and offer only TOML
files for --config.

Load completions for the current session:

  $ source <(boxgrid completion bash)
  $ source <(boxgrid completion zsh)
  $ boxgrid completion fish | source
  PS> boxgrid completion powershell | Out-String | Invoke-Expression

To load them for every session, write the script to your shell's
completion directory, for example:

  $ boxgrid completion bash > /etc/bash_completion.d/boxgrid
  $ boxgrid completion zsh > "${fpath[1]}/_boxgrid"
  $ boxgrid completion fish > ~/.config/fish/completions/boxgrid.fish
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

// completeLayoutFlags registers value completions for the flags added by
// addLayoutFlags.
func completeLayoutFlags(cmd *cobra.Command) {
	presets := make([]string, len(content.Presets))
	for i, p := range content.Presets {
		presets[i] = string(p)
	}
	values := map[string][]string{
		"style":   glyph.Names(),
		"preset":  presets,
		"flow":    {grid.FlowRow.String(), grid.FlowColumn.String()},
		"justify": {grid.JustifyLeft.String(), grid.JustifyCenter.String(), grid.JustifyRight.String()},
		"align":   {grid.AlignTop.String(), grid.AlignCenter.String(), grid.AlignBottom.String()},
	}
	for name, v := range values {
		_ = cmd.RegisterFlagCompletionFunc(name, cobra.FixedCompletions(v, cobra.ShellCompDirectiveNoFileComp))
	}
	_ = cmd.MarkFlagFilename("config", "toml")
}
