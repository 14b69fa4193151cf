// Package commands wires up the shade command tree.
package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/shade/pkg/commands/options"
)

var output = &options.OutputOptions{}

func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shade",
		Short: base.Wrap80("Atomic desktop theme switcher."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addSet(topLevel)
	addCurrent(topLevel)
	addThemes(topLevel)
	addWallpaper(topLevel)
	addReload(topLevel)
	addGnome(topLevel)
	addVersion(topLevel)
}
