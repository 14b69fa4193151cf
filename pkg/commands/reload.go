package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/shade/pkg/apply"
	"tableflip.dev/shade/pkg/paths"
)

func addReload(topLevel *cobra.Command) {
	kitty := ""

	cmd := &cobra.Command{
		Use:   "reload",
		Short: "Reload running apps without changing the theme.",
		Example: `
shade reload
shade reload --kitty kitty/theme.conf
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := paths.Load()
			if err != nil {
				return err
			}
			apply.Reload(p, kitty)
			return nil
		},
	}

	cmd.Flags().StringVar(&kitty, "kitty", "",
		"Kitty config path relative to themes/current/ (default kitty.conf).")

	topLevel.AddCommand(cmd)
}
