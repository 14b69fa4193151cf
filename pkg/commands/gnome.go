package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/shade/pkg/apply"
	"tableflip.dev/shade/pkg/paths"
)

func addGnome(topLevel *cobra.Command) {
	noIcons := false

	cmd := &cobra.Command{
		Use:   "gnome",
		Short: "Apply GNOME color-scheme and gtk-theme for the current theme.",
		Example: `
shade gnome
shade gnome --no-icons
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := paths.Load()
			if err != nil {
				return err
			}
			t, err := currentTheme(p)
			if err != nil {
				return output.HandleError(err)
			}
			apply.Gnome(t, noIcons)
			return nil
		},
	}

	cmd.Flags().BoolVar(&noIcons, "no-icons", false,
		"Skip the GNOME icon-theme change.")

	topLevel.AddCommand(cmd)
}
