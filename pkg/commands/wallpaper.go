package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/shade/pkg/paths"
	"tableflip.dev/shade/pkg/wallpaper"
)

func addWallpaper(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "wallpaper",
		Aliases: []string{"bg"},
		Short:   "Cycle to the next wallpaper for the current theme.",
		Example: `
shade wallpaper
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
			return output.HandleError(wallpaper.Cycle(p, t))
		},
	}

	topLevel.AddCommand(cmd)
}
