package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"tableflip.dev/shade/pkg/paths"
	"tableflip.dev/shade/pkg/store"
	"tableflip.dev/shade/pkg/theme"
)

func addCurrent(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "current",
		Short: "Print the active theme name.",
		Example: `
shade current
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := paths.Load()
			if err != nil {
				return err
			}
			name, err := store.Load(p.ThemesDir).CurrentTheme()
			if err != nil {
				return output.HandleError(err)
			}
			fmt.Println(name)
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}

// currentTheme loads the theme recorded by the last successful set.
func currentTheme(p *paths.Paths) (*theme.Theme, error) {
	name, err := store.Load(p.ThemesDir).CurrentTheme()
	if err != nil {
		return nil, err
	}
	return theme.Load(p.DataDir, name)
}
