package commands

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"tableflip.dev/shade/pkg/paths"
	"tableflip.dev/shade/pkg/theme"
	"tableflip.dev/shade/pkg/wallpaper"
)

func addThemes(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "themes",
		Aliases: []string{"list", "ls"},
		Short:   "List the installed themes.",
		Example: `
shade themes
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := paths.Load()
			if err != nil {
				return err
			}

			names, err := theme.List(p.DataDir)
			if err != nil {
				return err
			}

			table := uitable.New()
			table.MaxColWidth = 50
			table.AddRow("NAME", "VARIANT", "ICONS", "WALLPAPERS")

			for _, name := range names {
				t, err := theme.Load(p.DataDir, name)
				if err != nil {
					warn := color.New(color.Faint)
					_, _ = warn.Fprintf(os.Stderr, "skipping %s: %v\n", name, err)
					continue
				}

				variant := "dark"
				if t.IsLight {
					variant = "light"
				}
				icons := t.IconTheme
				if icons == "" {
					icons = "-"
				}
				count := len(wallpaper.Collect(p.UserBackgroundsDir(name), t.BackgroundsDir))

				table.AddRow(t.Name, variant, icons, count)
			}

			fmt.Println(table)
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}
