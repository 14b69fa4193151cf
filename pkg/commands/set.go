package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"tableflip.dev/shade/pkg/commands/options"
	"tableflip.dev/shade/pkg/paths"
	"tableflip.dev/shade/pkg/runner/set"
	"tableflip.dev/shade/pkg/store"
	"tableflip.dev/shade/pkg/theme"
)

func addSet(topLevel *cobra.Command) {
	ao := &options.ApplyOptions{}

	cmd := &cobra.Command{
		Use:   "set [theme]",
		Short: "Switch to a theme.",
		Long: "Render the named theme and publish it atomically, then apply it " +
			"to the running desktop.\n\nWith no argument, pick a theme interactively.",
		Example: `
shade set catppuccin
shade set nord --no-wallpaper
shade set
`,
		Args: cobra.MaximumNArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return themeCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := paths.Load()
			if err != nil {
				return err
			}

			var name string
			if len(args) == 1 {
				name = args[0]
			} else if name, err = pickTheme(p); err != nil {
				return err
			}

			s := set.Set{
				Paths:       p,
				ThemeName:   name,
				Persistence: store.Load(p.ThemesDir),
				NoApply:     ao.NoApply,
				NoGnome:     ao.NoGnome,
				NoIcons:     ao.NoIcons,
				NoReload:    ao.NoReload,
				NoWallpaper: ao.NoWallpaper,
			}
			return output.HandleError(s.Do(context.Background()))
		},
	}

	options.AddApplyArgs(cmd, ao)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}

// pickTheme prompts for one of the installed themes.
func pickTheme(p *paths.Paths) (string, error) {
	names, err := theme.List(p.DataDir)
	if err != nil {
		return "", err
	}
	if len(names) == 0 {
		return "", errors.New("no themes installed")
	}

	prompt := promptui.Select{
		HideHelp: true,
		Label:    "Theme",
		Items:    names,
		Size:     10,
	}

	_, name, err := prompt.Run()
	return name, err
}

func themeCompletions(prefix string) []string {
	p, err := paths.Load()
	if err != nil {
		return nil
	}
	names, err := theme.List(p.DataDir)
	if err != nil {
		return nil
	}

	var matches []string
	for _, n := range names {
		if strings.HasPrefix(n, prefix) {
			matches = append(matches, n)
		}
	}
	return matches
}
