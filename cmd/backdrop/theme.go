package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"backdrop/internal/theme"
)

func newThemeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "theme",
		Short: "print the configured palettes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv()
			if err != nil {
				return err
			}
			return printTheme(cmd.OutOrStdout(), e.theme)
		},
	}
}

func printTheme(w io.Writer, th *theme.Theme) error {
	active := th.Mode()
	defer func() { _ = th.SetMode(active) }()
	for _, mode := range th.Modes() {
		if err := th.SetMode(mode); err != nil {
			return err
		}
		title := mode
		if mode == active {
			title += " (active)"
		}
		fmt.Fprintln(w, headerStyle.Render(title))
		for _, name := range []string{theme.Background, theme.Foreground, theme.Accent, theme.Muted} {
			c, err := theme.Resolve(th, name)
			if err != nil {
				return err
			}
			fmt.Fprintln(w, "  "+swatch(c)+" "+labelStyle.Render(name)+dimStyle.Render(c.ToHex()))
		}
	}
	return nil
}
