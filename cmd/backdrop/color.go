package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"backdrop/internal/colors"
)

func newColorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "color <text>...",
		Short: "parse a color and print it in every encoding",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return describeColor(cmd.OutOrStdout(), strings.Join(args, " "))
		},
	}
}

func describeColor(w io.Writer, text string) error {
	c, err := colors.Parse(text)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, swatch(c)+" "+headerStyle.Render(text))
	fmt.Fprintln(w, "  "+labelStyle.Render("hex")+c.ToHex())
	fmt.Fprintln(w, "  "+labelStyle.Render("rgb")+c.ToRGB())
	fmt.Fprintln(w, "  "+labelStyle.Render("hsl")+c.ToHSL())
	return nil
}

// swatch renders a small block filled with c.
func swatch(c colors.Color) string {
	hex := c.WithAlpha(1).ToHex()
	return lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("    ")
}
