package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"backdrop/internal/core"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(18)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Width(10)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "list variants and their parameters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv()
			if err != nil {
				return err
			}
			listVariants(cmd.OutOrStdout(), e)
			return nil
		},
	}
}

func listVariants(w io.Writer, e *env) {
	for _, name := range core.Names() {
		v := core.Variants()[name](core.Env{Params: e.cfg.Params(name), Rand: e.rng, Palette: e.theme})
		fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("%s (max %d fps)", name, v.MaxFPS())))
		p, ok := v.(core.ParameterProvider)
		if !ok {
			continue
		}
		for _, param := range p.Parameters() {
			fmt.Fprintln(w, "  "+labelStyle.Render(param.Key)+valueStyle.Render(param.Value)+dimStyle.Render(param.Description))
		}
	}
}
