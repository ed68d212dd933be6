// Command backdrop renders procedural background animations in a window or
// to PNG frames.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"backdrop/internal/config"
	"backdrop/internal/core"
	"backdrop/internal/logging"
	_ "backdrop/internal/sims/briansbrain"
	_ "backdrop/internal/sims/bubbles"
	_ "backdrop/internal/sims/gradients"
	_ "backdrop/internal/sims/life"
	_ "backdrop/internal/sims/majority"
	_ "backdrop/internal/sims/topography"
	"backdrop/internal/theme"
)

var (
	configFile string
	logLevel   string
	logFormat  string
	themeMode  string
	seed       int64
	variant    string
	sets       []string
)

// errBadSet is returned for malformed --set values.
var errBadSet = errors.New("expected variant.key=value")

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "backdrop",
		Short:         "procedural background animations",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	pf := root.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	pf.StringVar(&logFormat, "log-format", "", "log format (text, json)")
	pf.StringVar(&themeMode, "theme", "", "palette mode (light, dark)")
	pf.Int64Var(&seed, "seed", 0, "random seed (0 seeds from the clock)")
	pf.StringVar(&variant, "variant", "", "variant to show (empty picks one at random)")
	pf.StringArrayVar(&sets, "set", nil, "variant parameter as variant.key=value (repeatable)")

	root.AddCommand(newRunCmd(), newRenderCmd(), newListCmd(), newColorCmd(), newThemeCmd())
	return root
}

// env is everything a subcommand needs, resolved from config and flags.
type env struct {
	cfg   *config.Config
	log   *slog.Logger
	theme *theme.Theme
	rng   *core.RNG
}

func loadEnv() (*env, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, err
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	if logFormat != "" {
		cfg.Log.Format = logFormat
	}
	if themeMode != "" {
		cfg.Theme.Mode = themeMode
	}
	if seed != 0 {
		cfg.Scheduler.Seed = seed
	}
	if variant != "" {
		cfg.Scheduler.Variant = variant
	}
	for _, s := range sets {
		v, k, val, err := parseSet(s)
		if err != nil {
			return nil, err
		}
		cfg.SetParam(v, k, val)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger, err := logging.New(cfg.Log, os.Stderr)
	if err != nil {
		return nil, err
	}
	slog.SetDefault(logger)

	rng := core.NewClockRNG()
	if cfg.Scheduler.Seed != 0 {
		rng = core.NewRNG(cfg.Scheduler.Seed)
	}
	return &env{cfg: cfg, log: logger, theme: cfg.NewTheme(), rng: rng}, nil
}

// parseSet splits "variant.key=value".
func parseSet(s string) (variant, key, value string, err error) {
	lhs, value, ok := strings.Cut(s, "=")
	if !ok {
		return "", "", "", fmt.Errorf("--set %q: %w", s, errBadSet)
	}
	variant, key, ok = strings.Cut(lhs, ".")
	if !ok || variant == "" || key == "" {
		return "", "", "", fmt.Errorf("--set %q: %w", s, errBadSet)
	}
	return variant, key, value, nil
}
