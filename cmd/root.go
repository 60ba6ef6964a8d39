package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/cli/go-gh/v2/pkg/term"
	"github.com/jparise/mandate/internal/config"
	"github.com/jparise/mandate/internal/mandate"
	"github.com/jparise/mandate/internal/output"
	"github.com/jparise/mandate/internal/timeparse"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// colorMode represents when to use colored output.
type colorMode string

const (
	colorAuto   colorMode = "auto"
	colorAlways colorMode = "always"
	colorNever  colorMode = "never"
)

// String is used both by fmt.Print and by Cobra in help text.
func (c *colorMode) String() string {
	return string(*c)
}

// Set must have pointer receiver to validate and set the value.
func (c *colorMode) Set(v string) error {
	switch v {
	case "auto", "always", "never":
		*c = colorMode(v)
		return nil
	default:
		return fmt.Errorf("must be one of \"auto\", \"always\", or \"never\"")
	}
}

// Type is only used in help text.
func (c *colorMode) Type() string {
	return "colorMode"
}

const defaultPattern = "YYYY-MM-DD hh:mm:ss"

// presets maps built-in preset names to patterns. The "unix" and "unixms"
// presets render epoch numbers instead of a pattern.
var presets = map[string]string{
	"date":     "YYYY-MM-DD",
	"datetime": defaultPattern,
	"western":  "MMMM Do, YYYY",
	"euro":     "D MMMM YYYY",
}

var (
	version = "dev"

	// Flags.
	color      = colorAuto
	format     string
	preset     string
	adds       []string
	subs       []string
	configPath string
	jobs       int
	verbose    bool

	logger = zap.NewNop()
	cfg    = &config.Config{}
)

var rootCmd = &cobra.Command{
	Use:   "mandate [flags] [<date>...]",
	Short: "Format, shift, and compare dates",
	Long: `mandate renders dates using a token pattern.

<date> can be an ISO 8601 timestamp, a common written form such as
"February 1, 2020", or a natural-language phrase such as "next friday".
With no dates, the current time is used.

Pattern tokens:
  YYYY YY        Year
  MMMM MMM       Month name (full, abbreviated)
  MM M           Month number
  DD D Do        Day of month (padded, plain, ordinal)
  HH H hh h      Hour (24-hour, 12-hour)
  mm m ss s      Minute, second
  SS S           Millisecond (padded, plain)
  A a            AM/PM, am/pm

Examples:
  mandate
  mandate -f "MMMM Do, YYYY" 2020-02-01
  mandate -p western "next friday"
  mandate --add 1month --sub 3d 2020-01-31
  mandate diff 2020-02-01 2020-03-01 --unit day
  mandate compare --day "2020-02-01 08:00" "2020-02-01 20:00"`,
	Version: version,
	Args:    cobra.ArbitraryArgs,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		logger, err = newLogger(verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		logger.Debug("loaded configuration",
			zap.String("path", configPath),
			zap.String("format", cfg.Format),
			zap.Int("formats", len(cfg.Formats)))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if jobs < 1 || jobs > 100 {
			return fmt.Errorf("--jobs must be between 1 and 100, got %d", jobs)
		}
		if format != "" && preset != "" {
			return fmt.Errorf("--format and --preset cannot be combined")
		}
		if _, err := parseOffsets(adds, subs); err != nil {
			return err
		}
		return nil
	},
	RunE: run,
}

func init() {
	rootCmd.PersistentFlags().Var(&color, "color",
		"colorize output: auto, always, never")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"configuration file (default: $XDG_CONFIG_HOME/mandate/config.yml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"enable debug logging")

	rootCmd.Flags().StringVarP(&format, "format", "f", "",
		"format pattern (e.g., \"YYYY-MM-DD\")")
	rootCmd.Flags().StringVarP(&preset, "preset", "p", "",
		"named format: date, datetime, western, euro, unix, unixms, or a configured alias")
	rootCmd.Flags().StringSliceVar(&adds, "add", []string{},
		"offsets to add (e.g., 1month, 3d, week)")
	rootCmd.Flags().StringSliceVar(&subs, "sub", []string{},
		"offsets to subtract (e.g., 2h, 1y)")
	rootCmd.Flags().IntVarP(&jobs, "jobs", "j", 10,
		"maximum dates formatted concurrently")

	rootCmd.AddCommand(diffCmd, compareCmd)
}

func Execute() error {
	return rootCmd.Execute()
}

func newLogger(verbose bool) (*zap.Logger, error) {
	logConfig := zap.NewProductionConfig()
	logConfig.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if verbose {
		logConfig.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return logConfig.Build()
}

// useColor reports whether output should be colorized for mode.
func useColor(mode colorMode) bool {
	switch mode {
	case colorAlways:
		return true
	case colorNever:
		return false
	default:
		return term.FromEnv().IsColorEnabled()
	}
}

// resolveRenderer returns the function used to render each date. An explicit
// pattern wins, then a preset (built-in or configured alias), then the
// configured default format, then defaultPattern.
func resolveRenderer(pattern, preset string, cfg *config.Config) (func(*mandate.Mandate) string, error) {
	if pattern != "" {
		return formatWith(pattern), nil
	}

	if preset != "" {
		switch preset {
		case "unix":
			return func(m *mandate.Mandate) string {
				return strconv.FormatFloat(m.ToUnix(), 'f', -1, 64)
			}, nil
		case "unixms":
			return func(m *mandate.Mandate) string {
				if !m.Valid() {
					return "NaN"
				}
				return strconv.FormatInt(m.ToUnixMs(), 10)
			}, nil
		}
		if p, ok := presets[preset]; ok {
			return formatWith(p), nil
		}
		if p, ok := cfg.Pattern(preset); ok {
			return formatWith(p), nil
		}
		return nil, fmt.Errorf("unknown preset %q", preset)
	}

	if cfg.Format != "" {
		return formatWith(cfg.Format), nil
	}
	return formatWith(defaultPattern), nil
}

func formatWith(pattern string) func(*mandate.Mandate) string {
	return func(m *mandate.Mandate) string {
		return m.Format(pattern)
	}
}

// offset is a parsed --add or --sub value.
type offset struct {
	amount int
	unit   mandate.Unit
}

// parseOffsets parses --add values followed by --sub values. Subtractions
// are stored as negated amounts.
func parseOffsets(adds, subs []string) ([]offset, error) {
	var offsets []offset
	for _, group := range []struct {
		flag   string
		values []string
		sign   int
	}{
		{"--add", adds, 1},
		{"--sub", subs, -1},
	} {
		for _, v := range group.values {
			o, err := timeparse.ParseOffset(v)
			if err != nil {
				return nil, fmt.Errorf("invalid %s: %w", group.flag, err)
			}
			unit, err := mandate.ParseUnit(o.Unit)
			if err != nil {
				return nil, fmt.Errorf("invalid %s: %w", group.flag, err)
			}
			offsets = append(offsets, offset{amount: group.sign * o.Amount, unit: unit})
		}
	}
	return offsets, nil
}

// applyOffsets shifts m by each offset in order.
func applyOffsets(m *mandate.Mandate, offsets []offset) *mandate.Mandate {
	for _, o := range offsets {
		m.Add(o.amount, o.unit)
	}
	return m
}

// parseDate parses a command-line date argument. "now" is the current time.
func parseDate(s string) *mandate.Mandate {
	if s == "now" {
		return mandate.New()
	}
	return mandate.Parse(s)
}

func run(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	render, err := resolveRenderer(format, preset, cfg)
	if err != nil {
		return err
	}

	offsets, err := parseOffsets(adds, subs)
	if err != nil {
		return err
	}

	if len(args) == 0 {
		args = []string{"now"}
	}

	out := output.New(cmd.OutOrStdout(), cmd.ErrOrStderr(), useColor(color))
	r := &renderer{
		output:  out,
		logger:  logger,
		render:  render,
		offsets: offsets,
	}
	return r.Run(ctx, args, jobs)
}
