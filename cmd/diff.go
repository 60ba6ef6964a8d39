package cmd

import (
	"fmt"
	"math"
	"strconv"

	"github.com/cli/go-gh/v2/pkg/term"
	"github.com/jparise/mandate/internal/mandate"
	"github.com/jparise/mandate/internal/output"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags.
	diffUnit   string
	diffSigned bool
	compareDay bool
)

var diffCmd = &cobra.Command{
	Use:   "diff <date> <other>",
	Short: "Show the difference between two dates",
	Long: `Show <date> minus <other>.

Without --unit, the difference is shown in every unit. Years are fixed
365-day years; months are not supported.

Examples:
  mandate diff 2020-03-01 2020-02-01
  mandate diff --unit day --signed 2020-02-01 2020-03-01`,
	Args: cobra.ExactArgs(2),
	RunE: runDiff,
}

var compareCmd = &cobra.Command{
	Use:   "compare <date> <other>",
	Short: "Compare two dates",
	Long: `Print "<", "=", or ">" as <date> is before, equal to, or after <other>.
"?" is printed when either date is not recognized.

Examples:
  mandate compare 2020-02-01 2020-02-02
  mandate compare --day "2020-02-01 08:00" "2020-02-01 20:00"`,
	Args: cobra.ExactArgs(2),
	RunE: runCompare,
}

func init() {
	diffCmd.Flags().StringVarP(&diffUnit, "unit", "u", "",
		"unit: ms, s, m, h, d, w, or y (default: all)")
	diffCmd.Flags().BoolVar(&diffSigned, "signed", false,
		"keep the sign of the difference")

	compareCmd.Flags().BoolVar(&compareDay, "day", false,
		"dates on the same calendar day are equal")
}

// formatNumber renders f without an exponent.
func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// diffRows returns a row of unit name and difference for each unit.
func diffRows(a, b *mandate.Mandate, units []mandate.Unit, signed bool) [][]string {
	rows := make([][]string, 0, len(units))
	for _, unit := range units {
		rows = append(rows, []string{string(unit), formatNumber(a.Diff(b, unit, !signed))})
	}
	return rows
}

// compareSymbol returns "<", "=", or ">" for a relative to b, or "?" if
// either is invalid. With day set, dates on the same day compare equal.
func compareSymbol(a, b *mandate.Mandate, day bool) string {
	if !a.Valid() || !b.Valid() {
		return "?"
	}
	switch {
	case a.Eq(b, !day):
		return "="
	case a.Lt(b):
		return "<"
	default:
		return ">"
	}
}

func runDiff(cmd *cobra.Command, args []string) error {
	a, b := parseDate(args[0]), parseDate(args[1])
	out := output.New(cmd.OutOrStdout(), cmd.ErrOrStderr(), useColor(color))
	warnInvalid(out, args, a, b)

	if diffUnit != "" {
		unit, err := mandate.ParseUnit(diffUnit)
		if err != nil {
			return err
		}
		if unit == mandate.Month {
			return fmt.Errorf("%s is not a difference unit", unit)
		}
		d := a.Diff(b, unit, !diffSigned)
		logger.Debug("computed difference",
			zap.String("unit", string(unit)),
			zap.Float64("diff", d))
		out.Result(formatNumber(d), !math.IsNaN(d))
		return nil
	}

	terminal := term.FromEnv()
	width, _, err := terminal.Size()
	if err != nil {
		width = 80
	}
	rows := diffRows(a, b, mandate.DiffUnits, diffSigned)
	return out.Table([]string{"UNIT", "DIFF"}, rows, terminal.IsTerminalOutput(), width)
}

func runCompare(cmd *cobra.Command, args []string) error {
	a, b := parseDate(args[0]), parseDate(args[1])
	out := output.New(cmd.OutOrStdout(), cmd.ErrOrStderr(), useColor(color))
	warnInvalid(out, args, a, b)

	symbol := compareSymbol(a, b, compareDay)
	out.Result(symbol, symbol != "?")
	return nil
}

func warnInvalid(out *output.Output, args []string, dates ...*mandate.Mandate) {
	invalid := false
	for i, m := range dates {
		if !m.Valid() {
			out.Warningf("%q: unrecognized date", args[i])
			invalid = true
		}
	}
	if invalid {
		out.Infof("Dates can be written as 2018-10-27, \"July 4, 2005 7:22 pm\", or \"tomorrow\".")
	}
}
