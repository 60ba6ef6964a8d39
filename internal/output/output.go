// Package output writes mandate results to the terminal.
package output

import (
	"fmt"
	"io"
	"sync"

	"github.com/cli/go-gh/v2/pkg/tableprinter"
	"github.com/mgutz/ansi"
)

// Output handles all output formatting with optional color support.
type Output struct {
	mu     sync.Mutex
	stdout io.Writer
	stderr io.Writer

	cyan   func(string) string
	green  func(string) string
	yellow func(string) string
	red    func(string) string
}

// New creates a new Output with optional color support.
func New(stdout, stderr io.Writer, colorize bool) *Output {
	color := func(name string) func(string) string {
		if colorize {
			return ansi.ColorFunc(name)
		}
		return ansi.ColorFunc("")
	}

	return &Output{
		stdout: stdout,
		stderr: stderr,
		cyan:   color("cyan"),
		green:  color("green+b"),
		yellow: color("yellow"),
		red:    color("red+b"),
	}
}

// Result writes a single rendered date. Results for invalid dates are
// highlighted.
func (o *Output) Result(value string, valid bool) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if valid {
		fmt.Fprintln(o.stdout, o.green(value))
	} else {
		fmt.Fprintln(o.stdout, o.red(value))
	}
}

// Table writes rows under a header. On a terminal the columns are aligned and
// truncated to width; otherwise fields are tab-separated.
func (o *Output) Table(header []string, rows [][]string, isTTY bool, width int) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	tp := tableprinter.New(o.stdout, isTTY, width)
	tp.AddHeader(header, tableprinter.WithColor(o.cyan))
	for _, row := range rows {
		for _, field := range row {
			tp.AddField(field)
		}
		tp.EndRow()
	}
	return tp.Render()
}

// Warningf writes a formatted warning message to stderr.
func (o *Output) Warningf(format string, args ...any) {
	o.mu.Lock()
	defer o.mu.Unlock()
	fmt.Fprintf(o.stderr, o.yellow("Warning: ")+format+"\n", args...)
}

// Infof writes a formatted informational message to stderr.
func (o *Output) Infof(format string, args ...any) {
	o.mu.Lock()
	defer o.mu.Unlock()
	fmt.Fprintf(o.stderr, format+"\n", args...)
}
