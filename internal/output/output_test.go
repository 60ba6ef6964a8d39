package output

import (
	"bytes"
	"strings"
	"sync"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		colorize bool
	}{
		{
			name:     "with colors",
			colorize: true,
		},
		{
			name:     "without colors",
			colorize: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout := &bytes.Buffer{}
			stderr := &bytes.Buffer{}

			output := New(stdout, stderr, tt.colorize)
			colorFuncs := []struct {
				name string
				fn   func(string) string
			}{
				{"cyan", output.cyan},
				{"green", output.green},
				{"yellow", output.yellow},
				{"red", output.red},
			}
			for _, cf := range colorFuncs {
				if cf.fn == nil {
					t.Errorf("New() %s color func is nil", cf.name)
				}
				s := cf.fn("test")
				if tt.colorize {
					if s == "test" {
						t.Errorf("New() expected %s color func to return ANSI codes", cf.name)
					}
				} else {
					if s != "test" {
						t.Errorf("New() expected %s color func to return plain string, got %q", cf.name, s)
					}
				}
			}
		})
	}
}

func TestResult(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		valid    bool
		colorize bool
		want     string
	}{
		{
			name:  "valid plain",
			value: "2020-02-01",
			valid: true,
			want:  "2020-02-01\n",
		},
		{
			name:  "invalid plain",
			value: "NaN-NaN-NaN",
			valid: false,
			want:  "NaN-NaN-NaN\n",
		},
		{
			name:     "valid colored",
			value:    "2020-02-01",
			valid:    true,
			colorize: true,
			want:     "2020-02-01",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout := &bytes.Buffer{}
			stderr := &bytes.Buffer{}
			output := New(stdout, stderr, tt.colorize)

			output.Result(tt.value, tt.valid)

			got := stdout.String()
			if tt.colorize {
				if !strings.Contains(got, tt.want) || !strings.Contains(got, "\x1b[") {
					t.Errorf("Result() output = %q, want colored %q", got, tt.want)
				}
			} else if got != tt.want {
				t.Errorf("Result() output = %q, want %q", got, tt.want)
			}
			if stderr.Len() != 0 {
				t.Errorf("Result() wrote to stderr: %q", stderr.String())
			}
		})
	}
}

func TestTable(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	output := New(stdout, stderr, false)

	rows := [][]string{
		{"hour", "0.5"},
		{"day", "0.020833333333333332"},
	}
	if err := output.Table([]string{"UNIT", "DIFF"}, rows, false, 80); err != nil {
		t.Fatalf("Table() unexpected error: %v", err)
	}

	got := stdout.String()
	for _, want := range []string{"hour\t0.5\n", "day\t0.020833333333333332\n"} {
		if !strings.Contains(got, want) {
			t.Errorf("Table() output = %q, want to contain %q", got, want)
		}
	}
	if stderr.Len() != 0 {
		t.Errorf("Table() wrote to stderr: %q", stderr.String())
	}
}

func TestWarningf(t *testing.T) {
	tests := []struct {
		name   string
		format string
		args   []any
		want   string
	}{
		{
			name:   "simple warning",
			format: "something went wrong",
			want:   "Warning: something went wrong",
		},
		{
			name:   "with format args",
			format: "%q: unrecognized date (%d of %d)",
			args:   []any{"xyzzy", 1, 3},
			want:   `Warning: "xyzzy": unrecognized date (1 of 3)`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout := &bytes.Buffer{}
			stderr := &bytes.Buffer{}
			output := New(stdout, stderr, false)

			output.Warningf(tt.format, tt.args...)
			got := stderr.String()

			if !strings.Contains(got, tt.want) {
				t.Errorf("Warningf() output = %q, want to contain %q", got, tt.want)
			}

			if stdout.Len() != 0 {
				t.Errorf("Warningf() wrote to stdout: %q", stdout.String())
			}
		})
	}
}

func TestInfof(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	output := New(stdout, stderr, false)

	output.Infof("comparing %s with %s", "2020-02-01", "2020-02-02")

	if got, want := stderr.String(), "comparing 2020-02-01 with 2020-02-02\n"; got != want {
		t.Errorf("Infof() output = %q, want %q", got, want)
	}
	if stdout.Len() != 0 {
		t.Errorf("Infof() wrote to stdout: %q", stdout.String())
	}
}

func TestOutputThreadSafety(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	output := New(stdout, stderr, false)

	const numGoroutines = 10
	const numCalls = 100

	var wg sync.WaitGroup
	wg.Add(numGoroutines * 3)

	for i := 0; i < numGoroutines; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < numCalls; j++ {
				output.Result("2020-02-01", true)
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < numCalls; j++ {
				output.Warningf("warning")
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < numCalls; j++ {
				output.Infof("info")
			}
		}()
	}

	wg.Wait()

	stdoutLines := strings.Count(stdout.String(), "\n")
	stderrLines := strings.Count(stderr.String(), "\n")

	if want := numGoroutines * numCalls; stdoutLines != want {
		t.Errorf("stdout lines = %d, want %d", stdoutLines, want)
	}
	if want := numGoroutines * numCalls * 2; stderrLines != want {
		t.Errorf("stderr lines = %d, want %d (Warningf + Infof)", stderrLines, want)
	}
}
