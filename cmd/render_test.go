package cmd

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/jparise/mandate/internal/output"
	"go.uber.org/zap"
)

func newTestRenderer(pattern string, offsets []offset) (*renderer, *bytes.Buffer, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	return &renderer{
		output:  output.New(stdout, stderr, false),
		logger:  zap.NewNop(),
		render:  formatWith(pattern),
		offsets: offsets,
	}, stdout, stderr
}

func TestRendererRun(t *testing.T) {
	tests := []struct {
		name     string
		inputs   []string
		offsets  []offset
		jobs     int
		want     string
		wantWarn []string
		wantErr  bool
	}{
		{
			name:   "single date",
			inputs: []string{"2020-06-15T12:00:00Z"},
			jobs:   1,
			want:   "2020-06\n",
		},
		{
			name:     "preserves input order",
			inputs:   []string{"2020-06-15T12:00:00Z", "xyzzy", "2021-07-15T12:00:00Z", "2019-01-15T12:00:00Z"},
			jobs:     4,
			want:     "2020-06\nNaN-NaN\n2021-07\n2019-01\n",
			wantWarn: []string{`"xyzzy": unrecognized date`},
		},
		{
			name:    "applies offsets",
			inputs:  []string{"2020-06-15T12:00:00Z"},
			offsets: []offset{{1, "month"}, {-1, "year"}},
			jobs:    1,
			want:    "2019-07\n",
		},
		{
			name:     "all invalid",
			inputs:   []string{"xyzzy", "plugh"},
			jobs:     2,
			want:     "NaN-NaN\nNaN-NaN\n",
			wantWarn: []string{`"xyzzy": unrecognized date`, `"plugh": unrecognized date`},
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, stdout, stderr := newTestRenderer("YYYY-MM", tt.offsets)

			err := r.Run(context.Background(), tt.inputs, tt.jobs)
			if (err != nil) != tt.wantErr {
				t.Errorf("Run() error = %v, wantErr %v", err, tt.wantErr)
			}

			if got := stdout.String(); got != tt.want {
				t.Errorf("Run() output = %q, want %q", got, tt.want)
			}

			for _, want := range tt.wantWarn {
				if !strings.Contains(stderr.String(), want) {
					t.Errorf("Run() stderr = %q, want to contain %q", stderr.String(), want)
				}
			}
			if len(tt.wantWarn) == 0 && stderr.Len() != 0 {
				t.Errorf("Run() unexpected stderr: %q", stderr.String())
			}
		})
	}
}

func TestRendererRunCanceled(t *testing.T) {
	r, stdout, _ := newTestRenderer("YYYY", nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := r.Run(ctx, []string{"2020-06-15T12:00:00Z"}, 1); err == nil {
		t.Error("Run() with canceled context expected error, got nil")
	}
	if stdout.Len() != 0 {
		t.Errorf("Run() with canceled context wrote output: %q", stdout.String())
	}
}
