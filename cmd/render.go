package cmd

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/jparise/mandate/internal/mandate"
	"github.com/jparise/mandate/internal/output"
	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"
)

// renderer parses, shifts, and formats command-line dates.
type renderer struct {
	output  *output.Output
	logger  *zap.Logger
	render  func(*mandate.Mandate) string
	offsets []offset
}

// result is one rendered date.
type result struct {
	value string
	valid bool
}

// Run renders inputs with at most jobs in flight and prints the results in
// input order. Unparseable inputs produce a warning and a NaN rendering. It
// returns an error only if every input failed to parse.
func (r *renderer) Run(ctx context.Context, inputs []string, jobs int) error {
	results := make([]result, len(inputs))

	var wg sync.WaitGroup
	var invalidCount atomic.Int32
	sem := semaphore.NewWeighted(int64(jobs))

	for i, input := range inputs {
		if err := sem.Acquire(ctx, 1); err != nil {
			wg.Wait()
			return err
		}

		wg.Add(1)
		go func(i int, input string) {
			defer wg.Done()
			defer sem.Release(1)

			results[i] = r.renderOne(input)
			if !results[i].valid {
				invalidCount.Add(1)
				r.output.Warningf("%q: unrecognized date", input)
			}
		}(i, input)
	}

	wg.Wait()

	for _, res := range results {
		r.output.Result(res.value, res.valid)
	}

	if int(invalidCount.Load()) == len(inputs) {
		return fmt.Errorf("failed to parse all %d dates", len(inputs))
	}

	return nil
}

func (r *renderer) renderOne(input string) result {
	m := parseDate(input)
	r.logger.Debug("parsed date",
		zap.String("input", input),
		zap.Bool("valid", m.Valid()),
		zap.Int64("unixms", m.ToUnixMs()))

	applyOffsets(m, r.offsets)
	return result{value: r.render(m), valid: m.Valid()}
}
