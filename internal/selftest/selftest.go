// Package selftest drives the built in scenarios of the --test mode: each
// input is written to a scratch file, read back through the parser and
// merged, and any mismatch is reported as a "FAILED TEST: <id>" line.
package selftest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-logr/logr"
	"github.com/google/go-cmp/cmp"
	"github.com/henderiw/zipcondense/pkg/interval"
	"github.com/henderiw/zipcondense/pkg/merger"
	"github.com/henderiw/zipcondense/pkg/parser"
)

type stage int

const (
	// check the intervals accepted by the parser
	parsed stage = iota
	// check the merged cover
	merged
)

type scenario struct {
	id       string
	input    string
	stage    stage
	expected []interval.Interval
}

func rng(low, high int) interval.Interval { return interval.MustNew(low, high) }

// scenarios returns the built in scenarios in the order they run.
func scenarios() []scenario {
	return []scenario{
		{id: "1", input: "", stage: merged, expected: []interval.Interval{}},
		{id: "2", input: "[94133,94133]\n[94200,94299]\n[94600,94699]", stage: merged,
			expected: []interval.Interval{rng(94133, 94133), rng(94200, 94299), rng(94600, 94699)}},
		{id: "3", input: "[94133,94133]\n[94200,94299]\n[94226,94399]", stage: merged,
			expected: []interval.Interval{rng(94133, 94133), rng(94200, 94399)}},
		{id: "4", input: "[aaaaa,94133]\n[94200,94299]\n[94226,94399]", stage: parsed,
			expected: []interval.Interval{rng(94200, 94299), rng(94226, 94399)}},
		{id: "5", input: "[-11111,94133]\n[94200,94299]\n[94226,94399]", stage: parsed,
			expected: []interval.Interval{rng(94200, 94299), rng(94226, 94399)}},
	}
}

// ErrFailed is returned by Run when at least one scenario failed.
var ErrFailed = errors.New("self test failed")

// Run executes every scenario, writing progress and failures to w. dir is
// where the scratch file lives, empty selects os.TempDir.
func Run(ctx context.Context, w io.Writer, dir string) error {
	log := logr.FromContextOrDiscard(ctx).WithName("selftest")

	f, err := os.CreateTemp(dir, "zipcondense-*.txt")
	if err != nil {
		return fmt.Errorf("cannot create test file: %w", err)
	}
	name := f.Name()
	f.Close()
	defer func() {
		if err := os.Remove(name); err != nil {
			fmt.Fprintf(w, "Failed to delete file: %s\n", name)
		}
	}()

	fmt.Fprint(w, "\n==== Test failures are indicated with a line that begins with FAILED TEST. ====\n\n")

	failed := 0
	for _, sc := range scenarios() {
		fmt.Fprintf(w, "== Running test %s ==\n", sc.id)
		got, err := sc.run(log, name)
		if err != nil {
			return err
		}
		for _, id := range sc.check(got) {
			fmt.Fprintf(w, "FAILED TEST: %s\n", id)
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%w: %d checks", ErrFailed, failed)
	}
	return nil
}

func (sc scenario) run(log logr.Logger, name string) ([]interval.Interval, error) {
	if err := os.WriteFile(name, []byte(sc.input), 0600); err != nil {
		return nil, fmt.Errorf("cannot write test file: %w", err)
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("cannot open test file: %w", err)
	}
	defer f.Close()

	rr, _, err := parser.New(parser.WithLogger(log)).ReadFrom(f)
	if err != nil {
		return nil, err
	}
	if sc.stage == parsed {
		return rr, nil
	}
	return merger.Merge(log, rr), nil
}

// check returns the ids of the failed checks: a bare id when the number of
// intervals is wrong, otherwise id+"a" for the count and id+"b", id+"c"...
// for each mismatching interval.
func (sc scenario) check(got []interval.Interval) []string {
	if len(sc.expected) == 0 {
		if len(got) != 0 {
			return []string{sc.id}
		}
		return nil
	}
	var failed []string
	if len(got) != len(sc.expected) {
		failed = append(failed, sc.id+"a")
	}
	for i, want := range sc.expected {
		sub := sc.id + string(rune('b'+i))
		if i >= len(got) || !cmp.Equal(want, got[i], cmp.AllowUnexported(interval.Interval{})) {
			failed = append(failed, sub)
		}
	}
	return failed
}
