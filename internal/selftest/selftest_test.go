package selftest

import (
	"bytes"
	"context"
	"os"
	"strings"
	"testing"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/testr"
	"github.com/henderiw/zipcondense/pkg/interval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	dir := t.TempDir()
	out := &bytes.Buffer{}
	ctx := logr.NewContext(context.Background(), testr.New(t))

	err := Run(ctx, out, dir)
	require.NoError(t, err)

	assert.NotContains(t, out.String(), "FAILED TEST")
	for _, id := range []string{"1", "2", "3", "4", "5"} {
		assert.Contains(t, out.String(), "== Running test "+id+" ==")
	}

	// the scratch file is removed
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestCheck(t *testing.T) {
	cases := map[string]struct {
		sc       scenario
		got      []interval.Interval
		expected []string
	}{
		"EmptyOK": {
			sc:  scenario{id: "1", expected: []interval.Interval{}},
			got: []interval.Interval{},
		},
		"EmptyFailed": {
			sc:       scenario{id: "1", expected: []interval.Interval{}},
			got:      []interval.Interval{rng(1, 1)},
			expected: []string{"1"},
		},
		"Count": {
			sc:       scenario{id: "3", expected: []interval.Interval{rng(94133, 94133), rng(94200, 94399)}},
			got:      []interval.Interval{rng(94133, 94133)},
			expected: []string{"3a", "3c"},
		},
		"Value": {
			sc:       scenario{id: "2", expected: []interval.Interval{rng(1, 1), rng(5, 6)}},
			got:      []interval.Interval{rng(1, 1), rng(5, 7)},
			expected: []string{"2c"},
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.sc.check(tc.got))
		})
	}
}

func TestRunBadDir(t *testing.T) {
	err := Run(context.Background(), &bytes.Buffer{}, strings.Repeat("missing/", 3))
	assert.Error(t, err)
}
