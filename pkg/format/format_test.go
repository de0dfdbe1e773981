package format

import (
	"bytes"
	"testing"

	"github.com/henderiw/zipcondense/pkg/interval"
	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	cases := map[string]struct {
		input    []interval.Interval
		expected string
	}{
		"Empty": {
			input:    nil,
			expected: "No output ranges were created.\n",
		},
		"Padded": {
			input: []interval.Interval{
				interval.MustNew(0, 0),
				interval.MustNew(501, 544),
				interval.MustNew(94200, 99999),
			},
			expected: "[00000,00000]\n[00501,00544]\n[94200,99999]\n",
		},
		"KeepsOrder": {
			input: []interval.Interval{
				interval.MustNew(94600, 94699),
				interval.MustNew(94133, 94133),
			},
			expected: "[94600,94699]\n[94133,94133]\n",
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Format(tc.input))

			var buf bytes.Buffer
			assert.NoError(t, Write(&buf, tc.input))
			assert.Equal(t, tc.expected, buf.String())
		})
	}
}
