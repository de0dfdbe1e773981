// Package format renders zip code intervals in bracket notation, one per
// line.
package format

import (
	"io"
	"strings"

	"github.com/henderiw/zipcondense/pkg/interval"
)

// NoRanges is printed instead of an empty list.
const NoRanges = "No output ranges were created."

// Format returns rr in the given order as [xxxxx,yyyyy] lines.
func Format(rr []interval.Interval) string {
	if len(rr) == 0 {
		return NoRanges + "\n"
	}
	var sb strings.Builder
	for _, r := range rr {
		sb.WriteString(r.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

func Write(w io.Writer, rr []interval.Interval) error {
	_, err := io.WriteString(w, Format(rr))
	return err
}
