package merger

import (
	"slices"

	"github.com/henderiw/zipcondense/pkg/interval"
)

// Sweep returns the same cover as Merge by sorting a copy of rr and
// merging neighbours in one pass.
func Sweep(rr []interval.Interval) []interval.Interval {
	// Always work on a copy of rr, to avoid aliasing slice memory in
	// the caller.
	switch len(rr) {
	case 0:
		return []interval.Interval{}
	case 1:
		return []interval.Interval{rr[0]}
	}

	sorted := slices.Clone(rr)
	slices.SortFunc(sorted, compare)

	out := make([]interval.Interval, 1, len(sorted))
	out[0] = sorted[0]
	for _, r := range sorted[1:] {
		prev := &out[len(out)-1]
		switch {
		case !prev.Intersects(r):
			// No shared zip code, ranges that merely touch stay apart.
			//
			//   prev       r
			// f------t  f-----t
			out = append(out, r)
		case prev.To() < r.To():
			// Partial overlap, extend prev.
			//
			//   prev
			// f------t
			//     f-----t
			//        r
			*prev = prev.Union(r)
		default:
			// r entirely contained in prev, nothing to do.
			//
			//    prev
			// f--------t
			//  f-----t
			//     r
		}
	}
	return out
}
