// Package merger folds zip code intervals into the minimal sorted set of
// disjoint intervals covering the same zip codes.
package merger

import (
	"fmt"
	"slices"
	"strings"

	"github.com/go-logr/logr"
	"github.com/henderiw/zipcondense/pkg/interval"
	"k8s.io/apimachinery/pkg/util/sets"
)

// Merger accumulates intervals one at a time. After every Add the
// accumulated set is pairwise non intersecting; it is only sorted by
// Ranges.
type Merger struct {
	log logr.Logger
	acc []interval.Interval
}

func New(log logr.Logger) *Merger {
	return &Merger{log: log}
}

// Merge returns the minimal sorted cover of rr. An empty input yields an
// empty result.
func Merge(log logr.Logger, rr []interval.Interval) []interval.Interval {
	if len(rr) == 0 {
		log.Info("no valid input ranges")
		return []interval.Interval{}
	}
	m := New(log)
	for i, r := range rr {
		log.V(1).Info(fmt.Sprintf("i=%d", i))
		m.Add(r)
	}
	return m.Ranges()
}

// Add folds r into the accumulated set. Every accumulated interval that
// intersects r is replaced by a single merged interval placed at the
// position of the first one removed. When nothing intersects, r is
// appended.
func (m *Merger) Add(r interval.Interval) {
	if len(m.acc) == 0 {
		m.acc = append(m.acc, r)
		return
	}

	idx := sets.New[int]()
	for j, out := range m.acc {
		if r.Intersects(out) {
			m.log.V(1).Info(fmt.Sprintf("  %d:%d and %d:%d intersect", r.From(), r.To(), out.From(), out.To()))
			idx.Insert(j)
		} else {
			m.log.V(1).Info(fmt.Sprintf("  %d:%d and %d:%d do not intersect", r.From(), r.To(), out.From(), out.To()))
		}
	}

	if idx.Len() == 0 {
		m.acc = append(m.acc, r)
		m.log.V(1).Info(fmt.Sprintf("Added new output range: %d:%d", r.From(), r.To()))
		m.logSnapshot()
		return
	}

	merged := r
	var removed []string
	remain := make([]interval.Interval, 0, len(m.acc)-idx.Len()+1)
	for j, out := range m.acc {
		if idx.Has(j) {
			merged = merged.Union(out)
			removed = append(removed, fmt.Sprintf("%d:%d", out.From(), out.To()))
			continue
		}
		remain = append(remain, out)
	}
	// intervals before the first removed one keep their index, so it is
	// also the insert position within remain
	first := sets.List(idx)[0]
	m.acc = slices.Insert(remain, first, merged)

	m.log.V(1).Info(fmt.Sprintf("Merging %d:%d with %s", r.From(), r.To(), strings.Join(removed, ", ")))
	m.log.V(1).Info(fmt.Sprintf("Merged to: %d:%d", merged.From(), merged.To()))
	m.logSnapshot()
}

// Snapshot returns a copy of the accumulated set in accumulation order.
func (m *Merger) Snapshot() []interval.Interval {
	return slices.Clone(m.acc)
}

// Ranges returns the accumulated set sorted ascending by lower bound.
func (m *Merger) Ranges() []interval.Interval {
	out := slices.Clone(m.acc)
	if out == nil {
		out = []interval.Interval{}
	}
	slices.SortFunc(out, compare)
	return out
}

func compare(a, b interval.Interval) int {
	switch {
	case a.Less(b):
		return -1
	case b.Less(a):
		return 1
	default:
		return 0
	}
}

func (m *Merger) logSnapshot() {
	if !m.log.V(1).Enabled() {
		return
	}
	m.log.V(1).Info("Output ranges:")
	for _, r := range m.acc {
		m.log.V(1).Info(fmt.Sprintf("  %d:%d", r.From(), r.To()))
	}
}
