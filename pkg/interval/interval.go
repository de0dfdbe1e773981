package interval

import (
	"fmt"
)

const (
	// MinZip is the lowest zip code accepted as a range bound.
	MinZip = 0
	// MaxZip is the highest zip code accepted as a range bound.
	MaxZip = 99999
	// Width is the number of digits a zip code is padded to.
	Width = 5
)

// Interval is an inclusive range of zip codes. Values are immutable, every
// operation that changes the bounds returns a new Interval.
type Interval struct {
	low  int
	high int
}

// New returns the interval [low, high] or an error when either bound lies
// outside [MinZip, MaxZip] or low is bigger than high.
func New(low, high int) (Interval, error) {
	if err := validateZip(low); err != nil {
		return Interval{}, err
	}
	if err := validateZip(high); err != nil {
		return Interval{}, err
	}
	if low > high {
		return Interval{}, &InvertedError{Low: low, High: high}
	}
	return Interval{low: low, high: high}, nil
}

// MustNew is like New but panics on an invalid interval.
func MustNew(low, high int) Interval {
	r, err := New(low, high)
	if err != nil {
		panic(err)
	}
	return r
}

func validateZip(zip int) error {
	if zip < MinZip || zip > MaxZip {
		return &BoundsError{Value: zip}
	}
	return nil
}

// From returns the lower bound of r.
func (r Interval) From() int { return r.low }

// To returns the upper bound of r.
func (r Interval) To() int { return r.high }

func (r Interval) String() string {
	return fmt.Sprintf("[%0*d,%0*d]", Width, r.low, Width, r.high)
}

// Contains returns whether zip lies within r, bounds included.
func (r Interval) Contains(zip int) bool {
	return r.low <= zip && zip <= r.high
}

// Intersects returns whether r and other share at least one zip code.
// Ranges that only sit next to each other, like [1,5] and [6,10], do not
// intersect; [1,5] and [5,10] do.
func (r Interval) Intersects(other Interval) bool {
	return !(r.low > other.high || r.high < other.low)
}

// Union returns the smallest interval covering both r and other.
func (r Interval) Union(other Interval) Interval {
	return Interval{
		low:  min(r.low, other.low),
		high: max(r.high, other.high),
	}
}

// Less orders intervals by lower bound, then by upper bound.
func (r Interval) Less(other Interval) bool {
	if r.low != other.low {
		return r.low < other.low
	}
	return r.high < other.high
}
