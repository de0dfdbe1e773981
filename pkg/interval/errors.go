package interval

import "fmt"

// BoundsError reports a zip code outside [MinZip, MaxZip].
type BoundsError struct {
	Value int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("invalid zip code: %d, must be between %0*d and %0*d", e.Value, Width, MinZip, Width, MaxZip)
}

// InvertedError reports a range whose first bound is bigger than its second.
type InvertedError struct {
	Low  int
	High int
}

func (e *InvertedError) Error() string {
	return fmt.Sprintf("invalid range: %d-%d, first must be less than or equal to second", e.Low, e.High)
}
