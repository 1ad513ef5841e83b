package bucket

import "time"

const day = 24 * time.Hour

// upper bounds (exclusive) of each bucket, aligned with order. 60d_plus is open-ended.
var upperBounds = [...]time.Duration{
	24 * time.Hour,
	48 * time.Hour,
	72 * time.Hour,
	7 * day,
	30 * day,
	60 * day,
}

// Classify returns the bucket a booking falls into at instant now.
// Future and zero booking times are not classified.
func Classify(bookedAt, now time.Time) (Bucket, bool) {
	if bookedAt.IsZero() {
		return "", false
	}
	age := now.Sub(bookedAt)
	if age < 0 {
		return "", false
	}
	for i, upper := range upperBounds {
		if age < upper {
			return order[i], true
		}
	}
	return Bucket60dPlus, true
}
