package types

import "fmt"

// Bucket is a half-open value range [Lo, Hi).
type Bucket struct {
	Lo float64 `json:"lo" cbor:"0,keyasint,omitempty"`
	Hi float64 `json:"hi" cbor:"1,keyasint,omitempty"`
}

// Label returns the bucket key used in histograms, e.g. "0-20".
func (b Bucket) Label() string {
	return fmt.Sprintf("%g-%g", b.Lo, b.Hi)
}

// Contains reports whether v falls in [Lo, Hi).
func (b Bucket) Contains(v float64) bool {
	return v >= b.Lo && v < b.Hi
}

// Histogram maps bucket labels to the number of records whose metric falls
// in the bucket range. Buckets need not be contiguous nor exhaustive.
type Histogram map[string]int
