package qform

import "errors"

// ErrShape indicates mismatched matrix/vector dimensions in quadratic-form
// construction: the signal must be a single column whose length equals the
// channel's receiver count.
// Usage: if errors.Is(err, ErrShape) { /* fix y/F dimensions */ }.
var ErrShape = errors.New("qform: shape mismatch")
