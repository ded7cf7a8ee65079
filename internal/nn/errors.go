package nn

import "errors"

// ErrPrecondition is returned (or panicked with) when a network is
// configured or used outside what it supports: fewer than two layers,
// softmax anywhere but a cross-entropy distribution output, or a
// column-vector function applied to a wider matrix.
var ErrPrecondition = errors.New("nn: precondition violated")
