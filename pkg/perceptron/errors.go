package perceptron

import (
	"git.sr.ht/~flobar/perceptron/pkg/perceptron/vec"
	"github.com/pkg/errors"
)

// Errors returned by the learning and classification functions.  Use
// errors.Is to check for them.
var (
	// ErrNullOrEmptyInput is returned for nil or empty data sets and
	// feature vectors.
	ErrNullOrEmptyInput = vec.ErrNullInput
	// ErrNullInput is an alias for ErrNullOrEmptyInput.
	ErrNullInput = vec.ErrNullInput
	// ErrDimensionMismatch is returned if two vectors do not have
	// the same length.
	ErrDimensionMismatch = vec.ErrDimensionMismatch
	// ErrConsistency is returned if the size of the training set
	// changes during a learning run.
	ErrConsistency = errors.New("logic error: data set size is not constant")
	// ErrDimensionTooLarge is returned if a mask search is requested
	// for more than MaxMaskDim dimensions.
	ErrDimensionTooLarge = errors.New("dimension too large")
)
