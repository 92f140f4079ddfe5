package perceptron

import (
	"runtime"

	"git.sr.ht/~flobar/perceptron/pkg/perceptron/vec"
	"github.com/pkg/errors"
)

// DefaultMaxLearningLoops is the default upper bound of learning passes.
const DefaultMaxLearningLoops = 1000

// Engine trains perceptrons.  The zero value uses
// DefaultMaxLearningLoops and runtime.NumCPU() workers.
type Engine struct {
	MaxLearningLoops int // Maximal number of learning passes per learning run
	Workers          int // Number of parallel workers of the mask search
}

func (e *Engine) maxLearningLoops() int {
	if e == nil || e.MaxLearningLoops <= 0 {
		return DefaultMaxLearningLoops
	}
	return e.MaxLearningLoops
}

func (e *Engine) workers() int {
	if e == nil || e.Workers <= 0 {
		return runtime.NumCPU()
	}
	return e.Workers
}

// Learn learns the weights for the given training set.  The
// accuracy of the learned weights is calculated on the validation
// set.  The data sets are never modified.
func (e *Engine) Learn(training, validation DataSet) (Result, error) {
	return e.LearnMasked(training, validation, nil)
}

// LearnMasked learns the weights for the given training set using
// the given weight mask for every scalar product.  A nil mask enables
// all dimensions.  If non nil, the mask must have one entry per
// feature plus one for the bias.
func (e *Engine) LearnMasked(training, validation DataSet, mask Mask) (Result, error) {
	d, err := dims(training, validation)
	if err != nil {
		return Result{}, errors.WithMessage(err, "learn")
	}
	if mask != nil && len(mask) != d+1 {
		return Result{}, errors.Wrapf(ErrDimensionMismatch,
			"learn: mask size = %d, expected %d", len(mask), d+1)
	}
	r, err := e.learn(training, validation, d, mask)
	if err != nil {
		return Result{}, errors.WithMessage(err, "learn")
	}
	res := newResult(r.accuracy(validation), r.weights, mask, r.passes, 0)
	Log("learn: dim=%d, examples=%d, passes=%d, accuracy=%d, weights=%s",
		d, training.Len(), r.passes, res.Accuracy(), r.weights)
	return res, nil
}

func dims(training, validation DataSet) (int, error) {
	d, err := Dim(training)
	if err != nil {
		return 0, errors.WithMessage(err, "training set")
	}
	if _, err := Dim(validation); err != nil {
		return 0, errors.WithMessage(err, "validation set")
	}
	return d, nil
}

// run holds the outcome of one learning run.
type run struct {
	weights vec.Vector
	success int
	passes  int
}

func (r run) accuracy(validation DataSet) int {
	return r.success * 100 / validation.Len()
}

// learn runs the learning loop.  The best weights are the weights with
// the most successes on the validation set.  The loop stops early if a
// pass yields the best or the current weights again, since passes are
// deterministic and no better weights can follow.
func (e *Engine) learn(training, validation DataSet, d int, mask Mask) (run, error) {
	n := training.Len()
	ds := withThreshold(training, d)
	current, err := pass(ds, vec.Zeros(d+1), mask)
	if err != nil {
		return run{}, err
	}
	success, err := check(validation, current, mask)
	if err != nil {
		return run{}, err
	}
	best := run{weights: current, success: success, passes: 1}
	for i := 1; i < e.maxLearningLoops(); i++ {
		if training.Len() != n {
			return run{}, errors.Wrapf(ErrConsistency,
				"pass %d: size = %d, expected %d", best.passes+1, training.Len(), n)
		}
		next, err := pass(ds, current, mask)
		if err != nil {
			return run{}, err
		}
		best.passes++
		if vec.Equal(next, best.weights) || vec.Equal(next, current) {
			break
		}
		success, err := check(validation, next, mask)
		if err != nil {
			return run{}, err
		}
		if success > best.success {
			best.success = success
			best.weights = next
		}
		current = next
	}
	return best, nil
}

// pass runs one learning pass over the given data set.  The weights
// are updated at most once: for the first example that is not
// classified correctly.  The weights are returned unchanged if all
// examples are classified correctly.
func pass(ds DataSet, weights vec.Vector, mask Mask) (vec.Vector, error) {
	for i, n := 0, ds.Len(); i < n; i++ {
		x := ds.At(i)
		p, err := product(x.Vector(), weights, mask)
		if err != nil {
			return nil, errors.WithMessagef(err, "pass: example %d", i)
		}
		if p < 0 && x.AboveThreshold() {
			return vec.Add(weights, biased(x))
		}
		if p >= 0 && !x.AboveThreshold() {
			return vec.Subtract(weights, biased(x))
		}
	}
	return weights, nil
}

// check returns the number of correctly classified examples.  Note
// that a scalar product of 0 counts as below threshold.
func check(ds DataSet, weights vec.Vector, mask Mask) (int, error) {
	var success int
	for i, n := 0, ds.Len(); i < n; i++ {
		x := ds.At(i)
		p, err := product(x.Vector(), weights, mask)
		if err != nil {
			return 0, errors.WithMessagef(err, "check: example %d", i)
		}
		if x.AboveThreshold() == (p > 0) {
			success++
		}
	}
	return success, nil
}

// product calculates the (conditional) scalar product of the feature
// vector x extended by the bias input 1 and the weights.
func product(x, weights vec.Vector, mask Mask) (int, error) {
	if len(weights) == 0 {
		return 0, errors.Wrap(ErrNullInput, "product: weights are empty")
	}
	d := len(weights) - 1
	if mask == nil {
		p, err := vec.ScalarProduct(x, weights[:d])
		if err != nil {
			return 0, err
		}
		return p + weights[d], nil
	}
	if len(mask) != len(weights) {
		return 0, errors.Wrapf(ErrDimensionMismatch,
			"product: mask size = %d, weights size = %d", len(mask), len(weights))
	}
	p, err := vec.ConditionalScalarProduct(x, weights[:d], vec.Vector(mask[:d]))
	if err != nil {
		return 0, err
	}
	return p + weights[d]*mask[d], nil
}

// Classify returns true if the given feature vector is above
// threshold, i.e. if its scalar product with the weights is
// positive.  The feature vector must not contain the bias input, so
// it must have exactly one entry less than the weights.  A nil mask
// enables all dimensions.
func Classify(weights vec.Vector, mask Mask, data vec.Vector) (bool, error) {
	if data == nil || weights == nil {
		return false, errors.Wrap(ErrNullInput, "classify")
	}
	if len(data)+1 != len(weights) {
		return false, errors.Wrapf(ErrDimensionMismatch,
			"classify: data size = %d, expected %d (weights size - 1)", len(data), len(weights)-1)
	}
	p, err := product(data, weights, mask)
	if err != nil {
		return false, errors.WithMessage(err, "classify")
	}
	return p > 0, nil
}
