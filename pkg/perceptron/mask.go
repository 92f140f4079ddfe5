package perceptron

import (
	"context"

	"git.sr.ht/~flobar/perceptron/pkg/perceptron/vec"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat/combin"
)

// MaxMaskDim is the maximal dimension for the mask search.  The
// search evaluates 2^d-1 masks.
const MaxMaskDim = 15

// Mask enables (1) or disables (0) single dimensions of a weight
// vector.  The last entry belongs to the bias.
type Mask []int

func (m Mask) String() string {
	return vec.Vector(m).String()
}

// Masks returns all non zero masks for feature vectors of dimension
// d in binary counting order.  The first feature is the most
// significant bit.  The bias entry of the returned masks is always
// set.
func Masks(d int) ([]Mask, error) {
	if d < 1 {
		return nil, errors.Wrapf(ErrNullOrEmptyInput, "masks: dimension = %d", d)
	}
	if d > MaxMaskDim {
		return nil, errors.Wrapf(ErrDimensionTooLarge, "masks: dimension = %d, max = %d", d, MaxMaskDim)
	}
	dims := make([]int, d)
	for i := range dims {
		dims[i] = 2
	}
	n := 1 << d
	ret := make([]Mask, 0, n-1)
	for i := 1; i < n; i++ { // skip the zero mask
		m := make(Mask, d+1)
		combin.SubFor(m[:d], i, dims)
		m[d] = 1
		ret = append(ret, m)
	}
	return ret, nil
}

// Search learns the weights for every non zero mask and returns the
// result with the best accuracy.  Of masks with the same accuracy, the
// first in binary counting order wins.  The learning runs are
// distributed over the engine's workers.  DataSets must support
// concurrent reads.
func (e *Engine) Search(ctx context.Context, training, validation DataSet) (Result, error) {
	d, err := dims(training, validation)
	if err != nil {
		return Result{}, errors.WithMessage(err, "search")
	}
	masks, err := Masks(d)
	if err != nil {
		return Result{}, errors.WithMessage(err, "search")
	}
	Log("search: dim=%d, masks=%d, workers=%d, maxLearningLoops=%d",
		d, len(masks), e.workers(), e.maxLearningLoops())
	runs := make([]run, len(masks))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers())
	for i := range masks {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			r, err := e.learn(training, validation, d, masks[i])
			if err != nil {
				return errors.WithMessagef(err, "search: mask %s", masks[i])
			}
			runs[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}
	if err := ctx.Err(); err != nil {
		return Result{}, errors.Wrap(err, "search")
	}
	best := 0
	for i := 1; i < len(runs); i++ {
		if runs[i].accuracy(validation) > runs[best].accuracy(validation) {
			best = i
		}
	}
	res := newResult(runs[best].accuracy(validation), runs[best].weights, masks[best], runs[best].passes, len(masks))
	Log("search: best mask=%s, accuracy=%d, weights=%s", res.mask, res.accuracy, res.weights)
	return res, nil
}
