package perceptron

import (
	"encoding/json"
	"fmt"

	"git.sr.ht/~flobar/perceptron/pkg/perceptron/vec"
)

// Result holds the outcome of a learning run.  Results copy their
// weights and mask, so they are never affected by later modifications
// of the vectors they were created from.
type Result struct {
	weights    vec.Vector
	mask       Mask
	accuracy   int
	passes     int
	candidates int
}

func newResult(accuracy int, weights vec.Vector, mask Mask, passes, candidates int) Result {
	var m Mask
	if mask != nil {
		m = make(Mask, len(mask))
		copy(m, mask)
	}
	return Result{
		weights:    weights.Clone(),
		mask:       m,
		accuracy:   accuracy,
		passes:     passes,
		candidates: candidates,
	}
}

// Accuracy returns the percentage [0,100] of correctly classified
// examples of the validation set.
func (r Result) Accuracy() int {
	return r.accuracy
}

// Weights returns a copy of the learned weights.  The last weight is
// the bias weight.
func (r Result) Weights() vec.Vector {
	return r.weights.Clone()
}

// Mask returns a copy of the mask or nil if no mask was used.
func (r Result) Mask() Mask {
	if r.mask == nil {
		return nil
	}
	ret := make(Mask, len(r.mask))
	copy(ret, r.mask)
	return ret
}

// Passes returns the number of learning passes of the best learning
// run.
func (r Result) Passes() int {
	return r.passes
}

// Candidates returns the number of evaluated masks.  It is 0 if no
// mask search was performed.
func (r Result) Candidates() int {
	return r.candidates
}

// Classify classifies the feature vector using the result's weights
// and mask.
func (r Result) Classify(data vec.Vector) (bool, error) {
	return Classify(r.weights, r.mask, data)
}

func (r Result) String() string {
	return fmt.Sprintf("Result [accuracy=%d, weights=%s, mask=%s]", r.accuracy, r.weights, r.mask)
}

type resultData struct {
	Accuracy   int        `json:"accuracy"`
	Weights    vec.Vector `json:"weights"`
	Mask       Mask       `json:"mask,omitempty"`
	Passes     int        `json:"passes"`
	Candidates int        `json:"candidates,omitempty"`
}

// MarshalJSON implements the json.Marshaler interface.
func (r Result) MarshalJSON() ([]byte, error) {
	return json.Marshal(resultData{
		Accuracy:   r.accuracy,
		Weights:    r.weights,
		Mask:       r.mask,
		Passes:     r.passes,
		Candidates: r.candidates,
	})
}
