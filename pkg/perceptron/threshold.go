package perceptron

import "git.sr.ht/~flobar/perceptron/pkg/perceptron/vec"

// threshold is the synthetic bias example.  It is always above
// threshold.
type threshold struct {
	vector vec.Vector
}

func (t threshold) Vector() vec.Vector   { return t.vector }
func (t threshold) AboveThreshold() bool { return true }

// thresholded is a read only view of a data set with the threshold
// example in front.
type thresholded struct {
	ds DataSet
	t  threshold
}

// withThreshold returns a view of ds with a threshold example of
// dimension d at position 0.  The underlying data set is never
// modified.
func withThreshold(ds DataSet, d int) DataSet {
	return thresholded{ds: ds, t: threshold{vector: vec.Ones(d)}}
}

func (t thresholded) Len() int {
	return t.ds.Len() + 1
}

func (t thresholded) At(i int) Example {
	if i == 0 {
		return t.t
	}
	return t.ds.At(i - 1)
}

// biased returns the feature vector of the example extended by the
// constant bias input.
func biased(e Example) vec.Vector {
	v := e.Vector()
	if v == nil {
		return nil
	}
	return v.Append(1)
}
