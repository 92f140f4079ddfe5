package perceptron

import (
	"git.sr.ht/~flobar/perceptron/pkg/perceptron/vec"
	"github.com/pkg/errors"
)

// Example is a labeled feature vector.
type Example interface {
	// Vector returns the feature vector of the example.
	Vector() vec.Vector
	// AboveThreshold returns the label of the example.
	AboveThreshold() bool
}

// DataSet is an ordered sequence of examples.  All examples of a
// data set must have the same dimension.
type DataSet interface {
	Len() int
	At(i int) Example
}

// NewExample returns a new example with the given feature vector and
// label.
func NewExample(v vec.Vector, above bool) Example {
	return example{vector: v, above: above}
}

type example struct {
	vector vec.Vector
	above  bool
}

func (e example) Vector() vec.Vector   { return e.vector }
func (e example) AboveThreshold() bool { return e.above }

// Examples is a slice of examples that implements the DataSet
// interface.
type Examples []Example

// Len returns the number of examples.
func (es Examples) Len() int {
	return len(es)
}

// At returns the i-th example.
func (es Examples) At(i int) Example {
	return es[i]
}

// Add appends a new example with the given feature vector and label.
func (es *Examples) Add(v vec.Vector, above bool) {
	*es = append(*es, NewExample(v, above))
}

// Dim returns the dimension of the given data set.  The dimension is
// the length of the first example's feature vector.
func Dim(ds DataSet) (int, error) {
	if ds == nil || ds.Len() == 0 {
		return 0, errors.Wrap(ErrNullOrEmptyInput, "dim: data set is nil or empty")
	}
	if len(ds.At(0).Vector()) == 0 {
		return 0, errors.Wrap(ErrNullOrEmptyInput, "dim: feature vector is nil or empty")
	}
	return len(ds.At(0).Vector()), nil
}
