package vec

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Errors returned by the vector functions.
var (
	ErrNullInput         = errors.New("null or empty input")
	ErrDimensionMismatch = errors.New("dimension mismatch")
)

// Vector is an integer valued feature or weight vector.
type Vector []int

// Zeros returns a new zero vector of length n.
func Zeros(n int) Vector {
	return make(Vector, n)
}

// Ones returns a new vector of length n with all values set to 1.
func Ones(n int) Vector {
	ret := make(Vector, n)
	for i := range ret {
		ret[i] = 1
	}
	return ret
}

// Clone returns a copy of the vector.  The copy of a nil vector is
// nil.
func (v Vector) Clone() Vector {
	if v == nil {
		return nil
	}
	ret := make(Vector, len(v))
	copy(ret, v)
	return ret
}

// Append returns a new vector with the given values appended to v.
// The vector v is never modified.
func (v Vector) Append(vals ...int) Vector {
	ret := make(Vector, len(v), len(v)+len(vals))
	copy(ret, v)
	return append(ret, vals...)
}

func (v Vector) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, x := range v {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%d", x)
	}
	b.WriteByte(']')
	return b.String()
}

// ScalarProduct calculates the sum of the pairwise products of data
// and weights.  Both vectors must be non nil and have the same
// length.
func ScalarProduct(data, weights Vector) (int, error) {
	if err := check("scalarProduct", data, weights); err != nil {
		return 0, err
	}
	var ret int
	for i := range data {
		ret += data[i] * weights[i]
	}
	return ret, nil
}

// ConditionalScalarProduct calculates the sum of the products
// data[i]*weights[i]*mask[i].  All three vectors must be non nil and
// have the same length.
func ConditionalScalarProduct(data, weights, mask Vector) (int, error) {
	if err := check("conditionalScalarProduct", data, weights, mask); err != nil {
		return 0, err
	}
	var ret int
	for i := range data {
		ret += data[i] * weights[i] * mask[i]
	}
	return ret, nil
}

// Add returns the element-wise sum a+b.
func Add(a, b Vector) (Vector, error) {
	if err := check("add", a, b); err != nil {
		return nil, err
	}
	ret := make(Vector, len(a))
	for i := range a {
		ret[i] = a[i] + b[i]
	}
	return ret, nil
}

// Subtract returns the element-wise difference a-b.
func Subtract(a, b Vector) (Vector, error) {
	if err := check("subtract", a, b); err != nil {
		return nil, err
	}
	ret := make(Vector, len(a))
	for i := range a {
		ret[i] = a[i] - b[i]
	}
	return ret, nil
}

// Equal returns true if a and b have the same length and the same
// values.
func Equal(a, b Vector) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func check(name string, vs ...Vector) error {
	for i := range vs {
		if vs[i] == nil {
			return errors.Wrapf(ErrNullInput, "%s: vector %d is nil", name, i)
		}
	}
	for i := 1; i < len(vs); i++ {
		if len(vs[i]) != len(vs[0]) {
			return errors.Wrapf(ErrDimensionMismatch,
				"%s: vectors must have the same size: %d != %d", name, len(vs[0]), len(vs[i]))
		}
	}
	return nil
}
