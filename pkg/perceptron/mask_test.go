package perceptron

import (
	"context"
	"fmt"
	"reflect"
	"testing"

	"git.sr.ht/~flobar/perceptron/pkg/perceptron/vec"
	"github.com/pkg/errors"
)

func TestMasks(t *testing.T) {
	for _, tc := range []struct {
		d    int
		want []Mask
	}{
		{1, []Mask{{1, 1}}},
		{2, []Mask{{0, 1, 1}, {1, 0, 1}, {1, 1, 1}}},
		{3, []Mask{
			{0, 0, 1, 1}, {0, 1, 0, 1}, {0, 1, 1, 1}, {1, 0, 0, 1},
			{1, 0, 1, 1}, {1, 1, 0, 1}, {1, 1, 1, 1},
		}},
	} {
		t.Run(fmt.Sprintf("%d", tc.d), func(t *testing.T) {
			got, err := Masks(tc.d)
			if err != nil {
				t.Fatalf("got error: %v", err)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("expected %v; got %v", tc.want, got)
			}
		})
	}
}

func TestMasksSkipZeroMask(t *testing.T) {
	for d := 1; d <= MaxMaskDim; d++ {
		t.Run(fmt.Sprintf("%d", d), func(t *testing.T) {
			masks, err := Masks(d)
			if err != nil {
				t.Fatalf("got error: %v", err)
			}
			if want := 1<<d - 1; len(masks) != want {
				t.Fatalf("expected %d masks; got %d", want, len(masks))
			}
			for _, m := range masks {
				if len(m) != d+1 || m[d] != 1 {
					t.Fatalf("bad mask: %s", m)
				}
				var sum int
				for _, b := range m[:d] {
					sum += b
				}
				if sum == 0 {
					t.Fatalf("zero mask: %s", m)
				}
			}
		})
	}
}

func TestMasksErrors(t *testing.T) {
	for _, tc := range []struct {
		d    int
		want error
	}{
		{0, ErrNullOrEmptyInput},
		{-1, ErrNullOrEmptyInput},
		{MaxMaskDim + 1, ErrDimensionTooLarge},
		{64, ErrDimensionTooLarge},
	} {
		t.Run(fmt.Sprintf("%d", tc.d), func(t *testing.T) {
			if _, err := Masks(tc.d); !errors.Is(err, tc.want) {
				t.Fatalf("expected error %v; got %v", tc.want, err)
			}
		})
	}
}

func TestSearch(t *testing.T) {
	for _, tc := range []struct {
		name       string
		es         Examples
		mask       Mask
		weights    vec.Vector
		candidates int
	}{
		{"toy", toy(), Mask{1, 1, 1}, vec.Vector{-6, 13, 3}, 3},
		{"noise", Examples{
			NewExample(vec.Vector{10, 1, 5}, false),
			NewExample(vec.Vector{10, 2, -5}, false),
			NewExample(vec.Vector{10, 6, 5}, true),
			NewExample(vec.Vector{10, 7, -3}, true),
		}, Mask{1, 1, 0, 1}, vec.Vector{-6, 13, -1, 3}, 7},
	} {
		t.Run(tc.name, func(t *testing.T) {
			var e Engine
			got, err := e.Search(context.Background(), tc.es, tc.es)
			if err != nil {
				t.Fatalf("got error: %v", err)
			}
			if got.Accuracy() != 100 {
				t.Fatalf("expected accuracy 100; got %d", got.Accuracy())
			}
			if !reflect.DeepEqual(got.Mask(), tc.mask) {
				t.Fatalf("expected %s; got %s", tc.mask, got.Mask())
			}
			if !reflect.DeepEqual(got.Weights(), tc.weights) {
				t.Fatalf("expected %s; got %s", tc.weights, got.Weights())
			}
			if got.Candidates() != tc.candidates {
				t.Fatalf("expected %d candidates; got %d", tc.candidates, got.Candidates())
			}
			for _, x := range tc.es {
				above, err := got.Classify(x.Vector())
				if err != nil {
					t.Fatalf("got error: %v", err)
				}
				if above != x.AboveThreshold() {
					t.Fatalf("%s: expected %t; got %t", x.Vector(), x.AboveThreshold(), above)
				}
			}
		})
	}
}

func TestSearchWorkers(t *testing.T) {
	es := Examples{
		NewExample(vec.Vector{10, 1, 5}, false),
		NewExample(vec.Vector{10, 2, -5}, false),
		NewExample(vec.Vector{10, 6, 5}, true),
		NewExample(vec.Vector{10, 7, -3}, true),
	}
	seq := Engine{Workers: 1}
	want, err := seq.Search(context.Background(), es, es)
	if err != nil {
		t.Fatalf("got error: %v", err)
	}
	for _, n := range []int{2, 3, 8} {
		t.Run(fmt.Sprintf("%d", n), func(t *testing.T) {
			e := Engine{Workers: n}
			got, err := e.Search(context.Background(), es, es)
			if err != nil {
				t.Fatalf("got error: %v", err)
			}
			if !reflect.DeepEqual(got, want) {
				t.Fatalf("expected %s; got %s", want, got)
			}
		})
	}
}

func TestSearchMaxDim(t *testing.T) {
	e := Engine{MaxLearningLoops: 2}
	es := Examples{NewExample(vec.Ones(MaxMaskDim), false)}
	got, err := e.Search(context.Background(), es, es)
	if err != nil {
		t.Fatalf("got error: %v", err)
	}
	if want := 1<<MaxMaskDim - 1; got.Candidates() != want {
		t.Fatalf("expected %d candidates; got %d", want, got.Candidates())
	}
	if got.Accuracy() != 100 {
		t.Fatalf("expected accuracy 100; got %d", got.Accuracy())
	}
	// the first mask wins
	want := make(Mask, MaxMaskDim+1)
	want[MaxMaskDim-1], want[MaxMaskDim] = 1, 1
	if !reflect.DeepEqual(got.Mask(), want) {
		t.Fatalf("expected %s; got %s", want, got.Mask())
	}

	es = Examples{NewExample(vec.Ones(MaxMaskDim+1), false)}
	if _, err := e.Search(context.Background(), es, es); !errors.Is(err, ErrDimensionTooLarge) {
		t.Fatalf("expected error %v; got %v", ErrDimensionTooLarge, err)
	}
}

func TestSearchErrors(t *testing.T) {
	var e Engine
	if _, err := e.Search(context.Background(), Examples{}, toy()); !errors.Is(err, ErrNullOrEmptyInput) {
		t.Fatalf("expected error %v; got %v", ErrNullOrEmptyInput, err)
	}
	val := Examples{NewExample(vec.Vector{1, 2, 3}, true)}
	if _, err := e.Search(context.Background(), toy(), val); !errors.Is(err, ErrDimensionMismatch) {
		t.Fatalf("expected error %v; got %v", ErrDimensionMismatch, err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := e.Search(ctx, toy(), toy()); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected error %v; got %v", context.Canceled, err)
	}
}

func BenchmarkSearch(b *testing.B) {
	e := Engine{MaxLearningLoops: 100}
	es := toy()
	for i := 0; i < b.N; i++ {
		e.Search(context.Background(), es, es)
	}
}
