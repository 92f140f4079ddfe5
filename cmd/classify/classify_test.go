package classify

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	for _, tc := range []struct {
		weights, mask string
		args          []string
		want          string
	}{
		{"-6,13,3", "", []string{"10,8", "10,0"}, "[10, 8] true\n[10, 0] false\n"},
		{"1,1,-1", "1,0,1", []string{"1,1"}, "[1, 1] false\n"},
		{"1,1,-1", "1,1,0", []string{"1,1"}, "[1, 1] true\n"},
	} {
		t.Run(tc.weights+"/"+tc.mask, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, classify(&buf, tc.weights, tc.mask, tc.args))
			require.Equal(t, tc.want, buf.String())
		})
	}
}

func TestClassifyErrors(t *testing.T) {
	for _, tc := range []struct {
		weights, mask string
		args          []string
	}{
		{"", "", []string{"1,2"}},
		{"-6,13,3", "", []string{"10,8,1"}},
		{"-6,13,3", "1,1", []string{"10,8"}},
		{"-6,13,3", "", []string{"10,x"}},
	} {
		t.Run(tc.weights+"/"+tc.mask, func(t *testing.T) {
			var buf bytes.Buffer
			require.Error(t, classify(&buf, tc.weights, tc.mask, tc.args))
		})
	}
}
