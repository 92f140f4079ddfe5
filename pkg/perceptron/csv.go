package perceptron

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"git.sr.ht/~flobar/perceptron/pkg/perceptron/vec"
	"github.com/pkg/errors"
)

// ReadCSV reads examples from the given reader.  Each line holds one
// example: the comma separated integer features followed by the
// label.  Labels are parsed with strconv.ParseBool (1 or true for
// above threshold).  Empty lines and lines starting with # are
// skipped.  All examples must have the same dimension.
func ReadCSV(in io.Reader) (Examples, error) {
	var ret Examples
	s := bufio.NewScanner(in)
	var lineno int
	for s.Scan() {
		lineno++
		line := strings.TrimSpace(s.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		x, above, err := parseCSVLine(line)
		if err != nil {
			return nil, errors.WithMessagef(err, "readCSV: line %d", lineno)
		}
		if len(ret) > 0 && len(x) != len(ret[0].Vector()) {
			return nil, errors.Wrapf(ErrDimensionMismatch,
				"readCSV: line %d: dimension = %d, expected %d", lineno, len(x), len(ret[0].Vector()))
		}
		ret.Add(x, above)
	}
	if err := s.Err(); err != nil {
		return nil, errors.Wrap(err, "readCSV")
	}
	if len(ret) == 0 {
		return nil, errors.Wrap(ErrNullOrEmptyInput, "readCSV: no examples")
	}
	return ret, nil
}

func parseCSVLine(line string) (vec.Vector, bool, error) {
	fields := strings.Split(line, ",")
	if len(fields) < 2 {
		return nil, false, errors.Errorf("parseCSVLine: bad line: %q", line)
	}
	x := make(vec.Vector, len(fields)-1)
	for i := range x {
		v, err := strconv.Atoi(strings.TrimSpace(fields[i]))
		if err != nil {
			return nil, false, errors.Errorf("parseCSVLine: cannot parse integer: %q", fields[i])
		}
		x[i] = v
	}
	label := strings.TrimSpace(fields[len(fields)-1])
	above, err := strconv.ParseBool(label)
	if err != nil {
		return nil, false, errors.Errorf("parseCSVLine: cannot parse label: %q", label)
	}
	return x, above, nil
}
