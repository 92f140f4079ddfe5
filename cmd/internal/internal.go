package internal

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"git.sr.ht/~flobar/perceptron/pkg/perceptron"
	"git.sr.ht/~flobar/perceptron/pkg/perceptron/vec"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// Version is the version of perceptron.
const Version = "v0.1.0"

// Flags is used to define the standard command-line parameters for
// the perceptron sub commands.
type Flags struct {
	Params  string // Path to the configuration file
	Loops   int    // Maximal number of learning loops
	Workers int    // Number of parallel workers
	Verbose bool   // Enable logging
}

// Init initializes the standard commandline arguments for the given
// subcommand.
func (flags *Flags) Init(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&flags.Params, "parameters", "P", "",
		"set path to configuration file")
	cmd.Flags().IntVarP(&flags.Loops, "loops", "l", 0,
		"set the maximal number of learning loops (overwrites the setting in the configuration file)")
	cmd.Flags().IntVarP(&flags.Workers, "workers", "w", 0,
		"set the number of parallel workers (overwrites the setting in the configuration file)")
	cmd.Flags().BoolVarP(&flags.Verbose, "verbose", "v", false,
		"enable logging (overwrites the setting in the configuration file)")
}

// Config reads the configuration file and overwrites its settings
// with the according command line flags.  It enables logging if
// configured.
func (flags *Flags) Config() (*Config, error) {
	c, err := ReadConfig(flags.Params)
	if err != nil {
		return nil, err
	}
	UpdateInConfig(&c.MaxLearningLoops, flags.Loops)
	UpdateInConfig(&c.Workers, flags.Workers)
	UpdateInConfig(&c.Log, flags.Verbose)
	perceptron.SetLog(c.Log)
	return c, nil
}

// ReadExamples reads the examples from the csv file with the given
// path.
func ReadExamples(path string) (perceptron.Examples, error) {
	in, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("readExamples %s: %v", path, err)
	}
	defer in.Close()
	es, err := perceptron.ReadCSV(in)
	if err != nil {
		return nil, errors.WithMessagef(err, "readExamples %s", path)
	}
	return es, nil
}

// ParseVector parses a comma separated list of integers.
func ParseVector(str string) (vec.Vector, error) {
	if strings.TrimSpace(str) == "" {
		return nil, errors.Wrap(perceptron.ErrNullOrEmptyInput, "parseVector: empty vector")
	}
	fields := strings.Split(str, ",")
	ret := make(vec.Vector, len(fields))
	for i, field := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return nil, fmt.Errorf("parseVector %q: %v", str, err)
		}
		ret[i] = v
	}
	return ret, nil
}

// PrintResult writes the result to w.  If asJSON is true, the result
// is written json encoded.
func PrintResult(w io.Writer, res perceptron.Result, asJSON bool) error {
	if asJSON {
		if err := json.NewEncoder(w).Encode(res); err != nil {
			return fmt.Errorf("printResult: %v", err)
		}
		return nil
	}
	if _, err := fmt.Fprintln(w, res); err != nil {
		return fmt.Errorf("printResult: %v", err)
	}
	return nil
}
