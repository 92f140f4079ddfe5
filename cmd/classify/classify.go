package classify

import (
	"fmt"
	"io"
	"log"
	"os"

	"git.sr.ht/~flobar/perceptron/cmd/internal"
	"git.sr.ht/~flobar/perceptron/pkg/perceptron"
	"github.com/spf13/cobra"
)

// CMD defines the perceptron classify command.
var CMD = &cobra.Command{
	Use:   "classify VECTOR...",
	Short: "Classify feature vectors",
	Long: `Classify comma separated feature vectors with the given weights.
The weights contain the bias weight as last value, so each feature
vector must have one value less than the weights.`,
	Args: cobra.MinimumNArgs(1),
	Run:  run,
}

var flags = struct {
	weights, mask string
}{}

func init() {
	CMD.Flags().StringVarP(&flags.weights, "weights", "W", "", "set comma separated weights")
	CMD.Flags().StringVarP(&flags.mask, "mask", "m", "", "set comma separated weight mask")
}

func run(_ *cobra.Command, args []string) {
	chk(classify(os.Stdout, flags.weights, flags.mask, args))
}

func classify(w io.Writer, weights, mask string, args []string) error {
	ws, err := internal.ParseVector(weights)
	if err != nil {
		return fmt.Errorf("classify: weights: %v", err)
	}
	var m perceptron.Mask
	if mask != "" {
		tmp, err := internal.ParseVector(mask)
		if err != nil {
			return fmt.Errorf("classify: mask: %v", err)
		}
		m = perceptron.Mask(tmp)
	}
	for _, arg := range args {
		x, err := internal.ParseVector(arg)
		if err != nil {
			return fmt.Errorf("classify: %v", err)
		}
		above, err := perceptron.Classify(ws, m, x)
		if err != nil {
			return fmt.Errorf("classify: %v", err)
		}
		if _, err := fmt.Fprintf(w, "%s %t\n", x, above); err != nil {
			return fmt.Errorf("classify: %v", err)
		}
	}
	return nil
}

func chk(err error) {
	if err != nil {
		log.Fatalf("error: %v", err)
	}
}
