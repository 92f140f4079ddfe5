package train

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"git.sr.ht/~flobar/perceptron/cmd/internal"
	"git.sr.ht/~flobar/perceptron/pkg/perceptron"
	"github.com/spf13/cobra"
)

// CMD defines the perceptron train command.
var CMD = &cobra.Command{
	Use:   "train TRAINING [VALIDATION]",
	Short: "Train a perceptron",
	Long: `Train a perceptron on the examples of the TRAINING csv file.
The accuracy is calculated on the examples of the VALIDATION csv
file.  If no VALIDATION file is given, the training examples are used.`,
	Args: cobra.RangeArgs(1, 2),
	Run:  run,
}

var flags = struct {
	internal.Flags
	search, json bool
}{}

func init() {
	flags.Flags.Init(CMD)
	CMD.Flags().BoolVarP(&flags.search, "search", "s", false,
		"search the best weight mask (overwrites the setting in the configuration file)")
	CMD.Flags().BoolVarP(&flags.json, "json", "J", false, "set json output")
}

func run(_ *cobra.Command, args []string) {
	c, err := flags.Config()
	chk(err)
	internal.UpdateInConfig(&c.Search, flags.search)
	chk(train(context.Background(), os.Stdout, c, args, flags.json))
}

func train(ctx context.Context, w io.Writer, c *internal.Config, args []string, asJSON bool) error {
	training, err := internal.ReadExamples(args[0])
	if err != nil {
		return fmt.Errorf("train: %v", err)
	}
	validation := training
	if len(args) > 1 {
		if validation, err = internal.ReadExamples(args[1]); err != nil {
			return fmt.Errorf("train: %v", err)
		}
	}
	var res perceptron.Result
	if c.Search {
		res, err = c.Engine().Search(ctx, training, validation)
	} else {
		res, err = c.Engine().Learn(training, validation)
	}
	if err != nil {
		return fmt.Errorf("train: %v", err)
	}
	return internal.PrintResult(w, res, asJSON)
}

func chk(err error) {
	if err != nil {
		log.Fatalf("error: %v", err)
	}
}
