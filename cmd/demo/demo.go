package demo

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"git.sr.ht/~flobar/perceptron/cmd/internal"
	"git.sr.ht/~flobar/perceptron/pkg/perceptron"
	"git.sr.ht/~flobar/perceptron/pkg/perceptron/vec"
	"github.com/spf13/cobra"
)

// CMD defines the perceptron demo command.
var CMD = &cobra.Command{
	Use:   "demo",
	Short: "Train and test a perceptron on a toy data set",
	Args:  cobra.NoArgs,
	Run:   run,
}

var flags = struct {
	internal.Flags
	search bool
}{}

func init() {
	flags.Flags.Init(CMD)
	CMD.Flags().BoolVarP(&flags.search, "search", "s", false,
		"search the best weight mask (overwrites the setting in the configuration file)")
}

func run(_ *cobra.Command, args []string) {
	c, err := flags.Config()
	chk(err)
	internal.UpdateInConfig(&c.Search, flags.search)
	chk(demo(context.Background(), os.Stdout, c))
}

// toy returns the examples (10,x).  Examples with x > 5 are above
// threshold.
func toy() perceptron.Examples {
	var es perceptron.Examples
	for _, x := range []int{1, 2, 3, 4} {
		es.Add(vec.Vector{10, x}, false)
	}
	for _, x := range []int{6, 7} {
		es.Add(vec.Vector{10, x}, true)
	}
	return es
}

func demo(ctx context.Context, w io.Writer, c *internal.Config) error {
	es := toy()
	var res perceptron.Result
	var err error
	if c.Search {
		res, err = c.Engine().Search(ctx, es, es)
	} else {
		res, err = c.Engine().Learn(es, es)
	}
	if err != nil {
		return fmt.Errorf("demo: %v", err)
	}
	if err := internal.PrintResult(w, res, false); err != nil {
		return fmt.Errorf("demo: %v", err)
	}
	for _, tc := range []struct {
		x    vec.Vector
		want bool
	}{
		{vec.Vector{10, 8}, true},
		{vec.Vector{10, 0}, false},
	} {
		got, err := res.Classify(tc.x)
		if err != nil {
			return fmt.Errorf("demo: %v", err)
		}
		if _, err := fmt.Fprintf(w, "should be %t: %s %t\n", tc.want, tc.x, got); err != nil {
			return fmt.Errorf("demo: %v", err)
		}
	}
	return nil
}

func chk(err error) {
	if err != nil {
		log.Fatalf("error: %v", err)
	}
}
