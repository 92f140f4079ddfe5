package main

import (
	"git.sr.ht/~flobar/perceptron/cmd/classify"
	"git.sr.ht/~flobar/perceptron/cmd/demo"
	"git.sr.ht/~flobar/perceptron/cmd/train"
	"git.sr.ht/~flobar/perceptron/cmd/version"
	"github.com/spf13/cobra"
)

var root = &cobra.Command{
	Use:   "perceptron",
	Short: "Train perceptrons with weight mask search",
}

func init() {
	root.AddCommand(
		classify.CMD,
		demo.CMD,
		train.CMD,
		version.CMD,
	)
}

func main() {
	root.Execute()
}
