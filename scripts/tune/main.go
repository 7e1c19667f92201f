package main

import (
	"fmt"
	"os"

	"github.com/corvidchess/corvid/pkg/search/eval/classical"
	"github.com/corvidchess/corvid/pkg/tune"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: tune <dataset.pgn>")
		os.Exit(1)
	}
	dataPath := os.Args[1]

	fmt.Printf("loading dataset: %s\n", dataPath)
	dataset, err := tune.LoadDataset(dataPath)
	if err != nil {
		fmt.Printf("error loading dataset: %v\n", err)
		return
	}
	fmt.Printf("dataset loaded: %d positions\n", len(dataset))

	tuner := tune.NewTuner(dataset, 200, 1)
	if err := tuner.Run("error-plot.html"); err != nil {
		fmt.Printf("error writing chart: %v\n", err)
		return
	}

	for _, term := range classical.Tunable {
		fmt.Printf("%s: op %d eg %d\n", term.Name, *term.Op, *term.Eg)
	}
}
