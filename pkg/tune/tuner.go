// Copyright © 2023 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package tune

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/schollz/progressbar/v3"

	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/board/piece"
	"github.com/corvidchess/corvid/pkg/formats/fen"
	"github.com/corvidchess/corvid/pkg/search/eval/classical"
)

// Tuner fits classical.Tunable's scalar terms to a dataset of labeled
// positions by coordinate-descent hill climbing: unlike the original
// gradient-traced tuner, which recomputes a position's evaluation from
// per-term coefficients, this tuner simply re-evaluates every sample from
// scratch after perturbing one term at a time. It is much slower per
// step, but needs nothing from the evaluator beyond Evaluate itself,
// which keeps it decoupled from classical's internal term-tracing.
type Tuner struct {
	samples []Sample
	boards  []*board.Board

	Epochs int // number of passes over every tunable term
	Step   int // centipawn perturbation tried for each term per epoch

	k float64
}

// NewTuner prepares a Tuner over the given dataset, pre-parsing every
// sample's FEN once so repeated evaluation during tuning doesn't pay for
// it again.
func NewTuner(samples []Sample, epochs, step int) *Tuner {
	boards := make([]*board.Board, len(samples))
	for i, s := range samples {
		sampleFEN := fen.FromString(s.FEN)
		boards[i] = board.NewBoard(sampleFEN[:])
	}

	return &Tuner{samples: samples, boards: boards, Epochs: epochs, Step: step}
}

// static returns the white-relative static evaluation of the i'th sample
// under the current term values.
func (t *Tuner) static(i int) float64 {
	b := t.boards[i]
	e := classical.Evaluate(b, nil)
	if b.SideToMove == piece.Black {
		e = -e
	}
	return float64(e)
}

// error returns the tuner's current mean squared error against K.
func (t *Tuner) error() float64 {
	return ComputeE(t.samples, t.k, t.static)
}

// Run fits classical.Tunable's terms in place over Epochs passes, writing
// a mean-squared-error-per-epoch line chart to chartPath on completion.
func (t *Tuner) Run(chartPath string) error {
	fmt.Println("tune: computing optimal K")
	t.k = ComputeK(t.samples, t.static, 10)
	fmt.Printf("tune: K = %v\n", t.k)

	var epochLabels []string
	var epochErrors []opts.LineData

	record := func(epoch int) {
		e := t.error()
		epochLabels = append(epochLabels, strconv.Itoa(epoch))
		epochErrors = append(epochErrors, opts.LineData{Value: e})
		fmt.Printf("tune: epoch %d error %v\n", epoch, e)
	}
	record(0)

	for epoch := 1; epoch <= t.Epochs; epoch++ {
		bar := progressbar.NewOptions(
			2*len(classical.Tunable),
			progressbar.OptionSetDescription(fmt.Sprintf("epoch %d/%d", epoch, t.Epochs)),
			progressbar.OptionSetElapsedTime(true),
			progressbar.OptionShowCount(),
		)

		for _, term := range classical.Tunable {
			t.climb(term.Op)
			_ = bar.Add(1)
			t.climb(term.Eg)
			_ = bar.Add(1)
		}

		_ = bar.Close()
		record(epoch)
	}

	line := charts.NewLine()
	line.SetXAxis(epochLabels).AddSeries("error", epochErrors)

	f, err := os.Create(chartPath)
	if err != nil {
		return err
	}
	defer f.Close()

	return line.Render(f)
}

// climb perturbs a single term by ±Step, keeping whichever direction
// lowers the error and reverting if neither does.
func (t *Tuner) climb(term *int) {
	base := t.error()

	*term += t.Step
	if up := t.error(); up < base {
		return
	}

	*term -= 2 * t.Step
	if down := t.error(); down < base {
		return
	}

	*term += t.Step // neither direction helped: revert
}
