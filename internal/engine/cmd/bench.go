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

package cmd

import (
	"errors"
	"strconv"
	"time"

	"github.com/corvidchess/corvid/internal/engine/context"
	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/formats/fen"
	"github.com/corvidchess/corvid/pkg/search"
	"github.com/corvidchess/corvid/pkg/tune"
	"github.com/corvidchess/corvid/pkg/uci/cmd"
	"github.com/corvidchess/corvid/pkg/uci/flag"
)

// defaultBenchDepth is searched on every position of the bench suite when
// no depth flag is given: shallow enough to run in a few seconds, deep
// enough to exercise every part of the search.
const defaultBenchDepth = 10

// Custom command bench [depth]
//
// Runs a fixed-depth search over a small, deterministic suite of
// positions and reports the total nodes searched and nodes per second.
// Used to sanity check that a change hasn't regressed search speed or
// crashed outright; it is not a strength benchmark.
func NewBench(engine *context.Engine) cmd.Command {
	schema := flag.NewSchema()
	schema.Single("depth")

	return cmd.Command{
		Name: "bench",
		Run: func(interaction cmd.Interaction) error {
			if engine.Search.InProgress() {
				return errors.New("bench: search currently in progress")
			}

			depth := defaultBenchDepth
			if d := interaction.Values["depth"]; d.Set {
				parsed, err := strconv.Atoi(d.Value.(string))
				if err != nil {
					return err
				}
				depth = parsed
			}

			suite := tune.BenchSuite()
			if len(suite) == 0 {
				return errors.New("bench: suite produced no positions")
			}

			savedBoard := engine.Search.Board
			defer func() { engine.Search.Board = savedBoard }()

			limits := search.Limits{Depth: depth}

			start := time.Now()
			var totalNodes int64

			for i, position := range suite {
				positionFEN := fen.FromString(position)
				engine.Search.Board = board.NewBoard(positionFEN[:])

				_, _, err := engine.Search.Search(limits)
				if err != nil {
					return err
				}

				nodes := engine.Search.Nodes()
				totalNodes += nodes
				interaction.Replyf("position %d/%d: %d nodes", i+1, len(suite), nodes)
			}

			elapsed := time.Since(start)
			nps := float64(totalNodes) / elapsed.Seconds()

			interaction.Replyf("%d nodes %.f nps", totalNodes, nps)
			return nil
		},

		Flags: schema,
	}
}
