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

package search

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/corvidchess/corvid/internal/util"
	"github.com/corvidchess/corvid/pkg/board/move"
	"github.com/corvidchess/corvid/pkg/search/eval"
)

// Stats stores a worker's local search statistics: counters kept
// per-goroutine without synchronization. The Context's shared node
// counter is maintained separately, with an atomic add on every node.
type Stats struct {
	TTHits int // transposition table hits
	Nodes  int // positions (nodes) searched by this worker
}

// generateReport generates a statistics report from the Context's
// aggregate counters and currently-reported principal variation. Callers
// must hold ctx.mu.
func (ctx *Context) generateReport() Report {
	searchTime := time.Since(ctx.searchStart)
	nodes := atomic.LoadInt64(&ctx.nodes)

	return Report{
		Depth:    ctx.depth,
		SelDepth: int(atomic.LoadInt64(&ctx.selDepth)),

		Nodes: int(nodes),
		Nps:   float64(nodes) / util.Max(0.001, searchTime.Seconds()),

		Hashfull: ctx.tt.Hashfull(),

		Time: searchTime,

		Score: ctx.pvScore,
		PV:    ctx.pv,
	}
}

// Report represents a report of various statistics about a search.
type Report struct {
	// depth stats
	Depth    int // current id depth
	SelDepth int // max depth reached

	// node stats
	Nodes int
	Nps   float64

	// tt stats
	Hashfull float64

	// search time stats
	Time time.Duration

	// principal variation stats
	Score eval.Eval
	PV    move.Variation
}

// String converts a Report into an UCI compatible info string.
func (report Report) String() string {
	return fmt.Sprintf(
		"info depth %d seldepth %d score %s nodes %d nps %.f hashfull %.f tbhits 0 time %d pv %s",
		report.Depth, report.SelDepth, report.Score, report.Nodes, report.Nps,
		report.Hashfull*1000, // convert fraction to per-mille
		report.Time.Milliseconds(), report.PV,
	)
}
