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

// Package search implements the engine's move search: a lazy-SMP pool of
// workers each running iterative deepening, principal variation search
// with aspiration windows, quiescence search, and the move ordering and
// pruning heuristics tying them together.
package search

import (
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/corvidchess/corvid/internal/util"
	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/board/move"
	"github.com/corvidchess/corvid/pkg/search/eval"
	"github.com/corvidchess/corvid/pkg/search/tt"
)

// MaxDepth is the maximum depth (in plys) that a search is allowed to
// reach, and bounds the size of the various per-ply tables (killers,
// reductions) the search keeps.
const MaxDepth = 246

// pawnHashBits is the size, in address bits, of a worker's pawn hash
// table. 2^pawnHashBits entries are kept.
const pawnHashBits = 16

// pawnValueEg is the endgame value of a pawn, used to scale the Contempt
// UCI option (given in centipawns-of-a-pawn) into the engine's internal
// evaluation units. It mirrors classical's own endgame pawn weight.
const pawnValueEg = 94

// maxWorkers bounds the number of concurrent search workers. It is kept
// small enough that the scheduling signal below fits in a single machine
// word.
const maxWorkers = 64

// NewContext creates a new search Context with an empty transposition
// table of the given size in megabytes. report is called with a Report
// every time any worker completes a deeper iteration than has yet been
// reported, and is how the search communicates progress back to the UCI
// layer.
func NewContext(report func(Report), hashMB int) *Context {
	return &Context{
		Board:      board.NewBoard(board.StartFEN),
		tt:         tt.NewTable(hashMB),
		report:     report,
		numWorkers: 1,
		signal:     stopSignal,
	}
}

// Context stores all the state shared between the workers of an ongoing
// or finished search: the root position, the transposition table, the
// search limits, and the aggregate statistics/principal variation
// reported back to the UCI layer. A Context is reused across searches
// within the same game so that the transposition table stays warm; a new
// Context should be created for a new game.
//
// The transposition table is shared and updated by every worker without
// synchronization. This is the standard "lockless hashing" compromise
// used by SMP engines: a concurrent Store/Probe race is possible, but
// its worst outcome is a single corrupted-looking entry being ignored or
// mildly misjudged, never a crash, so the cost of locking every node is
// not worth paying.
type Context struct {
	// nodes, selDepth and signal are updated by every worker via the
	// sync/atomic package, and are kept first in the struct so they
	// stay 64-bit aligned on 32-bit platforms, as required by
	// sync/atomic's 64-bit functions.
	nodes    int64
	selDepth int64

	// signal is the shared abort bitmask: bit i set means worker i must
	// abandon its current iteration (ABORT_ONE), and the distinguished
	// all-ones value stopSignal means the whole search must stop
	// (ABORT_ALL). A plain atomic load/store is enough to read it or to
	// force a global stop; raising or clearing an individual bit is a
	// read-modify-write and requires holding schedMu (see raiseBit,
	// clearBit).
	signal uint64

	// Board is the root position currently being searched. It should be
	// replaced directly by the caller (e.g. on a "position" command)
	// between searches, never while a search is in progress. Every
	// worker gets its own copy of it when a search starts.
	Board *board.Board

	tt *tt.Table

	// Contempt is the engine's draw aversion/seeking setting, set via
	// the UCI Contempt option.
	Contempt int

	numWorkers int

	// schedMu guards workerDepths, the "which depth is each worker
	// searching" bookkeeping used to keep helper workers from starting
	// an iteration half the pool has already reached, and every
	// read-modify-write of signal's individual bits (raiseBit, clearBit).
	schedMu      sync.Mutex
	workerDepths []int

	// mu guards the best-known result reported back to the caller: the
	// deepest iteration any worker has completed so far.
	mu          sync.Mutex
	depth       int
	pv          move.Variation
	pvScore     eval.Eval
	searchStart time.Time

	limits Limits
	report func(Report)
}

// Search initializes the context for a new search, spawns its worker
// pool and waits for it to finish. It returns once the search has
// stopped, either due to a limit being reached or Stop being called.
func (ctx *Context) Search(limits Limits) (move.Variation, eval.Eval, error) {
	if ctx.Board.IsInCheck(ctx.Board.SideToMove.Other()) {
		// side not to move is in check; the position is illegal and
		// there is no sensible move to search for
		return move.Variation{}, eval.Inf, errors.New("search: position is illegal")
	}

	ctx.start(limits)
	defer ctx.Stop()

	workers := make([]*worker, ctx.numWorkers)
	for i := range workers {
		workers[i] = newWorker(ctx, i, ctx.Board)
	}

	done := make(chan struct{})
	go ctx.poll(done)

	var wg sync.WaitGroup
	wg.Add(len(workers))
	for _, w := range workers {
		w := w
		go func() {
			defer wg.Done()
			w.iterate()
		}()
	}
	wg.Wait()
	close(done)

	ctx.mu.Lock()
	pv, score := ctx.pv, ctx.pvScore
	ctx.mu.Unlock()

	return pv, score, nil
}

// poll periodically checks the search's time and node limits, stopping
// the search once either is breached. It runs on its own goroutine for
// the duration of a Search call and exits as soon as done is closed.
func (ctx *Context) poll(done <-chan struct{}) {
	ticker := time.NewTicker(5 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			if ctx.limitsBreached() {
				ctx.Stop()
				return
			}
		}
	}
}

// limitsBreached reports whether the node or time limit of the ongoing
// search has been crossed. An infinite search is never stopped this way.
func (ctx *Context) limitsBreached() bool {
	ctx.mu.Lock()
	limits := ctx.limits
	ctx.mu.Unlock()

	if limits.Infinite {
		return false
	}

	if limits.Nodes > 0 && atomic.LoadInt64(&ctx.nodes) > int64(limits.Nodes) {
		return true
	}

	return limits.Time != nil && limits.Time.Expired()
}

// Nodes returns the number of nodes searched so far in the current (or
// most recently finished) search.
func (ctx *Context) Nodes() int64 {
	return atomic.LoadInt64(&ctx.nodes)
}

// SetThreads changes the number of workers used by future searches on
// this context. It must not be called while a search is in progress.
func (ctx *Context) SetThreads(threads int) {
	ctx.numWorkers = util.Clamp(threads, 1, maxWorkers)
}

// InProgress reports whether a search is currently running on this
// context.
func (ctx *Context) InProgress() bool {
	return !ctx.globalStop()
}

// Stop stops any ongoing search on this context by raising every bit of
// signal at once (ABORT_ALL). Every worker notices on its next node and
// unwinds immediately. A plain atomic store is safe here, unlike
// raiseBit/clearBit's individual bits, since it isn't a read-modify-write.
func (ctx *Context) Stop() {
	atomic.StoreUint64(&ctx.signal, stopSignal)
}

// ResizeTT resizes the context's transposition table to the given size
// in megabytes, discarding its current contents.
func (ctx *Context) ResizeTT(mb int) {
	ctx.tt.Resize(mb)
}

// start resets the per-search counters and limits before a new search.
func (ctx *Context) start(limits Limits) {
	limits.Depth = util.Min(limits.Depth, MaxDepth)
	if limits.Depth == 0 {
		limits.Depth = MaxDepth
	}

	if limits.Time != nil {
		limits.Time.GetDeadline()
	}

	ctx.limits = limits
	ctx.searchStart = time.Now()

	atomic.StoreInt64(&ctx.nodes, 0)
	atomic.StoreInt64(&ctx.selDepth, 0)

	ctx.depth = 0
	ctx.pv = move.Variation{}

	ctx.workerDepths = make([]int, ctx.numWorkers)

	atomic.StoreUint64(&ctx.signal, 0)
	ctx.tt.NextEpoch()
}

// drawScore returns the contempt-adjusted score the search assigns to a
// draw reached at the given ply: positive if the side to move at the
// root stands to gain by steering towards/away from draws, scaled from
// centipawns-of-a-pawn into the engine's evaluation units.
func (ctx *Context) drawScore(ply int) eval.Eval {
	contempt := eval.Eval(ctx.Contempt) * pawnValueEg / 100

	if ply%2 == 1 {
		return contempt
	}
	return -contempt
}

// completeIteration records the result of a worker finishing an
// iteration, if it is the deepest one seen so far, and reports it to the
// UCI layer.
func (ctx *Context) completeIteration(w *worker, depth int, score eval.Eval, pv move.Variation) {
	ctx.mu.Lock()
	defer ctx.mu.Unlock()

	if depth < ctx.depth {
		// a different worker already reported an iteration at least
		// this deep; this worker's result is stale
		return
	}

	ctx.depth = depth
	ctx.pv = pv
	ctx.pvScore = score

	if ctx.report != nil {
		ctx.report(ctx.generateReport())
	}
}

// stopSignal is the distinguished all-bits-set value of Context.signal
// that means ABORT_ALL: the whole search stops, as opposed to an
// individual bit, which only tells one worker to abandon its current
// iteration (ABORT_ONE). numWorkers is bounded by maxWorkers so that this
// sentinel is reachable only by a real Stop, never by raiseBit setting
// every worker's bit one at a time through ordinary scheduling.
const stopSignal = ^uint64(0)

// globalStop reports whether signal currently holds the ABORT_ALL
// sentinel.
func (ctx *Context) globalStop() bool {
	return atomic.LoadUint64(&ctx.signal) == stopSignal
}

// raiseBit sets worker id's abort bit in signal, telling it to abandon
// its in-progress iteration at the next point it polls. The caller must
// hold schedMu: this is a read-modify-write over a word other workers
// are concurrently clearing their own bit in.
func (ctx *Context) raiseBit(id int) {
	for {
		old := atomic.LoadUint64(&ctx.signal)
		if old == stopSignal {
			return // already a global stop; no finer-grained bit needed
		}
		if atomic.CompareAndSwapUint64(&ctx.signal, old, old|uint64(1)<<uint(id)) {
			return
		}
	}
}

// clearBit clears worker id's own abort bit, done at the start of every
// iteration per the scheduling contract: a worker never starts a fresh
// iteration with a stale abort request pending against it. The caller
// must hold schedMu.
func (ctx *Context) clearBit(id int) {
	for {
		old := atomic.LoadUint64(&ctx.signal)
		if old == stopSignal {
			return
		}
		if atomic.CompareAndSwapUint64(&ctx.signal, old, old&^(uint64(1)<<uint(id))) {
			return
		}
	}
}
