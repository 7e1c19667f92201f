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
	"github.com/corvidchess/corvid/pkg/board/move"
	"github.com/corvidchess/corvid/pkg/search/time"
)

// Limits contains the various limits which decide how long a search can
// run for. It should be passed to the main search function when starting
// a new search.
type Limits struct {
	// search tree limits
	Nodes int
	Depth int

	// Moves, if non-empty, restricts the search to the root moves it
	// contains (the "searchmoves" UCI option).
	Moves []move.Move

	// search time limits
	Infinite bool
	Time     time.Manager
}

// UpdateLimits updates the search limits while a search is in progress.
// It's used to switch a pondering search's limits to the real ones on
// receiving ponderhit. The caller should make sure that a search is
// indeed in progress before calling UpdateLimits.
func (ctx *Context) UpdateLimits(limits Limits) {
	if limits.Time != nil {
		limits.Time.GetDeadline()
	}

	ctx.mu.Lock()
	ctx.limits = limits
	ctx.mu.Unlock()
}

// limitDepth returns the depth a worker's iterative deepening loop
// should stop at.
func (ctx *Context) limitDepth() int {
	ctx.mu.Lock()
	defer ctx.mu.Unlock()
	return ctx.limits.Depth
}

// rootMoves returns the root move restriction currently in effect, if
// any.
func (ctx *Context) rootMoves() []move.Move {
	ctx.mu.Lock()
	defer ctx.mu.Unlock()
	return ctx.limits.Moves
}
