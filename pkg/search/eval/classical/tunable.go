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

package classical

// Term names one tunable op/eg pair term by pointing directly at the
// package variable backing it, so an external tuner can read and
// perturb it without classical exposing a getter/setter per term.
type Term struct {
	Name   string
	Op, Eg *int
}

// Tunable lists every op/eg pair term currently exposed for external
// tuning. It deliberately leaves out the array-indexed tables (king
// safety rings, passed pawn ramps and the like): those need per-index
// terms of their own to tune properly, which is out of scope for the
// coordinate-descent tuner this registry feeds.
var Tunable = []Term{
	{"KnightWeight", &knightWeight.op, &knightWeight.eg},
	{"BishopWeight", &bishopWeight.op, &bishopWeight.eg},
	{"RookWeight", &rookWeight.op, &rookWeight.eg},
	{"QueenWeight", &queenWeight.op, &queenWeight.eg},
	{"BishopPairBonus", &bishopPairBonus.op, &bishopPairBonus.eg},
}
