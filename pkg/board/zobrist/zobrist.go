// Copyright © 2022 Rak Laptudirm <raklaptudirm@gmail.com>
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

// Package zobrist declares the pseudo-random numbers used to incrementally
// maintain a Board's hash key, along with the hash key type itself.
package zobrist

import (
	"github.com/corvidchess/corvid/internal/util"
	"github.com/corvidchess/corvid/pkg/board/move/castling"
	"github.com/corvidchess/corvid/pkg/board/piece"
	"github.com/corvidchess/corvid/pkg/board/square"
)

// Key is a Zobrist hash key identifying a board position.
type Key uint64

// PieceSquare holds one random number per (piece, square) pair.
var PieceSquare [piece.N][square.N]Key

// EnPassant holds one random number per en-passant file.
var EnPassant [square.FileN]Key

// Castling holds one random number per castling-rights bitset value.
var Castling [castling.N]Key

// SideToMove is XOR-ed into the hash whenever it is black to move.
var SideToMove Key

func init() {
	var rng util.PRNG
	rng.Seed(1070372) // seed borrowed from Stockfish's zobrist init

	for p := 0; p < piece.N; p++ {
		for s := square.A8; s <= square.H1; s++ {
			PieceSquare[p][s] = Key(rng.Uint64())
		}
	}

	for f := square.FileA; f <= square.FileH; f++ {
		EnPassant[f] = Key(rng.Uint64())
	}

	for r := castling.None; r <= castling.All; r++ {
		Castling[r] = Key(rng.Uint64())
	}

	SideToMove = Key(rng.Uint64())
}
