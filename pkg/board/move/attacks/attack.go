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

// Package attacks computes the attack sets of chess pieces. Non-sliding
// piece (pawn, knight, king) attack sets are precomputed once at package
// init. Sliding piece (bishop, rook, queen) attack sets are computed on
// the fly with the hyperbola quintessence algorithm, which needs no
// generated magic-number tables.
// https://www.chessprogramming.org/Hyperbola_Quintessence
package attacks

import (
	"github.com/corvidchess/corvid/pkg/board/bitboard"
	"github.com/corvidchess/corvid/pkg/board/piece"
	"github.com/corvidchess/corvid/pkg/board/square"
)

// Pawn holds the capture attack set of a pawn of a given color on a
// given square.
var Pawn [piece.ColorN][square.N]bitboard.Board

// Knight holds the attack set of a knight on a given square.
var Knight [square.N]bitboard.Board

// King holds the attack set of a king on a given square.
var King [square.N]bitboard.Board

func init() {
	for s := square.A8; s <= square.H1; s++ {
		Pawn[piece.White][s] = whitePawnAttacksFrom(s)
		Pawn[piece.Black][s] = blackPawnAttacksFrom(s)
		Knight[s] = knightAttacksFrom(s)
		King[s] = kingAttacksFrom(s)
	}
}

func whitePawnAttacksFrom(s square.Square) bitboard.Board {
	pawnUp := bitboard.Squares[s].North()
	return pawnUp.East() | pawnUp.West()
}

func blackPawnAttacksFrom(s square.Square) bitboard.Board {
	pawnUp := bitboard.Squares[s].South()
	return pawnUp.East() | pawnUp.West()
}

func knightAttacksFrom(from square.Square) bitboard.Board {
	knight := bitboard.Squares[from]

	knightNorth := knight.North().North()
	knightSouth := knight.South().South()

	knightEast := knight.East().East()
	knightWest := knight.West().West()

	knightAttacks := knightNorth.East() | knightNorth.West()
	knightAttacks |= knightSouth.East() | knightSouth.West()

	knightAttacks |= knightEast.North() | knightEast.South()
	knightAttacks |= knightWest.North() | knightWest.South()

	return knightAttacks
}

func kingAttacksFrom(from square.Square) bitboard.Board {
	king := bitboard.Squares[from]

	kingNorth := king.North()
	kingSouth := king.South()
	kingEast := king.East()
	kingWest := king.West()

	kingAttacks := kingNorth | kingSouth | kingEast | kingWest
	kingAttacks |= kingNorth.East() | kingNorth.West()
	kingAttacks |= kingSouth.East() | kingSouth.West()

	return kingAttacks
}

// Of returns the attack set of the given piece on the given square
// and with the given blocker set. The blocker set is unused while
// calculating the attacks sets of non-sliding pieces.
func Of(p piece.Piece, s square.Square, blockers bitboard.Board) bitboard.Board {
	switch p.Type() {
	case piece.Pawn:
		return Pawn[p.Color()][s]
	case piece.Knight:
		return Knight[s]
	case piece.Bishop:
		return Bishop(s, blockers)
	case piece.Rook:
		return Rook(s, blockers)
	case piece.Queen:
		return Queen(s, blockers)
	case piece.King:
		return King[s]
	default:
		panic("attacks.Of: unknown piece type")
	}
}

// PawnPush gives the result after pushing every pawn in the given BB.
func PawnPush(pawns bitboard.Board, color piece.Color) bitboard.Board {
	return pawns.Up(color)
}

func Pawns(pawns bitboard.Board, color piece.Color) bitboard.Board {
	return PawnsLeft(pawns, color) | PawnsRight(pawns, color)
}

// PawnsLeft gives the result after every pawn captures left in the given BB.
func PawnsLeft(pawns bitboard.Board, color piece.Color) bitboard.Board {
	return pawns.Up(color).West()
}

// PawnsRight gives the result after every pawn captures right in the given BB.
func PawnsRight(pawns bitboard.Board, color piece.Color) bitboard.Board {
	return pawns.Up(color).East()
}

// Bishop returns the attack set for a bishop on the given square and with
// the given blocker set (occupied squares), via hyperbola quintessence
// along both diagonals through the square.
func Bishop(s square.Square, occ bitboard.Board) bitboard.Board {
	diagonal := bitboard.Hyperbola(s, occ, bitboard.Diagonals[s.Diagonal()])
	antiDiagonal := bitboard.Hyperbola(s, occ, bitboard.AntiDiagonals[s.AntiDiagonal()])
	return diagonal | antiDiagonal
}

// Rook returns the attack set for a rook on the given square and with
// the given blocker set (occupied squares), via hyperbola quintessence
// along the file and rank through the square.
func Rook(s square.Square, occ bitboard.Board) bitboard.Board {
	file := bitboard.Hyperbola(s, occ, bitboard.Files[s.File()])
	rank := bitboard.Hyperbola(s, occ, bitboard.Ranks[s.Rank()])
	return file | rank
}

// Queen returns the attack set for a queen on the given square and with
// the given blocker set(occupied squares). It is calculated as the union
// of the attack sets of a bishop and a rook on the given square.
func Queen(s square.Square, occ bitboard.Board) bitboard.Board {
	return Rook(s, occ) | Bishop(s, occ)
}
