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

// Package board implements a complete chess board along with valid move
// generation and other related utilities.
package board

import (
	"fmt"

	"github.com/corvidchess/corvid/pkg/board/bitboard"
	"github.com/corvidchess/corvid/pkg/board/mailbox"
	"github.com/corvidchess/corvid/pkg/board/move"
	"github.com/corvidchess/corvid/pkg/board/move/attacks"
	"github.com/corvidchess/corvid/pkg/board/move/castling"
	"github.com/corvidchess/corvid/pkg/board/piece"
	"github.com/corvidchess/corvid/pkg/board/square"
	"github.com/corvidchess/corvid/pkg/board/zobrist"
)

// Board represents the state of a chessboard at a given position.
type Board struct {
	// position data
	Hash     zobrist.Key
	Position mailbox.Board // 8x8 for fast lookup
	PieceBBs [piece.TypeN]bitboard.Board
	ColorBBs [piece.ColorN]bitboard.Board

	Kings [piece.ColorN]square.Square

	SideToMove      piece.Color
	EnPassantTarget square.Square
	CastlingRights  castling.Rights

	CheckN    int
	CheckMask bitboard.Board

	// PawnKey is a zobrist hash over pawns alone, used to index the pawn
	// hash table independently of the rest of the position.
	PawnKey zobrist.Key

	// PST is the incrementally maintained material-plus-placement score
	// of every piece on the board, from each color's own perspective.
	PST [piece.ColorN]Score

	// Material is the incrementally maintained material-only score of
	// every piece on the board, from each color's own perspective.
	Material [piece.ColorN]Score

	// move counters
	Plys      int
	FullMoves int
	DrawClock int

	// game data
	History [move.MaxN]Undo
}

type Undo struct {
	Move            move.Move
	CastlingRights  castling.Rights
	CapturedPiece   piece.Piece
	EnPassantTarget square.Square
	DrawClock       int
	Hash            zobrist.Key
}

// String converts a Board into a human readable string.
func (b Board) String() string {
	return fmt.Sprintf("%s\nFen: %s\nKey: %X\n", b.Position, b.FEN(), b.Hash)
}

// IsDraw checks if the given position is a draw either by the 50 move rule
// or by a repetition. Threefold repetition is not calculated as it is just
// simpler to evaluate any repetition as a draw.
func (b *Board) IsDraw() bool {
	return b.DrawClock >= 100 || b.IsRepetition()
}

// IsRepetition checks if the current position has occurred in the game
// before. This is done by probing the game history till the last
// irreversible move, which is a pawn push or a capture.
func (b *Board) IsRepetition() bool {
	depth := b.Plys - b.DrawClock
	if depth < 0 {
		depth = 0
	}

	for i := b.Plys - 2; i >= depth; i -= 2 {
		if b.History[i].Hash == b.Hash {
			return true
		}
	}

	return false
}

func (b *Board) Occupied() bitboard.Board {
	return b.ColorBBs[piece.White] | b.ColorBBs[piece.Black]
}

func (b *Board) ClearSquare(s square.Square) {
	p := b.Position[s]
	c := p.Color()

	b.ColorBBs[c].Unset(s)

	// remove piece from other records
	b.PieceBBs[p.Type()].Unset(s)       // piece bitboard
	b.Position[s] = piece.NoPiece       // mailbox board
	b.Hash ^= zobrist.PieceSquare[p][s] // zobrist hash

	b.PST[c] -= pst[p][s]
	b.Material[c] -= pieceValue[p][s]

	if p.Type() == piece.Pawn {
		b.PawnKey ^= zobrist.PieceSquare[p][s]
	}
}

func (b *Board) FillSquare(s square.Square, p piece.Piece) {
	c := p.Color()
	t := p.Type()

	b.ColorBBs[c].Set(s)

	if t == piece.King {
		b.Kings[c] = s
	}

	b.PieceBBs[t].Set(s)                // piece bitboard
	b.Position[s] = p                   // mailbox board
	b.Hash ^= zobrist.PieceSquare[p][s] // zobrist hash

	b.PST[c] += pst[p][s]
	b.Material[c] += pieceValue[p][s]

	if t == piece.Pawn {
		b.PawnKey ^= zobrist.PieceSquare[p][s]
	}
}

func (b *Board) IsInCheck(c piece.Color) bool {
	return b.IsAttacked(b.Kings[c], c.Other())
}

func (b *Board) IsAttacked(s square.Square, them piece.Color) bool {
	occ := b.Occupied()

	if attacks.Pawn[them.Other()][s]&b.PawnsBB(them) != bitboard.Empty {
		return true
	}

	if attacks.Knight[s]&b.KnightsBB(them) != bitboard.Empty {
		return true
	}

	if attacks.King[s]&b.KingBB(them) != bitboard.Empty {
		return true
	}

	queens := b.QueensBB(them)

	if attacks.Bishop(s, occ)&(b.BishopsBB(them)|queens) != bitboard.Empty {
		return true
	}

	return attacks.Rook(s, occ)&(b.RooksBB(them)|queens) != bitboard.Empty
}

func (b *Board) PawnsBB(c piece.Color) bitboard.Board {
	return b.PieceBBs[piece.Pawn] & b.ColorBBs[c]
}

func (b *Board) KnightsBB(c piece.Color) bitboard.Board {
	return b.PieceBBs[piece.Knight] & b.ColorBBs[c]
}

func (b *Board) BishopsBB(c piece.Color) bitboard.Board {
	return b.PieceBBs[piece.Bishop] & b.ColorBBs[c]
}

func (b *Board) RooksBB(c piece.Color) bitboard.Board {
	return b.PieceBBs[piece.Rook] & b.ColorBBs[c]
}

func (b *Board) QueensBB(c piece.Color) bitboard.Board {
	return b.PieceBBs[piece.Queen] & b.ColorBBs[c]
}

func (b *Board) KingBB(c piece.Color) bitboard.Board {
	return b.PieceBBs[piece.King] & b.ColorBBs[c]
}

// CalculateCheckmask recomputes the check-mask and checker count of the
// current board state directly from Board's own records, without the
// scratch data a moveGenState accumulates during move generation, for
// callers that only need to know whether/how a side is in check, outside
// of move generation itself. Move generation uses moveGenState's own
// CalculateCheckmask instead.
func (b *Board) CalculateCheckmask() {
	occ := b.Occupied()

	us := b.SideToMove
	them := us.Other()

	b.CheckN = 0
	b.CheckMask = bitboard.Empty

	kingSq := b.Kings[us]

	pawns := b.PawnsBB(them) & attacks.Pawn[us][kingSq]
	knights := b.KnightsBB(them) & attacks.Knight[kingSq]
	bishops := (b.BishopsBB(them) | b.QueensBB(them)) & attacks.Bishop(kingSq, occ)
	rooks := (b.RooksBB(them) | b.QueensBB(them)) & attacks.Rook(kingSq, occ)

	switch {
	case pawns != bitboard.Empty:
		b.CheckMask |= pawns
		b.CheckN++

	case knights != bitboard.Empty:
		b.CheckMask |= knights
		b.CheckN++
	}

	if bishops != bitboard.Empty {
		bishopSq := bishops.FirstOne()
		b.CheckMask |= bitboard.Between[kingSq][bishopSq] | bitboard.Squares[bishopSq]
		b.CheckN++
	}

	if b.CheckN < 2 && rooks != bitboard.Empty {
		if b.CheckN == 0 && rooks.Count() > 1 {
			b.CheckN++
		} else {
			rookSq := rooks.FirstOne()
			b.CheckMask |= bitboard.Between[kingSq][rookSq] | bitboard.Squares[rookSq]
			b.CheckN++
		}
	}

	if b.CheckN == 0 {
		b.CheckMask = bitboard.Universe
	}
}
