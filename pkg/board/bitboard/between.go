package bitboard

import "github.com/corvidchess/corvid/pkg/board/square"

// Between is a lookup table containing the set of squares strictly
// between two squares that lie on a common rank, file, or diagonal. It is
// Empty for square pairs that do not share a line, and for a square
// paired with itself.
var Between [square.N][square.N]Board

func init() {
	for from := square.A8; from <= square.H1; from++ {
		for to := square.A8; to <= square.H1; to++ {
			Between[from][to] = rayBetween(from, to)
		}
	}
}

// rayBetween computes the squares strictly between from and to along the
// rank, file, or diagonal connecting them, using the hyperbola-quintessence
// sliding attack primitive with the single square to as the lone blocker.
func rayBetween(from, to square.Square) Board {
	if from == to {
		return Empty
	}

	toBB := Squares[to]

	switch {
	case from.File() == to.File():
		return Hyperbola(from, toBB, Files[from.File()]) & Hyperbola(to, Squares[from], Files[from.File()])
	case from.Rank() == to.Rank():
		return Hyperbola(from, toBB, Ranks[from.Rank()]) & Hyperbola(to, Squares[from], Ranks[from.Rank()])
	case from.Diagonal() == to.Diagonal():
		return Hyperbola(from, toBB, Diagonals[from.Diagonal()]) & Hyperbola(to, Squares[from], Diagonals[from.Diagonal()])
	case from.AntiDiagonal() == to.AntiDiagonal():
		return Hyperbola(from, toBB, AntiDiagonals[from.AntiDiagonal()]) & Hyperbola(to, Squares[from], AntiDiagonals[from.AntiDiagonal()])
	default:
		return Empty
	}
}
