package engine

import "github.com/lgbarn/chessmoves-go/internal/chess"

// offset is a (row, col) displacement.
type offset struct {
	dr, dc int
}

var (
	knightOffsets = []offset{
		{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2},
		{1, -2}, {1, 2}, {2, -1}, {2, 1},
	}

	kingOffsets = []offset{
		{-1, -1}, {-1, 0}, {-1, 1},
		{0, -1}, {0, 1},
		{1, -1}, {1, 0}, {1, 1},
	}

	orthogonalDirections = []offset{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	diagonalDirections   = []offset{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	queenDirections      = []offset{
		{-1, 0}, {1, 0}, {0, -1}, {0, 1},
		{-1, -1}, {-1, 1}, {1, -1}, {1, 1},
	}
)

// canLand reports whether a piece of the given colour may finish on sq:
// the square is on the board and not held by a friendly piece.
func canLand(board *chess.Board, sq chess.Square, colour chess.Colour) bool {
	if !sq.InBounds() {
		return false
	}
	occ := board.Get(sq)
	return occ == nil || occ.Colour() != colour
}

// step returns the single-step destinations of a leaper.
func step(board *chess.Board, from chess.Square, colour chess.Colour, offsets []offset) []chess.Square {
	var moves []chess.Square
	for _, o := range offsets {
		to := from.Offset(o.dr, o.dc)
		if canLand(board, to, colour) {
			moves = append(moves, to)
		}
	}
	return moves
}

// slide walks each ray until the edge, stopping before a friendly piece
// and on (including) an enemy piece.
func slide(board *chess.Board, from chess.Square, colour chess.Colour, directions []offset) []chess.Square {
	var moves []chess.Square
	for _, d := range directions {
		for to := from.Offset(d.dr, d.dc); to.InBounds(); to = to.Offset(d.dr, d.dc) {
			occ := board.Get(to)
			if occ == nil {
				moves = append(moves, to)
				continue
			}
			if occ.Colour() != colour {
				moves = append(moves, to)
			}
			break
		}
	}
	return moves
}
