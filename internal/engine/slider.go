package engine

import "github.com/lgbarn/chessmoves-go/internal/chess"

// Bishop slides along diagonals.
type Bishop struct {
	base
}

func (b *Bishop) Moves() []chess.Square {
	return b.cache.get(func() []chess.Square {
		return slide(b.board, b.pos, b.colour, diagonalDirections)
	})
}

// Rook slides along ranks and files.
type Rook struct {
	base
}

func (r *Rook) Moves() []chess.Square {
	return r.cache.get(func() []chess.Square {
		return slide(r.board, r.pos, r.colour, orthogonalDirections)
	})
}

// Queen combines the rook and bishop rays.
type Queen struct {
	base
}

func (q *Queen) Moves() []chess.Square {
	return q.cache.get(func() []chess.Square {
		return slide(q.board, q.pos, q.colour, queenDirections)
	})
}
