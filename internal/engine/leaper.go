package engine

import "github.com/lgbarn/chessmoves-go/internal/chess"

// Knight jumps in an L shape over any intervening pieces.
type Knight struct {
	base
}

// Moves returns the on-board L jumps not landing on a friendly piece.
func (k *Knight) Moves() []chess.Square {
	return k.cache.get(func() []chess.Square {
		return step(k.board, k.pos, k.colour, knightOffsets)
	})
}

// King steps one square in any direction. Whether the destination is
// attacked is not considered.
type King struct {
	base
}

// Moves returns the adjacent squares not held by a friendly piece.
func (k *King) Moves() []chess.Square {
	return k.cache.get(func() []chess.Square {
		return step(k.board, k.pos, k.colour, kingOffsets)
	})
}
