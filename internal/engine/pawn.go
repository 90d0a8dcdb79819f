package engine

import "github.com/lgbarn/chessmoves-go/internal/chess"

// Pawn advances towards the opponent and captures diagonally.
type Pawn struct {
	base
}

// Moves returns the pawn's pushes and captures.
func (p *Pawn) Moves() []chess.Square {
	return p.cache.get(p.generate)
}

// pawnStartRow returns the row a pawn of the given colour starts on.
func pawnStartRow(colour chess.Colour) int {
	if colour == chess.White {
		return chess.BoardSize - 2
	}
	return 1
}

func (p *Pawn) generate() []chess.Square {
	var moves []chess.Square
	forward := p.colour.Forward()

	// Pushes never capture, and the double step needs both squares clear.
	one := p.pos.Offset(forward, 0)
	if one.InBounds() && p.board.IsEmpty(one) {
		moves = append(moves, one)
		two := one.Offset(forward, 0)
		if p.pos.Row == pawnStartRow(p.colour) && p.board.IsEmpty(two) {
			moves = append(moves, two)
		}
	}

	for _, dc := range []int{-1, 1} {
		target := p.pos.Offset(forward, dc)
		if occ := p.board.Get(target); occ != nil && occ.Colour() != p.colour {
			moves = append(moves, target)
		}
	}
	return moves
}
