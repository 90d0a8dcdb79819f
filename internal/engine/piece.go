// Package engine generates pseudo-legal candidate moves for chess pieces.
// Each piece kind is its own type implementing Piece; all of them read the
// board through a non-owning reference and never write to it.
package engine

import (
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chessmoves-go/internal/chess"
	"github.com/lgbarn/chessmoves-go/internal/errors"
)

// Piece is a chess piece that can list its candidate destinations.
type Piece interface {
	chess.Occupant

	// Position returns the square the piece currently records.
	Position() chess.Square

	// SetPosition records a new square and marks the move cache stale.
	// It does not touch the board.
	SetPosition(sq chess.Square) error

	// Moves returns the pseudo-legal destinations from the current square.
	// The result is cached until the piece moves or is invalidated.
	Moves() []chess.Square

	// Invalidate marks the move cache stale without moving the piece.
	Invalidate()

	// Glyph returns the FEN letter of the piece.
	Glyph() byte
}

// NewPiece creates a piece of the given kind on sq. The board is only read.
func NewPiece(kind chess.Kind, colour chess.Colour, sq chess.Square, board *chess.Board) (Piece, error) {
	if !sq.InBounds() {
		return nil, &errors.SquareError{Err: errors.ErrOutOfBounds, Op: "new piece", Row: sq.Row, Col: sq.Col}
	}
	b := base{kind: kind, colour: colour, pos: sq, board: board}
	switch kind {
	case chess.Pawn:
		return &Pawn{b}, nil
	case chess.Knight:
		return &Knight{b}, nil
	case chess.Bishop:
		return &Bishop{b}, nil
	case chess.Rook:
		return &Rook{b}, nil
	case chess.Queen:
		return &Queen{b}, nil
	case chess.King:
		return &King{b}, nil
	default:
		return nil, errors.Wrapf(errors.ErrUnknownPiece, "kind %d", int(kind))
	}
}

type cacheState int

const (
	stale cacheState = iota
	fresh
)

// moveCache holds the last generated move list. Its zero value is stale.
type moveCache struct {
	state cacheState
	moves []chess.Square
}

// get returns a copy of the cached moves, regenerating them first if stale.
func (c *moveCache) get(generate func() []chess.Square) []chess.Square {
	if c.state == stale {
		c.moves = generate()
		c.state = fresh
	}
	return slices.Clone(c.moves)
}

func (c *moveCache) invalidate() {
	c.state = stale
	c.moves = nil
}

// base carries the state shared by every piece kind.
type base struct {
	kind   chess.Kind
	colour chess.Colour
	pos    chess.Square
	board  *chess.Board
	cache  moveCache
}

func (b *base) Kind() chess.Kind       { return b.kind }
func (b *base) Colour() chess.Colour   { return b.colour }
func (b *base) IsWhite() bool          { return b.colour == chess.White }
func (b *base) Position() chess.Square { return b.pos }
func (b *base) Glyph() byte            { return chess.Glyph(b.kind, b.colour) }
func (b *base) Invalidate()            { b.cache.invalidate() }

func (b *base) SetPosition(sq chess.Square) error {
	if !sq.InBounds() {
		return &errors.SquareError{Err: errors.ErrOutOfBounds, Op: "set position", Row: sq.Row, Col: sq.Col}
	}
	b.pos = sq
	b.cache.invalidate()
	return nil
}

// String returns the glyph followed by the square, e.g. "Nb1".
func (b *base) String() string {
	return string(b.Glyph()) + b.pos.String()
}
