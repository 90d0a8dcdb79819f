package chess

import (
	"strings"

	"github.com/lgbarn/chessmoves-go/internal/errors"
)

// Board is an 8x8 grid of optional occupants, indexed [row][col].
// A nil cell is empty.
type Board struct {
	squares [BoardSize][BoardSize]Occupant
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{}
}

// Get returns the occupant of sq. Empty and off-board squares both read
// as nil, so callers scanning outwards need no separate bounds test.
func (b *Board) Get(sq Square) Occupant {
	if !sq.InBounds() {
		return nil
	}
	return b.squares[sq.Row][sq.Col]
}

// Set places occ on sq; a nil occ clears the square. Writing off the
// board fails with ErrOutOfBounds.
func (b *Board) Set(sq Square, occ Occupant) error {
	if !sq.InBounds() {
		return &errors.SquareError{Err: errors.ErrOutOfBounds, Op: "set", Row: sq.Row, Col: sq.Col}
	}
	b.squares[sq.Row][sq.Col] = occ
	return nil
}

// IsEmpty reports whether sq holds no occupant. Off-board squares are empty.
func (b *Board) IsEmpty(sq Square) bool {
	return b.Get(sq) == nil
}

// Clear empties every square.
func (b *Board) Clear() {
	b.squares = [BoardSize][BoardSize]Occupant{}
}

// Occupied returns the occupied squares in row-major order.
func (b *Board) Occupied() []Square {
	var squares []Square
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if b.squares[row][col] != nil {
				squares = append(squares, Square{Row: row, Col: col})
			}
		}
	}
	return squares
}

// Render returns an 8-line diagram, row 0 (rank 8) first. Occupied cells
// show the piece glyph and empty cells show '.'.
func (b *Board) Render() string {
	var sb strings.Builder
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if col > 0 {
				sb.WriteByte(' ')
			}
			occ := b.squares[row][col]
			if occ == nil {
				sb.WriteByte('.')
			} else {
				sb.WriteByte(Glyph(occ.Kind(), occ.Colour()))
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
