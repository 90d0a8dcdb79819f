package chess

import (
	"fmt"

	"github.com/lgbarn/chessmoves-go/internal/errors"
)

// Square is a board coordinate in array order: Row 0 is rank 8 and Col 0
// is the a-file. It is the only stored coordinate form; rank, file and
// algebraic labels are derived from it.
type Square struct {
	Row int
	Col int
}

// Sq is shorthand for Square{Row: row, Col: col}.
func Sq(row, col int) Square {
	return Square{Row: row, Col: col}
}

// SquareFromRankFile builds a square from 1-based rank and file numbers.
func SquareFromRankFile(rank, file int) Square {
	return Square{Row: BoardSize - rank, Col: file - 1}
}

// InBounds reports whether both axes lie within 0..7.
func (s Square) InBounds() bool {
	return s.Row >= 0 && s.Row < BoardSize && s.Col >= 0 && s.Col < BoardSize
}

// Rank returns the 1-based rank.
func (s Square) Rank() int {
	return BoardSize - s.Row
}

// File returns the 1-based file.
func (s Square) File() int {
	return s.Col + 1
}

// Offset returns the square shifted by dr rows and dc columns. The result
// may be off the board.
func (s Square) Offset(dr, dc int) Square {
	return Square{Row: s.Row + dr, Col: s.Col + dc}
}

// String returns the algebraic label, or "-" for an off-board square.
func (s Square) String() string {
	if !s.InBounds() {
		return "-"
	}
	return string([]byte{byte(ColBase + s.Col), byte(RankBase + s.Rank() - 1)})
}

// ToAlgebraic converts a square to its algebraic label, e.g. (4,4) -> "e4".
func ToAlgebraic(s Square) (string, error) {
	if !s.InBounds() {
		return "", &errors.SquareError{Err: errors.ErrOutOfBounds, Op: "notation", Row: s.Row, Col: s.Col}
	}
	return s.String(), nil
}

// ParseSquare converts an algebraic label such as "e4" to a square. The
// file letter must be lower case.
func ParseSquare(label string) (Square, error) {
	if len(label) != 2 {
		return Square{}, &errors.SquareError{Err: errors.ErrInvalidNotation, Op: "parse", Label: label}
	}
	col, rank := label[0], label[1]
	if col < ColBase || col >= ColBase+BoardSize || rank < RankBase || rank >= RankBase+BoardSize {
		return Square{}, &errors.SquareError{Err: errors.ErrInvalidNotation, Op: "parse", Label: label}
	}
	return SquareFromRankFile(int(rank-RankBase)+1, int(col-ColBase)+1), nil
}

// MustParseSquare is like ParseSquare but panics on a malformed label.
// It is intended for constant tables and tests.
func MustParseSquare(label string) Square {
	sq, err := ParseSquare(label)
	if err != nil {
		panic(fmt.Sprintf("chess: MustParseSquare(%q): %v", label, err))
	}
	return sq
}

// AllSquares returns the 64 board squares in row-major order.
func AllSquares() []Square {
	squares := make([]Square, 0, BoardSize*BoardSize)
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			squares = append(squares, Square{Row: row, Col: col})
		}
	}
	return squares
}
