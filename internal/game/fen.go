package game

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chessmoves-go/internal/chess"
	"github.com/lgbarn/chessmoves-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

type placement struct {
	kind   chess.Kind
	colour chess.Colour
	sq     chess.Square
}

// NewEnvironmentFromFEN creates an environment populated from a FEN string.
func NewEnvironmentFromFEN(fen string) (*Environment, error) {
	e := NewEnvironment()
	if err := e.LoadFEN(fen); err != nil {
		return nil, err
	}
	return e, nil
}

// SetupInitialPosition replaces the contents of the board with the
// standard 32-piece starting arrangement.
func (e *Environment) SetupInitialPosition() {
	if err := e.LoadFEN(InitialFEN); err != nil {
		panic(fmt.Sprintf("game: initial position: %v", err))
	}
}

// LoadFEN replaces the contents of the board with the piece placement of
// a FEN string. Only the first field is used; side to move, castling and
// en passant belong to the rules layer. On error the environment is left
// unchanged.
func (e *Environment) LoadFEN(fen string) error {
	placements, err := parsePiecePlacement(fen)
	if err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.reset()
	for _, pl := range placements {
		if _, err := e.place(pl.kind, pl.colour, pl.sq); err != nil {
			e.reset()
			return errors.Wrap(err, "loading FEN")
		}
	}
	return nil
}

// parsePiecePlacement parses the piece placement field of a FEN string.
func parsePiecePlacement(fen string) ([]placement, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	ranks := strings.Split(parts[0], "/")
	if len(ranks) != chess.BoardSize {
		return nil, fmt.Errorf("want %d ranks, got %d: %w", chess.BoardSize, len(ranks), errors.ErrInvalidFEN)
	}

	var placements []placement
	for row, rank := range ranks {
		col := 0
		for i := 0; i < len(rank); i++ {
			c := rank[i]
			if c >= '1' && c <= '8' {
				col += int(c - '0')
				continue
			}
			kind, colour, ok := chess.ParseGlyph(c)
			if !ok {
				return nil, fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
			}
			if col >= chess.BoardSize {
				return nil, fmt.Errorf("rank %d overflows: %w", chess.BoardSize-row, errors.ErrInvalidFEN)
			}
			placements = append(placements, placement{kind: kind, colour: colour, sq: chess.Sq(row, col)})
			col++
		}
		if col != chess.BoardSize {
			return nil, fmt.Errorf("rank %d has %d squares: %w", chess.BoardSize-row, col, errors.ErrInvalidFEN)
		}
	}
	return placements, nil
}

// FEN returns the piece placement field for the current board.
func (e *Environment) FEN() string {
	e.mu.Lock()
	defer e.mu.Unlock()

	var sb strings.Builder
	for row := 0; row < chess.BoardSize; row++ {
		emptyCount := 0
		for col := 0; col < chess.BoardSize; col++ {
			p := e.pieceAt(chess.Sq(row, col))
			if p == nil {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(p.Glyph())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if row < chess.BoardSize-1 {
			sb.WriteByte('/')
		}
	}
	return sb.String()
}
