// Package game holds a board together with its live pieces and forwards
// position and move queries to them.
package game

import (
	"sync"

	"github.com/google/uuid"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chessmoves-go/internal/chess"
	"github.com/lgbarn/chessmoves-go/internal/engine"
	"github.com/lgbarn/chessmoves-go/internal/errors"
)

// Environment owns one board and the pieces standing on it. Every live
// piece occupies exactly the board cell matching its recorded square.
//
// All methods are serialised by a single mutex. The *chess.Board returned
// by Board is not, so callers using it directly must not share the
// environment across goroutines.
type Environment struct {
	mu     sync.Mutex
	id     string
	board  *chess.Board
	pieces []engine.Piece
}

// NewEnvironment creates an environment with an empty board.
func NewEnvironment() *Environment {
	return &Environment{
		id:    uuid.NewString(),
		board: chess.NewBoard(),
	}
}

// ID returns the session identifier of the environment.
func (e *Environment) ID() string {
	return e.id
}

// Board returns the underlying board.
func (e *Environment) Board() *chess.Board {
	return e.board
}

// PieceAt returns the piece on sq, or nil if the square is empty or off
// the board.
func (e *Environment) PieceAt(sq chess.Square) engine.Piece {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.pieceAt(sq)
}

func (e *Environment) pieceAt(sq chess.Square) engine.Piece {
	p, _ := e.board.Get(sq).(engine.Piece)
	return p
}

// Moves returns the candidate destinations of p.
func (e *Environment) Moves(p engine.Piece) []chess.Square {
	e.mu.Lock()
	defer e.mu.Unlock()
	return p.Moves()
}

// AllMoves returns the candidate destinations of every live piece of the
// given colour, keyed by the algebraic label of its square.
func (e *Environment) AllMoves(colour chess.Colour) map[string][]chess.Square {
	e.mu.Lock()
	defer e.mu.Unlock()
	moves := make(map[string][]chess.Square)
	for _, p := range e.pieces {
		if p.Colour() == colour {
			moves[p.Position().String()] = p.Moves()
		}
	}
	return moves
}

// Pieces returns the live pieces in placement order.
func (e *Environment) Pieces() []engine.Piece {
	e.mu.Lock()
	defer e.mu.Unlock()
	return slices.Clone(e.pieces)
}

// PiecesOf returns the live pieces of one colour in board order, rank 8
// first.
func (e *Environment) PiecesOf(colour chess.Colour) []engine.Piece {
	e.mu.Lock()
	defer e.mu.Unlock()
	var pieces []engine.Piece
	for _, sq := range e.board.Occupied() {
		if p := e.pieceAt(sq); p != nil && p.Colour() == colour {
			pieces = append(pieces, p)
		}
	}
	return pieces
}

// Place creates a piece on an empty square and adds it to the live set.
func (e *Environment) Place(kind chess.Kind, colour chess.Colour, sq chess.Square) (engine.Piece, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.place(kind, colour, sq)
}

func (e *Environment) place(kind chess.Kind, colour chess.Colour, sq chess.Square) (engine.Piece, error) {
	p, err := engine.NewPiece(kind, colour, sq, e.board)
	if err != nil {
		return nil, err
	}
	if e.board.Get(sq) != nil {
		return nil, &errors.SquareError{Err: errors.ErrOccupied, Op: "place", Row: sq.Row, Col: sq.Col}
	}
	if err := e.board.Set(sq, p); err != nil {
		return nil, err
	}
	e.pieces = append(e.pieces, p)
	e.invalidateAll()
	return p, nil
}

// Remove takes a live piece off the board.
func (e *Environment) Remove(p engine.Piece) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	i := slices.Index(e.pieces, p)
	if i < 0 {
		return errors.ErrPieceNotFound
	}
	e.drop(i)
	e.invalidateAll()
	return nil
}

// Relocate moves a live piece to another square. Any piece already on the
// destination is removed from play and returned, including one written to
// the board directly and never placed. No chess legality is checked; that
// belongs to the caller.
func (e *Environment) Relocate(p engine.Piece, to chess.Square) (engine.Piece, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if slices.Index(e.pieces, p) < 0 {
		return nil, errors.ErrPieceNotFound
	}
	if !to.InBounds() {
		return nil, &errors.SquareError{Err: errors.ErrOutOfBounds, Op: "relocate", Row: to.Row, Col: to.Col}
	}
	from := p.Position()
	if from == to {
		return nil, nil
	}

	captured := e.pieceAt(to)
	if i := slices.Index(e.pieces, captured); captured != nil && i >= 0 {
		e.drop(i)
	}
	if err := e.board.Set(from, nil); err != nil {
		return nil, err
	}
	if err := e.board.Set(to, p); err != nil {
		return nil, err
	}
	if err := p.SetPosition(to); err != nil {
		return nil, err
	}
	e.invalidateAll()
	return captured, nil
}

// Render returns the board diagram.
func (e *Environment) Render() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.board.Render()
}

// Reset empties the board and the live set.
func (e *Environment) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.reset()
}

func (e *Environment) reset() {
	e.board.Clear()
	e.pieces = nil
}

// drop removes pieces[i] from the live set and clears its board cell.
func (e *Environment) drop(i int) {
	p := e.pieces[i]
	if e.board.Get(p.Position()) == chess.Occupant(p) {
		_ = e.board.Set(p.Position(), nil)
	}
	e.pieces = slices.Delete(e.pieces, i, i+1)
}

// invalidateAll marks every move cache stale. Any change of occupancy can
// open or close another piece's rays, not just the mover's.
func (e *Environment) invalidateAll() {
	for _, p := range e.pieces {
		p.Invalidate()
	}
}
