// Package output builds move reports for a position and writes them as
// text or JSON.
package output

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chessmoves-go/internal/chess"
	"github.com/lgbarn/chessmoves-go/internal/config"
	"github.com/lgbarn/chessmoves-go/internal/engine"
	"github.com/lgbarn/chessmoves-go/internal/errors"
	"github.com/lgbarn/chessmoves-go/internal/game"
	"github.com/lgbarn/chessmoves-go/internal/hashing"
)

// PieceReport lists the candidate moves of one piece.
type PieceReport struct {
	Square string   `json:"square"`
	Piece  string   `json:"piece"`
	Colour string   `json:"colour"` // "white" or "black"
	Glyph  string   `json:"glyph"`
	Moves  []string `json:"moves"`
}

// Report describes a position and the moves of its reported pieces.
type Report struct {
	Index      int           `json:"index,omitempty"`
	ID         string        `json:"id,omitempty"`
	FEN        string        `json:"fen"`
	Hash       string        `json:"hash"` // Zobrist hash of the placement, hex
	Pieces     []PieceReport `json:"pieces"`
	TotalMoves int           `json:"totalMoves"`
	Board      string        `json:"-"`

	Signature hashing.Signature `json:"-"`
}

// BuildReport collects the moves of the pieces selected by cfg, in board
// order. With cfg.HasSquare set only the piece on that square is reported
// and an empty square is an error.
func BuildReport(env *game.Environment, cfg *config.Config) (*Report, error) {
	r := &Report{
		ID:        env.ID(),
		FEN:       env.FEN(),
		Board:     env.Render(),
		Pieces:    make([]PieceReport, 0, 32),
		Signature: hashing.NewSignature(env.Board()),
	}
	r.Hash = fmt.Sprintf("%016x", r.Signature.Hash)

	var pieces []engine.Piece
	if cfg.HasSquare {
		p := env.PieceAt(cfg.Square)
		if p == nil {
			return nil, &errors.SquareError{Err: errors.ErrPieceNotFound, Op: "report", Row: cfg.Square.Row, Col: cfg.Square.Col}
		}
		pieces = append(pieces, p)
	} else {
		for _, sq := range env.Board().Occupied() {
			if p := env.PieceAt(sq); p != nil && cfg.Colours.Includes(p.Colour()) {
				pieces = append(pieces, p)
			}
		}
	}

	for _, p := range pieces {
		pr := pieceReport(p, env.Moves(p))
		r.TotalMoves += len(pr.Moves)
		r.Pieces = append(r.Pieces, pr)
	}
	return r, nil
}

func pieceReport(p engine.Piece, moves []chess.Square) PieceReport {
	pr := PieceReport{
		Square: p.Position().String(),
		Piece:  p.Kind().String(),
		Colour: strings.ToLower(p.Colour().String()),
		Glyph:  string(p.Glyph()),
		Moves:  make([]string, 0, len(moves)),
	}
	for _, to := range moves {
		pr.Moves = append(pr.Moves, to.String())
	}
	return pr
}
