package game

import (
	"testing"

	"github.com/lgbarn/chessmoves-go/internal/chess"
	"github.com/lgbarn/chessmoves-go/internal/errors"
	"github.com/lgbarn/chessmoves-go/internal/testutil"
)

func TestSetupInitialPosition(t *testing.T) {
	e := NewEnvironment()
	e.SetupInitialPosition()

	tests := []struct {
		label  string
		kind   chess.Kind
		colour chess.Colour
	}{
		{"a1", chess.Rook, chess.White},
		{"b1", chess.Knight, chess.White},
		{"c1", chess.Bishop, chess.White},
		{"d1", chess.Queen, chess.White},
		{"e1", chess.King, chess.White},
		{"e2", chess.Pawn, chess.White},
		{"e7", chess.Pawn, chess.Black},
		{"d8", chess.Queen, chess.Black},
		{"e8", chess.King, chess.Black},
		{"h8", chess.Rook, chess.Black},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			p := e.PieceAt(sq(tt.label))
			if p == nil {
				t.Fatalf("PieceAt(%s) = nil", tt.label)
			}
			if p.Kind() != tt.kind || p.Colour() != tt.colour {
				t.Errorf("PieceAt(%s) = %v %v, want %v %v", tt.label, p.Colour(), p.Kind(), tt.colour, tt.kind)
			}
			if p.Position() != sq(tt.label) {
				t.Errorf("Position() = %v, want %s", p.Position(), tt.label)
			}
		})
	}

	if len(e.Pieces()) != 32 {
		t.Errorf("live pieces = %d, want 32", len(e.Pieces()))
	}
	for _, label := range []string{"e3", "d4", "f5", "c6"} {
		if e.PieceAt(sq(label)) != nil {
			t.Errorf("PieceAt(%s) is not empty", label)
		}
	}
	assertConsistent(t, e)
}

func TestFENRoundTrip(t *testing.T) {
	placements := []string{
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR",
		"rnbqkbnr/pp1ppppp/8/2p5/4P3/8/PPPP1PPP/RNBQKBNR",
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R",
		"8/8/8/8/8/8/8/8",
		"7k/8/8/8/8/8/8/K7",
	}
	for _, placement := range placements {
		placement := placement
		t.Run(placement, func(t *testing.T) {
			t.Parallel()
			e, err := NewEnvironmentFromFEN(placement + " w - - 0 1")
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, e.FEN(), placement)
			assertConsistent(t, e)
		})
	}
}

func TestLoadFENErrors(t *testing.T) {
	tests := []struct {
		name string
		fen  string
	}{
		{"empty", ""},
		{"too few ranks", "8/8/8/8/8/8/8 w - - 0 1"},
		{"too many ranks", "8/8/8/8/8/8/8/8/8 w - - 0 1"},
		{"bad piece", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBXKBNR w - - 0 1"},
		{"rank overflow", "rnbqkbnrp/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1"},
		{"rank underflow", "rnbqkbn/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1"},
		{"digit overflow", "9/8/8/8/8/8/8/8 w - - 0 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEnvironment()
			e.SetupInitialPosition()
			before := e.FEN()

			err := e.LoadFEN(tt.fen)
			testutil.AssertErrorIs(t, err, errors.ErrInvalidFEN)
			testutil.AssertEqual(t, e.FEN(), before, "failed load changed the board")
		})
	}
}

func TestLoadFENReplacesPieces(t *testing.T) {
	e := NewEnvironment()
	e.SetupInitialPosition()
	old := e.PieceAt(sq("e1"))

	testutil.AssertNoError(t, e.LoadFEN("4k3/8/8/8/8/8/8/R3K3 b - - 0 1"))
	if len(e.Pieces()) != 3 {
		t.Errorf("live pieces = %d, want 3", len(e.Pieces()))
	}
	if e.PieceAt(sq("e1")) == old {
		t.Error("LoadFEN reused a piece from the previous position")
	}
	assertConsistent(t, e)
}
