package engine_test

import (
	"testing"

	"github.com/dylhunn/dragontoothmg"

	"github.com/lgbarn/chessmoves-go/internal/chess"
	"github.com/lgbarn/chessmoves-go/internal/game"
	"github.com/lgbarn/chessmoves-go/internal/testutil"
)

// bitIndex maps a square to dragontoothmg's numbering (a1 = 0, h8 = 63).
func bitIndex(sq chess.Square) uint8 {
	return uint8((chess.BoardSize-1-sq.Row)*chess.BoardSize + sq.Col)
}

func bitboard(squares []chess.Square) uint64 {
	var bb uint64
	for _, sq := range squares {
		bb |= 1 << bitIndex(sq)
	}
	return bb
}

var oraclePositions = []string{
	game.InitialFEN,
	"r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3",
	"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	"4k3/8/8/3Q4/8/8/8/4K3 w - - 0 1",
}

func TestSliderRaysMatchDragontooth(t *testing.T) {
	for _, fen := range oraclePositions {
		env, err := game.NewEnvironmentFromFEN(fen)
		if err != nil {
			t.Fatalf("NewEnvironmentFromFEN(%q) error: %v", fen, err)
		}
		occupied := bitboard(env.Board().Occupied())

		for _, p := range env.Pieces() {
			var own []chess.Square
			for _, q := range env.PiecesOf(p.Colour()) {
				own = append(own, q.Position())
			}
			from := bitIndex(p.Position())

			var attacks uint64
			switch p.Kind() {
			case chess.Rook:
				attacks = dragontoothmg.CalculateRookMoveBitboard(from, occupied)
			case chess.Bishop:
				attacks = dragontoothmg.CalculateBishopMoveBitboard(from, occupied)
			case chess.Queen:
				attacks = dragontoothmg.CalculateRookMoveBitboard(from, occupied) |
					dragontoothmg.CalculateBishopMoveBitboard(from, occupied)
			default:
				continue
			}
			want := attacks &^ bitboard(own)
			got := bitboard(env.Moves(p))
			if got != want {
				t.Errorf("%s: %v on %v: moves %#x, want %#x", fen, p.Kind(), p.Position(), got, want)
			}
		}
	}
}

func TestStartPositionMatchesDragontooth(t *testing.T) {
	tests := []struct {
		name   string
		fen    string
		colour chess.Colour
	}{
		{"white", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1", chess.White},
		{"black", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR b - - 0 1", chess.Black},
	}

	type pair struct{ From, To uint8 }
	less := func(a, b pair) bool {
		if a.From != b.From {
			return a.From < b.From
		}
		return a.To < b.To
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := dragontoothmg.ParseFen(tt.fen)
			var want []pair
			for _, m := range board.GenerateLegalMoves() {
				want = append(want, pair{m.From(), m.To()})
			}

			env, err := game.NewEnvironmentFromFEN(tt.fen)
			testutil.AssertNoError(t, err)
			var got []pair
			for _, p := range env.PiecesOf(tt.colour) {
				for _, to := range env.Moves(p) {
					got = append(got, pair{bitIndex(p.Position()), bitIndex(to)})
				}
			}

			if len(got) != 20 {
				t.Errorf("%d candidate moves, want 20", len(got))
			}
			testutil.AssertSameElements(t, got, want, less)
		})
	}
}
