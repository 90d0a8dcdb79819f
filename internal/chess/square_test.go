package chess

import (
	"testing"

	"github.com/lgbarn/chessmoves-go/internal/errors"
	"github.com/lgbarn/chessmoves-go/internal/testutil"
)

func TestSquareString(t *testing.T) {
	tests := []struct {
		sq   Square
		want string
	}{
		{Sq(0, 0), "a8"},
		{Sq(7, 0), "a1"},
		{Sq(7, 7), "h1"},
		{Sq(0, 7), "h8"},
		{Sq(4, 4), "e4"},
		{Sq(7, 1), "b1"},
		{Sq(8, 0), "-"},
		{Sq(0, -1), "-"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.sq.String(); got != tt.want {
				t.Errorf("%+v.String() = %q, want %q", tt.sq, got, tt.want)
			}
		})
	}
}

func TestRankFile(t *testing.T) {
	sq := Sq(6, 4) // e2
	if sq.Rank() != 2 {
		t.Errorf("Rank() = %d, want 2", sq.Rank())
	}
	if sq.File() != 5 {
		t.Errorf("File() = %d, want 5", sq.File())
	}
	if got := SquareFromRankFile(2, 5); got != sq {
		t.Errorf("SquareFromRankFile(2, 5) = %+v, want %+v", got, sq)
	}
}

func TestNotationRoundTrip(t *testing.T) {
	seen := make(map[string]Square)
	for _, sq := range AllSquares() {
		label, err := ToAlgebraic(sq)
		if err != nil {
			t.Fatalf("ToAlgebraic(%+v) error: %v", sq, err)
		}
		if prev, dup := seen[label]; dup {
			t.Errorf("label %q shared by %+v and %+v", label, prev, sq)
		}
		seen[label] = sq

		back, err := ParseSquare(label)
		if err != nil {
			t.Fatalf("ParseSquare(%q) error: %v", label, err)
		}
		if back != sq {
			t.Errorf("ParseSquare(ToAlgebraic(%+v)) = %+v", sq, back)
		}
	}
	if len(seen) != 64 {
		t.Errorf("distinct labels = %d, want 64", len(seen))
	}

	for file := byte('a'); file <= 'h'; file++ {
		for rank := byte('1'); rank <= '8'; rank++ {
			label := string([]byte{file, rank})
			sq, err := ParseSquare(label)
			if err != nil {
				t.Fatalf("ParseSquare(%q) error: %v", label, err)
			}
			if sq.String() != label {
				t.Errorf("ToAlgebraic(ParseSquare(%q)) = %q", label, sq.String())
			}
		}
	}
}

func TestParseSquare(t *testing.T) {
	tests := []struct {
		label   string
		want    Square
		wantErr bool
	}{
		{"e4", Sq(4, 4), false},
		{"a8", Sq(0, 0), false},
		{"h1", Sq(7, 7), false},
		{"E4", Square{}, true},
		{"A1", Square{}, true},
		{"i4", Square{}, true},
		{"e9", Square{}, true},
		{"e0", Square{}, true},
		{"4e", Square{}, true},
		{"e", Square{}, true},
		{"e44", Square{}, true},
		{"", Square{}, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.label, func(t *testing.T) {
			t.Parallel()
			got, err := ParseSquare(tt.label)
			if tt.wantErr {
				testutil.AssertErrorIs(t, err, errors.ErrInvalidNotation, "ParseSquare(%q)", tt.label)
				return
			}
			testutil.AssertNoError(t, err)
			if got != tt.want {
				t.Errorf("ParseSquare(%q) = %+v, want %+v", tt.label, got, tt.want)
			}
		})
	}
}

func TestToAlgebraicOutOfBounds(t *testing.T) {
	for _, sq := range []Square{Sq(-1, 0), Sq(0, 8), Sq(8, 8)} {
		_, err := ToAlgebraic(sq)
		testutil.AssertErrorIs(t, err, errors.ErrOutOfBounds, "ToAlgebraic(%+v)", sq)
	}
}

func TestMustParseSquarePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParseSquare(\"z9\") did not panic")
		}
	}()
	MustParseSquare("z9")
}

func TestGlyph(t *testing.T) {
	tests := []struct {
		kind   Kind
		colour Colour
		want   byte
	}{
		{Pawn, White, 'P'},
		{Knight, Black, 'n'},
		{Queen, White, 'Q'},
		{King, Black, 'k'},
	}
	for _, tt := range tests {
		got := Glyph(tt.kind, tt.colour)
		if got != tt.want {
			t.Errorf("Glyph(%v, %v) = %c, want %c", tt.kind, tt.colour, got, tt.want)
		}
		kind, colour, ok := ParseGlyph(got)
		if !ok || kind != tt.kind || colour != tt.colour {
			t.Errorf("ParseGlyph(%c) = %v, %v, %v", got, kind, colour, ok)
		}
	}
	if _, _, ok := ParseGlyph('x'); ok {
		t.Error("ParseGlyph('x') ok = true, want false")
	}
}

func TestColourForward(t *testing.T) {
	if White.Forward() != -1 {
		t.Errorf("White.Forward() = %d, want -1", White.Forward())
	}
	if Black.Forward() != 1 {
		t.Errorf("Black.Forward() = %d, want 1", Black.Forward())
	}
	if White.Opposite() != Black || Black.Opposite() != White {
		t.Error("Opposite() is not symmetric")
	}
}
