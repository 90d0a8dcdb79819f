// Package chess provides core chess types: colours, piece kinds, squares
// and the board occupancy grid.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// ColourOffset returns +1 for White, -1 for Black (rank direction of a pawn).
func ColourOffset(colour Colour) int {
	if colour == White {
		return 1
	}
	return -1
}

// Forward returns the row delta of a pawn advance. Row 0 is rank 8, so
// White moves towards decreasing rows.
func (c Colour) Forward() int {
	return -ColourOffset(c)
}

// Kind represents a chess piece type.
type Kind int

const (
	NoKind Kind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumKinds
)

// String returns the string representation of a piece kind.
func (k Kind) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a kind (uppercase).
func (k Kind) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// Valid reports whether k is one of the six chess piece kinds.
func (k Kind) Valid() bool {
	return k > NoKind && k < NumKinds
}

// Glyph returns the FEN-style letter for a coloured piece: uppercase for
// White, lowercase for Black.
func Glyph(kind Kind, colour Colour) byte {
	letter := kind.Letter()
	if colour == Black && letter >= 'A' && letter <= 'Z' {
		letter += 'a' - 'A'
	}
	return letter
}

// ParseGlyph converts a FEN piece letter to its kind and colour.
func ParseGlyph(c byte) (Kind, Colour, bool) {
	colour := White
	if c >= 'a' && c <= 'z' {
		colour = Black
		c -= 'a' - 'A'
	}
	switch c {
	case 'P':
		return Pawn, colour, true
	case 'N':
		return Knight, colour, true
	case 'B':
		return Bishop, colour, true
	case 'R':
		return Rook, colour, true
	case 'Q':
		return Queen, colour, true
	case 'K':
		return King, colour, true
	default:
		return NoKind, colour, false
	}
}

// Occupant is anything that can sit on a board square.
type Occupant interface {
	Kind() Kind
	Colour() Colour
	IsWhite() bool
}

// Board dimensions.
const (
	BoardSize = 8

	RankBase = '1'
	ColBase  = 'a'
)
