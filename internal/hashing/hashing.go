// Package hashing provides duplicate detection for positions.
package hashing

import (
	"math/rand"

	"github.com/lgbarn/chessmoves-go/internal/chess"
)

// zobristPiece holds one key per kind, colour and square.
var zobristPiece [chess.NumKinds][2][chess.BoardSize * chess.BoardSize]uint64

func init() {
	// Fixed seed so hashes are stable between runs.
	rnd := rand.New(rand.NewSource(0xC0DE))
	for k := range zobristPiece {
		for c := range zobristPiece[k] {
			for sq := range zobristPiece[k][c] {
				zobristPiece[k][c][sq] = rnd.Uint64()
			}
		}
	}
}

func squareIndex(sq chess.Square) int {
	return sq.Row*chess.BoardSize + sq.Col
}

// GenerateZobristHash returns the Zobrist hash of the piece placement.
func GenerateZobristHash(board *chess.Board) uint64 {
	var key uint64
	for _, sq := range board.Occupied() {
		occ := board.Get(sq)
		key ^= zobristPiece[occ.Kind()][occ.Colour()][squareIndex(sq)]
	}
	return key
}

// WeakHash returns a cheap secondary hash of the piece placement.
func WeakHash(board *chess.Board) uint32 {
	var h uint32
	for _, sq := range board.Occupied() {
		occ := board.Get(sq)
		h += uint32(chess.Glyph(occ.Kind(), occ.Colour())) * uint32(squareIndex(sq)+1)
	}
	return h
}

// Signature identifies a position for duplicate detection.
type Signature struct {
	Hash     uint64
	WeakHash uint32
	Pieces   int
}

// NewSignature computes the signature of a board.
func NewSignature(board *chess.Board) Signature {
	return Signature{
		Hash:     GenerateZobristHash(board),
		WeakHash: WeakHash(board),
		Pieces:   len(board.Occupied()),
	}
}

// DuplicateDetector tracks seen positions.
type DuplicateDetector struct {
	hashTable      map[uint64][]Signature
	duplicateCount int
	uniqueCount    int
	stored         int
	// maxCapacity limits stored signatures; 0 means unlimited
	maxCapacity int
}

// NewDuplicateDetector creates a new duplicate detector.
// maxCapacity of 0 means unlimited capacity.
func NewDuplicateDetector(maxCapacity int) *DuplicateDetector {
	return &DuplicateDetector{
		hashTable:   make(map[uint64][]Signature),
		maxCapacity: maxCapacity,
	}
}

// CheckAndAdd reports whether sig was seen before, recording it if not.
// Once the detector is full new signatures are no longer stored, so later
// copies of them go undetected.
func (d *DuplicateDetector) CheckAndAdd(sig Signature) bool {
	for _, existing := range d.hashTable[sig.Hash] {
		if existing == sig {
			d.duplicateCount++
			return true
		}
	}

	if !d.IsFull() {
		d.hashTable[sig.Hash] = append(d.hashTable[sig.Hash], sig)
		d.stored++
	}
	d.uniqueCount++
	return false
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of unique positions seen.
func (d *DuplicateDetector) UniqueCount() int {
	return d.uniqueCount
}

// IsFull returns true if the detector has reached its capacity limit.
func (d *DuplicateDetector) IsFull() bool {
	return d.maxCapacity > 0 && d.stored >= d.maxCapacity
}

// Reset clears the hash table.
func (d *DuplicateDetector) Reset() {
	d.hashTable = make(map[uint64][]Signature)
	d.duplicateCount = 0
	d.uniqueCount = 0
	d.stored = 0
}
