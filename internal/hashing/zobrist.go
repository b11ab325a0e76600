// Package hashing provides Zobrist position keys, a transposition table for
// search and node-count caches for perft.
package hashing

import (
	"math/rand"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// zobristSeed is fixed so that keys are stable across runs.
const zobristSeed = 0x5a0b1e57c4e55

var (
	pieceKeys     [chess.NumPieceValues][chess.NumSquares]uint64
	castlingKeys  [16]uint64
	enPassantKeys [chess.BoardSize]uint64
	blackToMove   uint64
)

func init() {
	rng := rand.New(rand.NewSource(zobristSeed))

	// Empty squares contribute nothing, so row 0 stays zero.
	for piece := 1; piece < chess.NumPieceValues; piece++ {
		for sq := 0; sq < chess.NumSquares; sq++ {
			pieceKeys[piece][sq] = rng.Uint64()
		}
	}
	for i := range castlingKeys {
		castlingKeys[i] = rng.Uint64()
	}
	for file := range enPassantKeys {
		enPassantKeys[file] = rng.Uint64()
	}
	blackToMove = rng.Uint64()
}

// Key computes the Zobrist key of a position. The counters are not part of
// the key: positions differing only in move numbers share it.
func Key(pos *chess.Position) chess.HashCode {
	var h uint64

	for sq, piece := range pos.Board {
		if piece != chess.Empty {
			h ^= pieceKeys[piece][sq]
		}
	}

	h ^= castlingKeys[pos.Castling&chess.AllCastling]

	if pos.EnPassant.Valid() {
		h ^= enPassantKeys[pos.EnPassant.File()]
	}

	if pos.ToMove == chess.Black {
		h ^= blackToMove
	}

	return chess.HashCode(h)
}
