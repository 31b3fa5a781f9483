package engine

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/binary"

	"battleforge/internal/game"
)

// StanceHash computes the commitment for a stance and salt:
// sha256(stance wire byte ++ salt as 8 little-endian bytes). Clients build
// the identical preimage, so the stored hash binds the stance before the
// opponent ever sees it.
func StanceHash(stance game.Stance, salt uint64) []byte {
	preimage := make([]byte, 9)
	preimage[0] = stance.WireByte()
	binary.LittleEndian.PutUint64(preimage[1:], salt)
	sum := sha256.Sum256(preimage)
	return sum[:]
}

// VerifyStanceHash checks a reveal against a stored commitment in constant
// time.
func VerifyStanceHash(committed []byte, stance game.Stance, salt uint64) bool {
	if len(committed) != sha256.Size {
		return false
	}
	return subtle.ConstantTimeCompare(committed, StanceHash(stance, salt)) == 1
}
