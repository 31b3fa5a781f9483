package engine

// RandomSource produces one byte per (timestamp, turn, stream) triple.
// Distinct stream constants decorrelate the simultaneous rolls made within
// a single turn; using the same triple twice yields the same byte, which is
// what makes battles replayable.
type RandomSource interface {
	Roll(timestamp int64, turn uint32, stream uint64) uint8
}

// Roll streams. Each randomized decision reads its own stream so rolls made
// in the same turn do not collapse onto one value.
const (
	streamWildcardTrigger  = 1
	streamWildcardType     = 2
	streamBaseDamage       = 3
	streamCrit             = 4
	streamInstantKill      = 5
	streamDodge            = 6
	streamDoubleOrNothing  = 7
	streamMysteryBox       = 8
	streamDeathRoulette    = 9
	streamDeathRouletteP2  = 10
	streamTricksterSpecial = 11
	streamAIDesperation    = 20
	streamAIMixup          = 21
)

// XORFoldSource is the placeholder pseudo-random source. It folds the XOR
// of its inputs down to one byte. It is fully predictable from public state
// (anyone who knows the timestamp and turn number can reproduce every roll)
// and must be swapped for a real randomness provider in any deployment
// where that matters; the engine only ever sees the interface.
type XORFoldSource struct{}

func (XORFoldSource) Roll(timestamp int64, turn uint32, stream uint64) uint8 {
	combined := uint64(timestamp) ^ uint64(turn) ^ stream
	return uint8((combined >> 8) ^ (combined >> 16) ^ (combined >> 24))
}

// FixedSource returns scripted bytes per stream; zero for unknown streams.
// Test helper.
type FixedSource map[uint64]uint8

func (f FixedSource) Roll(_ int64, _ uint32, stream uint64) uint8 {
	return f[stream]
}
