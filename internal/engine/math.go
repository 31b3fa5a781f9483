package engine

// Saturating helpers. All battle arithmetic clamps at zero instead of
// wrapping; percentages truncate toward zero, and that truncation is part
// of the observable contract.

func satSub(a, b uint64) uint64 {
	if b > a {
		return 0
	}
	return a - b
}

func satSub8(a, b uint8) uint8 {
	if b > a {
		return 0
	}
	return a - b
}

// percentOf returns (value × pct) / 100 with integer truncation.
func percentOf(value uint64, pct uint64) uint64 {
	return (value * pct) / 100
}

func absLevelDiff(a, b uint16) uint64 {
	if a > b {
		return uint64(a - b)
	}
	return uint64(b - a)
}
