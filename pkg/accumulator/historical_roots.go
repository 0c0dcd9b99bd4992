// Copyright 2025 Certen Protocol

package accumulator

// historicalEpochRootCount is the number of pre-Merge epochs: block
// 15,537,393 (the last pre-Merge block) falls in epoch 1896, so the table
// holds indices [0, 1896].
const historicalEpochRootCount = 1897

// defaultHistoricalEpochRoots is the frozen, baked-in table of pre-Merge
// epoch accumulator roots shipped with this library. Only epoch 0's entry
// is populated, taken directly from spec.md §8 scenario 4's test vector (the
// tree-hash root of real mainnet blocks 0-8191); the remaining 1896 entries
// are intentionally left zeroed placeholders, since populating them requires
// the real mainnet header set this environment does not have access to. A
// production deployment must supply the full table — every other real
// mainnet epoch root — via NewWithTable rather than relying on this default.
var defaultHistoricalEpochRoots = buildDefaultTable()

func buildDefaultTable() [][32]byte {
	table := make([][32]byte, historicalEpochRootCount)
	table[0] = mustHexRoot("5ec1ffb8c3b146f42606c74ced973dc16ec5a107c0345858c343fc94780b4218")
	return table
}

func mustHexRoot(hexStr string) [32]byte {
	var out [32]byte
	if len(hexStr) != 64 {
		panic("accumulator: hex root literal must be 64 hex characters")
	}
	for i := 0; i < 32; i++ {
		hi := hexNibble(hexStr[2*i])
		lo := hexNibble(hexStr[2*i+1])
		out[i] = hi<<4 | lo
	}
	return out
}

func hexNibble(c byte) byte {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10
	default:
		panic("accumulator: invalid hex character")
	}
}
