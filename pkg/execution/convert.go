// Copyright 2025 Certen Protocol

package execution

import (
	"math/big"

	"github.com/holiman/uint256"
)

// uint256FromBig converts a possibly-nil *big.Int to a *uint256.Int,
// defaulting to zero. EIP-4844 blob transactions use fixed-width uint256
// fields rather than big.Int.
func uint256FromBig(n *big.Int) *uint256.Int {
	if n == nil {
		return new(uint256.Int)
	}
	u, overflow := uint256.FromBig(n)
	if overflow {
		panic("execution: value overflows uint256")
	}
	return u
}
