package constants

import "math/big"

// SolidityType names a fixed-width unsigned integer domain.
type SolidityType string

const (
	Uint8   SolidityType = "uint8"
	Uint256 SolidityType = "uint256"
)

// SolidityTypeMaxima holds the inclusive upper bound (2^n - 1) of each domain.
// The lower bound is always 0.
var SolidityTypeMaxima = map[SolidityType]*big.Int{
	Uint8:   mustHexInt("0xff"),
	Uint256: mustHexInt("0xffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff"),
}

func mustHexInt(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 0)
	if !ok {
		panic("constants: invalid integer literal " + s)
	}
	return v
}
