package constants

import (
	"math/big"
	"strconv"
)

// ChainID identifies a supported network.
type ChainID int64

const (
	MAINNET        ChainID = 56
	BSCTESTNET     ChainID = 97
	FANTOMNET      ChainID = 250
	FANTOMTESTNET  ChainID = 4002
	HARMONYNET     ChainID = 1666600000
	HARMONYTESTNET ChainID = 1666700000
)

var chainNames = map[ChainID]string{
	MAINNET:        "BSC",
	BSCTESTNET:     "BSCTestnet",
	FANTOMNET:      "Fantom",
	FANTOMTESTNET:  "FantomTestnet",
	HARMONYNET:     "Harmony",
	HARMONYTESTNET: "HarmonyTestnet",
}

func (c ChainID) String() string {
	if name, ok := chainNames[c]; ok {
		return name
	}
	return "Chain" + strconv.FormatInt(int64(c), 10)
}

// Supported reports whether c is one of the compiled-in networks.
func (c ChainID) Supported() bool {
	_, ok := chainNames[c]
	return ok
}

// TradeType is the direction in which a trade amount is fixed.
type TradeType int

const (
	EXACT_INPUT TradeType = iota
	EXACT_OUTPUT
)

func (t TradeType) String() string {
	switch t {
	case EXACT_INPUT:
		return "ExactInput"
	case EXACT_OUTPUT:
		return "ExactOutput"
	}
	return "TradeType(" + strconv.Itoa(int(t)) + ")"
}

// Rounding selects how decimal representations of amounts are rounded.
type Rounding int

const (
	ROUND_DOWN Rounding = iota
	ROUND_HALF_UP
	ROUND_UP
)

// MinimumLiquidity is the amount of liquidity tokens locked forever on pair creation.
var MinimumLiquidity = big.NewInt(1000)
