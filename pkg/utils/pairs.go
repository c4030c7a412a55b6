package utils

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/diadata-org/dex-sdk-go/pkg/constants"
)

const (
	// Separator for the chain and the token addresses of a pair, i.e. 56:0xA-0xB.
	CHAIN_SEPARATOR = ":"
	// Separator for a pair's addresses.
	PAIR_SEPARATOR = "-"
)

// PairSpec is a pair of token addresses on a given chain.
type PairSpec struct {
	ChainID constants.ChainID
	TokenA  string
	TokenB  string
}

func (p PairSpec) String() string {
	return strconv.FormatInt(int64(p.ChainID), 10) + CHAIN_SEPARATOR + p.TokenA + PAIR_SEPARATOR + p.TokenB
}

// ParsePairSpec parses a pair of the form ChainID:AddressA-AddressB.
// Addresses are only split here, validation happens on token construction.
func ParsePairSpec(s string) (spec PairSpec, err error) {
	chainAndPair := strings.Split(strings.TrimSpace(s), CHAIN_SEPARATOR)
	if len(chainAndPair) != 2 {
		err = fmt.Errorf("pair %q: expected format ChainID%sAddressA%sAddressB", s, CHAIN_SEPARATOR, PAIR_SEPARATOR)
		return
	}
	chainID, err := strconv.ParseInt(chainAndPair[0], 10, 64)
	if err != nil {
		err = fmt.Errorf("pair %q: parse chain id: %w", s, err)
		return
	}
	addresses := strings.Split(chainAndPair[1], PAIR_SEPARATOR)
	if len(addresses) != 2 || addresses[0] == "" || addresses[1] == "" {
		err = fmt.Errorf("pair %q: expected two addresses separated by %q", s, PAIR_SEPARATOR)
		return
	}
	spec.ChainID = constants.ChainID(chainID)
	spec.TokenA = addresses[0]
	spec.TokenB = addresses[1]
	return
}
