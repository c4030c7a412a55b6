package models

import (
	"bytes"
	"fmt"

	"github.com/diadata-org/dex-sdk-go/pkg/constants"
	"github.com/diadata-org/dex-sdk-go/pkg/utils"
	"github.com/ethereum/go-ethereum/common"
)

// Token is an ERC20 token identified by its chain id and contract address.
type Token struct {
	Currency
	chainID constants.ChainID
	address common.Address
	// checksummed hex form of address
	hex string
}

// NewToken validates @decimals and @address and returns the token.
// The address may be given with or without 0x prefix and in any case.
func NewToken(chainID constants.ChainID, address string, decimals int, symbol, name string) (*Token, error) {
	c, err := newCurrency(decimals, symbol, name)
	if err != nil {
		return nil, err
	}
	parsed, hex, err := utils.ValidateAndParseAddress(address)
	if err != nil {
		return nil, err
	}
	return &Token{Currency: c, chainID: chainID, address: parsed, hex: hex}, nil
}

func (t *Token) ChainID() constants.ChainID { return t.chainID }

// Address returns the EIP-55 checksummed address.
func (t *Token) Address() string { return t.hex }

func (t *Token) AddressBytes() common.Address { return t.address }

func (t *Token) Kind() AssetKind { return AssetToken }

// Equals returns true if both tokens have the same chain id and address.
func (t *Token) Equals(other *Token) bool {
	// short circuit on reference equality
	if t == other {
		return true
	}
	if t == nil || other == nil {
		return false
	}
	return t.chainID == other.chainID && t.address == other.address
}

// SortsBefore returns true if the address of @t sorts before the address of @other.
// Both tokens must be on the same chain and have different addresses.
func (t *Token) SortsBefore(other *Token) (bool, error) {
	if t.chainID != other.chainID {
		return false, &ChainMismatchError{ChainA: t.chainID, ChainB: other.chainID}
	}
	cmp := bytes.Compare(t.address.Bytes(), other.address.Bytes())
	if cmp == 0 {
		return false, &IdenticalAddressError{Address: t.hex}
	}
	return cmp < 0, nil
}

func (t *Token) String() string {
	return fmt.Sprintf("%s(%d:%s)", t.symbol, t.chainID, t.hex)
}

// SortTokens returns @a and @b in canonical order.
func SortTokens(a, b *Token) (token0, token1 *Token, err error) {
	before, err := a.SortsBefore(b)
	if err != nil {
		return nil, nil, err
	}
	if before {
		return a, b, nil
	}
	return b, a, nil
}
