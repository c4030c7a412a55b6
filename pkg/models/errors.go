package models

import (
	"errors"
	"fmt"

	"github.com/diadata-org/dex-sdk-go/pkg/constants"
)

// ErrUnknownCurrency is returned when a native currency is not part of the registry.
var ErrUnknownCurrency = errors.New("unknown currency")

// ChainMismatchError signals that two tokens from different chains were compared.
// It is a caller bug, not bad input.
type ChainMismatchError struct {
	ChainA constants.ChainID
	ChainB constants.ChainID
}

func (e *ChainMismatchError) Error() string {
	return fmt.Sprintf("chain ids differ: %d != %d", e.ChainA, e.ChainB)
}

// IdenticalAddressError signals that a token was ordered against a token with the same address.
type IdenticalAddressError struct {
	Address string
}

func (e *IdenticalAddressError) Error() string {
	return fmt.Sprintf("identical addresses: %s", e.Address)
}
