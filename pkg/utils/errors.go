package utils

import (
	"fmt"
	"math/big"

	"github.com/diadata-org/dex-sdk-go/pkg/constants"
)

// InvalidRangeError is returned when a value lies outside of a fixed-width unsigned domain.
type InvalidRangeError struct {
	Value *big.Int
	Type  constants.SolidityType
}

func (e *InvalidRangeError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Value == nil {
		return fmt.Sprintf("invalid range: missing value for %s", e.Type)
	}
	return fmt.Sprintf("invalid range: %s is not a %s", e.Value.String(), e.Type)
}

// InvalidAddressError is returned when a string is not a well-formed hex address.
type InvalidAddressError struct {
	Address string
}

func (e *InvalidAddressError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("invalid address: %q", e.Address)
}
