package utils

import (
	"math/big"
	"strings"

	"github.com/diadata-org/dex-sdk-go/pkg/constants"
	"github.com/ethereum/go-ethereum/common"
)

// ValidateSolidityTypeInstance checks that 0 <= @value <= max(@solidityType).
func ValidateSolidityTypeInstance(value *big.Int, solidityType constants.SolidityType) error {
	maximum, ok := constants.SolidityTypeMaxima[solidityType]
	if !ok || value == nil {
		return &InvalidRangeError{Value: value, Type: solidityType}
	}
	if value.Sign() < 0 || value.Cmp(maximum) > 0 {
		return &InvalidRangeError{Value: new(big.Int).Set(value), Type: solidityType}
	}
	return nil
}

// ValidateAndParseAddress normalizes @address and returns it together with its
// EIP-55 checksummed representation. The prefix is optional and case is ignored.
// Checksums of mixed-case input are not verified.
func ValidateAndParseAddress(address string) (common.Address, string, error) {
	a := strings.TrimSpace(address)
	if strings.HasPrefix(a, "0X") {
		a = "0x" + a[2:]
	}
	if !strings.HasPrefix(a, "0x") {
		a = "0x" + a
	}
	if !common.IsHexAddress(a) {
		return common.Address{}, "", &InvalidAddressError{Address: address}
	}
	parsed := common.HexToAddress(a)
	return parsed, parsed.Hex(), nil
}
