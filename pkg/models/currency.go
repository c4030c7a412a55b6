package models

import (
	"math/big"

	"github.com/diadata-org/dex-sdk-go/pkg/constants"
	"github.com/diadata-org/dex-sdk-go/pkg/utils"
)

// Currency is a fungible instrument with decimal precision and optional display data.
// Plain currencies represent a chain's native coin and are compared by identity,
// hence they should only be obtained from a Registry.
type Currency struct {
	decimals uint8
	symbol   string
	name     string
}

// NewCurrency returns a currency with @decimals in the uint8 domain.
// Empty @symbol and @name mean absent.
func NewCurrency(decimals int, symbol, name string) (*Currency, error) {
	c, err := newCurrency(decimals, symbol, name)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func newCurrency(decimals int, symbol, name string) (Currency, error) {
	if err := utils.ValidateSolidityTypeInstance(big.NewInt(int64(decimals)), constants.Uint8); err != nil {
		return Currency{}, err
	}
	return Currency{decimals: uint8(decimals), symbol: symbol, name: name}, nil
}

func (c *Currency) Decimals() uint8 { return c.decimals }

func (c *Currency) Symbol() string { return c.symbol }

func (c *Currency) Name() string { return c.name }

func (c *Currency) Kind() AssetKind { return AssetNative }

func (c *Currency) currency() *Currency { return c }

func (c *Currency) String() string {
	return c.symbol
}
