package models

import (
	"fmt"
	"math/big"

	"github.com/diadata-org/dex-sdk-go/pkg/constants"
	"github.com/diadata-org/dex-sdk-go/pkg/utils"
	"github.com/shopspring/decimal"
)

// CurrencyAmount is a raw uint256 amount of an asset, i.e. in its smallest unit.
type CurrencyAmount struct {
	currency Asset
	raw      *big.Int
}

// NewCurrencyAmount returns an amount of @currency. @raw must be a uint256.
func NewCurrencyAmount(currency Asset, raw *big.Int) (*CurrencyAmount, error) {
	if currency == nil {
		return nil, ErrUnknownCurrency
	}
	if err := utils.ValidateSolidityTypeInstance(raw, constants.Uint256); err != nil {
		return nil, err
	}
	return &CurrencyAmount{currency: currency, raw: new(big.Int).Set(raw)}, nil
}

func (a *CurrencyAmount) Currency() Asset { return a.currency }

// Raw returns a copy of the raw amount.
func (a *CurrencyAmount) Raw() *big.Int { return new(big.Int).Set(a.raw) }

func (a *CurrencyAmount) exact() decimal.Decimal {
	return decimal.NewFromBigInt(a.raw, -int32(a.currency.Decimals()))
}

// ToExact returns the amount in whole units without trailing zeros.
func (a *CurrencyAmount) ToExact() string {
	return a.exact().String()
}

// ToFixed returns the amount in whole units with exactly @places decimal places.
func (a *CurrencyAmount) ToFixed(places int32, rounding constants.Rounding) string {
	d := a.exact()
	switch rounding {
	case constants.ROUND_DOWN:
		d = d.RoundDown(places)
	case constants.ROUND_UP:
		d = d.RoundUp(places)
	default:
		d = d.Round(places)
	}
	return d.StringFixed(places)
}

// Add returns the sum of two amounts of the same currency.
func (a *CurrencyAmount) Add(other *CurrencyAmount) (*CurrencyAmount, error) {
	if !CurrencyEquals(a.currency, other.currency) {
		return nil, fmt.Errorf("add %s to %s: currencies differ", other.currency.Symbol(), a.currency.Symbol())
	}
	return NewCurrencyAmount(a.currency, new(big.Int).Add(a.raw, other.raw))
}

func (a *CurrencyAmount) String() string {
	return a.ToExact() + " " + a.currency.Symbol()
}
