package models

import (
	"fmt"
	"sort"

	"github.com/diadata-org/dex-sdk-go/pkg/constants"
)

// Registry holds exactly one native currency, one wrapped native token and one
// exchange deployment per supported chain. It is never written after NewRegistry
// returns and can be shared between goroutines.
type Registry struct {
	native    map[constants.ChainID]*Currency
	wrapped   map[constants.ChainID]*Token
	exchanges map[constants.ChainID]Exchange
}

// NewRegistry builds the registry from the compiled-in network tables.
func NewRegistry() (*Registry, error) {
	r := &Registry{
		native:    make(map[constants.ChainID]*Currency),
		wrapped:   make(map[constants.ChainID]*Token),
		exchanges: make(map[constants.ChainID]Exchange),
	}

	for chainID, info := range constants.NativeCurrencies {
		c, err := NewCurrency(info.Decimals, info.Symbol, info.Name)
		if err != nil {
			return nil, fmt.Errorf("native currency for chain %d: %w", chainID, err)
		}
		r.native[chainID] = c
	}

	for chainID, info := range constants.WrappedNativeTokens {
		t, err := NewToken(chainID, info.Address, info.Decimals, info.Symbol, info.Name)
		if err != nil {
			return nil, fmt.Errorf("wrapped native token for chain %d: %w", chainID, err)
		}
		r.wrapped[chainID] = t
	}

	for chainID, factory := range constants.FactoryAddress {
		initCodeHash, ok := constants.InitCodeHash[chainID]
		if !ok {
			return nil, fmt.Errorf("exchange for chain %d: missing init code hash", chainID)
		}
		e, err := NewExchange(constants.ExchangeName[chainID], chainID, factory, initCodeHash)
		if err != nil {
			return nil, fmt.Errorf("exchange for chain %d: %w", chainID, err)
		}
		r.exchanges[chainID] = e
	}

	return r, nil
}

// MustNewRegistry is like NewRegistry but panics on error.
func MustNewRegistry() *Registry {
	r, err := NewRegistry()
	if err != nil {
		panic(err)
	}
	return r
}

// Native returns the native currency of @chainID.
func (r *Registry) Native(chainID constants.ChainID) (*Currency, bool) {
	c, ok := r.native[chainID]
	return c, ok
}

// WrappedNative returns the wrapped native token of @chainID.
func (r *Registry) WrappedNative(chainID constants.ChainID) (*Token, bool) {
	t, ok := r.wrapped[chainID]
	return t, ok
}

// Exchange returns the DEX deployment on @chainID.
func (r *Registry) Exchange(chainID constants.ChainID) (Exchange, bool) {
	e, ok := r.exchanges[chainID]
	return e, ok
}

// ChainIDs returns all chains with a native currency in ascending order.
func (r *Registry) ChainIDs() []constants.ChainID {
	chainIDs := make([]constants.ChainID, 0, len(r.native))
	for chainID := range r.native {
		chainIDs = append(chainIDs, chainID)
	}
	sort.Slice(chainIDs, func(i, j int) bool { return chainIDs[i] < chainIDs[j] })
	return chainIDs
}

// IsNative reports whether @a is one of the native currencies held by r.
func (r *Registry) IsNative(a Asset) bool {
	if a == nil || a.Kind() != AssetNative {
		return false
	}
	for _, c := range r.native {
		if c == a.currency() {
			return true
		}
	}
	return false
}

// Wrapped returns the token to use for @a on @chainID: tokens are returned as is,
// the native currency of @chainID is replaced by its wrapped token.
func (r *Registry) Wrapped(a Asset, chainID constants.ChainID) (*Token, error) {
	if a == nil {
		return nil, ErrUnknownCurrency
	}
	if a.Kind() == AssetToken {
		t := a.(*Token)
		if t.ChainID() != chainID {
			return nil, &ChainMismatchError{ChainA: t.ChainID(), ChainB: chainID}
		}
		return t, nil
	}
	native, ok := r.native[chainID]
	if !ok || native != a.currency() {
		return nil, fmt.Errorf("%w: %s on chain %d", ErrUnknownCurrency, a.Symbol(), chainID)
	}
	wrapped, ok := r.wrapped[chainID]
	if !ok {
		return nil, fmt.Errorf("%w: no wrapped token on chain %d", ErrUnknownCurrency, chainID)
	}
	return wrapped, nil
}
