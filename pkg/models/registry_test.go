package models

import (
	"errors"
	"testing"

	"github.com/diadata-org/dex-sdk-go/pkg/constants"
)

func TestNewRegistry(t *testing.T) {
	registry, err := NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}

	chainIDs := registry.ChainIDs()
	if len(chainIDs) != len(constants.NativeCurrencies) {
		t.Fatalf("got %d chains, want %d", len(chainIDs), len(constants.NativeCurrencies))
	}
	for i := 1; i < len(chainIDs); i++ {
		if chainIDs[i-1] >= chainIDs[i] {
			t.Fatalf("chain ids not sorted: %v", chainIDs)
		}
	}

	for _, chainID := range chainIDs {
		native, ok := registry.Native(chainID)
		if !ok {
			t.Errorf("chain %s: no native currency", chainID)
			continue
		}
		if native.Decimals() != 18 {
			t.Errorf("chain %s: native decimals = %d", chainID, native.Decimals())
		}
		if !registry.IsNative(native) {
			t.Errorf("chain %s: native currency not recognized", chainID)
		}

		wrapped, ok := registry.WrappedNative(chainID)
		if !ok {
			t.Errorf("chain %s: no wrapped native token", chainID)
			continue
		}
		if wrapped.ChainID() != chainID {
			t.Errorf("chain %s: wrapped token on chain %s", chainID, wrapped.ChainID())
		}
		if registry.IsNative(wrapped) {
			t.Errorf("chain %s: wrapped token reported as native", chainID)
		}

		exchange, ok := registry.Exchange(chainID)
		if !ok {
			t.Errorf("chain %s: no exchange", chainID)
		} else if exchange.ChainID != chainID {
			t.Errorf("chain %s: exchange on chain %s", chainID, exchange.ChainID)
		}
	}

	if _, ok := registry.Native(constants.ChainID(1)); ok {
		t.Error("unexpected native currency for chain 1")
	}
}

func TestRegistryNativeIsSingleton(t *testing.T) {
	registry := MustNewRegistry()
	first, _ := registry.Native(constants.MAINNET)
	second, _ := registry.Native(constants.MAINNET)
	if first != second {
		t.Fatal("native currency lookups return different instances")
	}

	// A second registry builds its own instances.
	other := MustNewRegistry()
	otherBNB, _ := other.Native(constants.MAINNET)
	if CurrencyEquals(first, otherBNB) {
		t.Error("native currencies of different registries are equal")
	}
	if registry.IsNative(otherBNB) {
		t.Error("foreign native currency reported as native")
	}
}

func TestRegistryWrappedNativeMetadata(t *testing.T) {
	registry := MustNewRegistry()

	cases := []struct {
		chainID constants.ChainID
		address string
		symbol  string
	}{
		{constants.MAINNET, "0xbb4CdB9CBd36B01bD1cBaEBF2De08d9173bc095c", "WBNB"},
		{constants.BSCTESTNET, "0xaE8E19eFB41e7b96815649A6a60785e1fbA84C1e", "WBNB"},
		{constants.FANTOMNET, "0x21be370D5312f44cB42ce377BC9b8a0cEF1A4C83", "wFTM"},
		{constants.FANTOMTESTNET, "0xf1277d1Ed8AD466beddF92ef448A132661956621", "wFTM"},
		{constants.HARMONYNET, "0xcF664087a5bB0237a0BAd6742852ec6c8d69A27a", "WONE"},
		{constants.HARMONYTESTNET, "0xcF664087a5bB0237a0BAd6742852ec6c8d69A27a", "WONE"},
	}
	for _, c := range cases {
		wrapped, ok := registry.WrappedNative(c.chainID)
		if !ok {
			t.Fatalf("chain %s: no wrapped token", c.chainID)
		}
		if wrapped.Address() != c.address || wrapped.Symbol() != c.symbol {
			t.Errorf("chain %s: got %s %s, want %s %s", c.chainID, wrapped.Symbol(), wrapped.Address(), c.symbol, c.address)
		}
	}
}

func TestNativeAndWrappedAcrossChains(t *testing.T) {
	registry := MustNewRegistry()

	bnb, _ := registry.Native(constants.MAINNET)
	ftm, _ := registry.Native(constants.FANTOMNET)
	if bnb.Symbol() != "BNB" || ftm.Symbol() != "FTM" {
		t.Fatalf("unexpected symbols %s %s", bnb.Symbol(), ftm.Symbol())
	}
	if CurrencyEquals(bnb, ftm) {
		t.Error("BNB equals FTM")
	}

	wbnb, _ := registry.WrappedNative(constants.MAINNET)
	wftm, _ := registry.WrappedNative(constants.FANTOMNET)
	if wbnb.Equals(wftm) {
		t.Error("WBNB equals wFTM")
	}

	// Harmony mainnet and testnet share the wrapped token address.
	wone, _ := registry.WrappedNative(constants.HARMONYNET)
	woneTestnet, _ := registry.WrappedNative(constants.HARMONYTESTNET)
	if wone.Address() != woneTestnet.Address() {
		t.Fatalf("addresses differ: %s %s", wone.Address(), woneTestnet.Address())
	}
	if wone.Equals(woneTestnet) {
		t.Error("tokens on different chains with the same address are equal")
	}
}

func TestRegistryWrapped(t *testing.T) {
	registry := MustNewRegistry()
	bnb, _ := registry.Native(constants.MAINNET)
	wbnb, _ := registry.WrappedNative(constants.MAINNET)
	busd := mustToken(t, constants.MAINNET, addressBUSD)

	got, err := registry.Wrapped(bnb, constants.MAINNET)
	if err != nil || got != wbnb {
		t.Errorf("Wrapped(BNB) = %v, %v", got, err)
	}
	got, err = registry.Wrapped(busd, constants.MAINNET)
	if err != nil || got != busd {
		t.Errorf("Wrapped(BUSD) = %v, %v", got, err)
	}

	_, err = registry.Wrapped(busd, constants.FANTOMNET)
	var chainErr *ChainMismatchError
	if !errors.As(err, &chainErr) {
		t.Errorf("Wrapped(BUSD, Fantom): expected *ChainMismatchError, got %v", err)
	}

	_, err = registry.Wrapped(bnb, constants.FANTOMNET)
	if !errors.Is(err, ErrUnknownCurrency) {
		t.Errorf("Wrapped(BNB, Fantom): expected ErrUnknownCurrency, got %v", err)
	}

	foreign, _ := NewCurrency(18, "BNB", "Binance")
	_, err = registry.Wrapped(foreign, constants.MAINNET)
	if !errors.Is(err, ErrUnknownCurrency) {
		t.Errorf("Wrapped(foreign BNB): expected ErrUnknownCurrency, got %v", err)
	}
}
