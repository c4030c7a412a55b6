package models

import (
	"errors"
	"testing"

	"github.com/diadata-org/dex-sdk-go/pkg/constants"
	"github.com/ethereum/go-ethereum/common"
)

func TestPairAddress(t *testing.T) {
	registry := MustNewRegistry()
	exchange, ok := registry.Exchange(constants.MAINNET)
	if !ok {
		t.Fatal("no exchange on BSC")
	}
	if exchange.Name != constants.PANCAKESWAP {
		t.Errorf("exchange name = %s", exchange.Name)
	}
	if exchange.Identifier() != "PancakeSwap-56" {
		t.Errorf("identifier = %s", exchange.Identifier())
	}

	wbnb, _ := registry.WrappedNative(constants.MAINNET)
	busd := mustToken(t, constants.MAINNET, addressBUSD)
	want := common.HexToAddress("0x58F876857a02D6762E0101bb5C46A8c1ED44Dc16")

	forward, err := exchange.PairAddress(wbnb, busd)
	if err != nil {
		t.Fatalf("PairAddress: %v", err)
	}
	backward, err := exchange.PairAddress(busd, wbnb)
	if err != nil {
		t.Fatalf("PairAddress: %v", err)
	}
	if forward != want {
		t.Errorf("PairAddress(WBNB, BUSD) = %s, want %s", forward.Hex(), want.Hex())
	}
	if forward != backward {
		t.Errorf("pair address depends on token order: %s != %s", forward.Hex(), backward.Hex())
	}
}

func TestPairAddressErrors(t *testing.T) {
	registry := MustNewRegistry()
	exchange, _ := registry.Exchange(constants.MAINNET)
	wbnb, _ := registry.WrappedNative(constants.MAINNET)
	wftm, _ := registry.WrappedNative(constants.FANTOMNET)

	_, err := exchange.PairAddress(wbnb, wftm)
	var chainErr *ChainMismatchError
	if !errors.As(err, &chainErr) {
		t.Errorf("expected *ChainMismatchError, got %v", err)
	}

	_, err = exchange.PairAddress(wbnb, wbnb)
	var identicalErr *IdenticalAddressError
	if !errors.As(err, &identicalErr) {
		t.Errorf("expected *IdenticalAddressError, got %v", err)
	}
}

func TestNewExchange(t *testing.T) {
	_, err := NewExchange("X", constants.MAINNET, "0x1", constants.InitCodeHash[constants.MAINNET])
	if err == nil {
		t.Error("invalid factory: expected error")
	}
	_, err = NewExchange("X", constants.MAINNET, constants.FactoryAddress[constants.MAINNET], "0x1234")
	if err == nil {
		t.Error("short init code hash: expected error")
	}
	_, err = NewExchange("X", constants.MAINNET, constants.FactoryAddress[constants.MAINNET], "00fb7f630766e6a796048ea87d01acd3068e8ff67d078148a3fa3f4a84f69bd5")
	if err == nil {
		t.Error("init code hash without prefix: expected error")
	}
}
