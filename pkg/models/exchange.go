package models

import (
	"fmt"
	"strconv"

	"github.com/diadata-org/dex-sdk-go/pkg/constants"
	"github.com/diadata-org/dex-sdk-go/pkg/utils"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

// Exchange is a constant-product DEX deployment on a single chain.
type Exchange struct {
	Name         string
	ChainID      constants.ChainID
	Factory      common.Address
	InitCodeHash common.Hash
}

// NewExchange validates @factory and @initCodeHash.
func NewExchange(name string, chainID constants.ChainID, factory string, initCodeHash string) (Exchange, error) {
	factoryAddress, _, err := utils.ValidateAndParseAddress(factory)
	if err != nil {
		return Exchange{}, err
	}
	hash, err := parseHash(initCodeHash)
	if err != nil {
		return Exchange{}, err
	}
	return Exchange{Name: name, ChainID: chainID, Factory: factoryAddress, InitCodeHash: hash}, nil
}

func (e Exchange) Identifier() string {
	return e.Name + "-" + strconv.FormatInt(int64(e.ChainID), 10)
}

// PairAddress returns the CREATE2 address of the pair contract of @tokenA and @tokenB.
// The result does not depend on the order of the tokens.
func (e Exchange) PairAddress(tokenA, tokenB *Token) (common.Address, error) {
	for _, t := range []*Token{tokenA, tokenB} {
		if t.ChainID() != e.ChainID {
			return common.Address{}, &ChainMismatchError{ChainA: t.ChainID(), ChainB: e.ChainID}
		}
	}
	token0, token1, err := SortTokens(tokenA, tokenB)
	if err != nil {
		return common.Address{}, err
	}
	salt := crypto.Keccak256Hash(token0.AddressBytes().Bytes(), token1.AddressBytes().Bytes())
	return crypto.CreateAddress2(e.Factory, salt, e.InitCodeHash.Bytes()), nil
}

func parseHash(s string) (common.Hash, error) {
	b, err := hexutil.Decode(s)
	if err != nil || len(b) != common.HashLength {
		return common.Hash{}, fmt.Errorf("invalid init code hash %q", s)
	}
	return common.BytesToHash(b), nil
}
