package constants

// CurrencyInfo is the metadata of a chain's native coin.
type CurrencyInfo struct {
	Decimals int
	Symbol   string
	Name     string
}

// TokenInfo is the metadata of a chain's wrapped native token.
type TokenInfo struct {
	Address  string
	Decimals int
	Symbol   string
	Name     string
}

const (
	PANCAKESWAP = "PancakeSwap"
	SPOOKYSWAP  = "SpookySwap"
	VIPERSWAP   = "ViperSwap"
)

// ExchangeName maps each chain onto the DEX whose factory is deployed there.
var ExchangeName = map[ChainID]string{
	MAINNET:        PANCAKESWAP,
	BSCTESTNET:     PANCAKESWAP,
	FANTOMNET:      SPOOKYSWAP,
	FANTOMTESTNET:  SPOOKYSWAP,
	HARMONYNET:     VIPERSWAP,
	HARMONYTESTNET: VIPERSWAP,
}

var FactoryAddress = map[ChainID]string{
	MAINNET:        "0xcA143Ce32Fe78f1f7019d7d551a6402fC5350c73",
	BSCTESTNET:     "0xcA143Ce32Fe78f1f7019d7d551a6402fC5350c73",
	FANTOMNET:      "0xEF45d134b73241eDa7703fa787148D9C9F4950b0",
	FANTOMTESTNET:  "0xEF45d134b73241eDa7703fa787148D9C9F4950b0",
	HARMONYNET:     "0x7D02c116b98d0965ba7B642ace0183ad8b8D2196",
	HARMONYTESTNET: "0x7D02c116b98d0965ba7B642ace0183ad8b8D2196",
}

var InitCodeHash = map[ChainID]string{
	MAINNET:        "0x00fb7f630766e6a796048ea87d01acd3068e8ff67d078148a3fa3f4a84f69bd5",
	BSCTESTNET:     "0x00fb7f630766e6a796048ea87d01acd3068e8ff67d078148a3fa3f4a84f69bd5",
	FANTOMNET:      "0xe242e798f6cee26a9cb0bbf24653bf066e5356ffeac160907fe2cc108e238617",
	FANTOMTESTNET:  "0xe242e798f6cee26a9cb0bbf24653bf066e5356ffeac160907fe2cc108e238617",
	HARMONYNET:     "0x162f79e638367cd45a118c778971dfd8d96c625d2798d3b71994b035cfe9b6dc",
	HARMONYTESTNET: "0x162f79e638367cd45a118c778971dfd8d96c625d2798d3b71994b035cfe9b6dc",
}

// NativeCurrencies holds the native coin of every supported chain.
var NativeCurrencies = map[ChainID]CurrencyInfo{
	MAINNET:        {Decimals: 18, Symbol: "BNB", Name: "Binance"},
	BSCTESTNET:     {Decimals: 18, Symbol: "BNB", Name: "Binance"},
	FANTOMNET:      {Decimals: 18, Symbol: "FTM", Name: "Fantom"},
	FANTOMTESTNET:  {Decimals: 18, Symbol: "FTM", Name: "Fantom"},
	HARMONYNET:     {Decimals: 18, Symbol: "ONE", Name: "Harmony"},
	HARMONYTESTNET: {Decimals: 18, Symbol: "ONE", Name: "Harmony"},
}

// WrappedNativeTokens holds the canonical wrapped native token of every supported chain.
var WrappedNativeTokens = map[ChainID]TokenInfo{
	MAINNET:        {Address: "0xbb4CdB9CBd36B01bD1cBaEBF2De08d9173bc095c", Decimals: 18, Symbol: "WBNB", Name: "Wrapped BNB"},
	BSCTESTNET:     {Address: "0xaE8E19eFB41e7b96815649A6a60785e1fbA84C1e", Decimals: 18, Symbol: "WBNB", Name: "Wrapped BNB"},
	FANTOMNET:      {Address: "0x21be370d5312f44cb42ce377bc9b8a0cef1a4c83", Decimals: 18, Symbol: "wFTM", Name: "Wrapped Fantom"},
	FANTOMTESTNET:  {Address: "0xf1277d1ed8ad466beddf92ef448a132661956621", Decimals: 18, Symbol: "wFTM", Name: "Wrapped Fantom"},
	HARMONYNET:     {Address: "0xcf664087a5bb0237a0bad6742852ec6c8d69a27a", Decimals: 18, Symbol: "WONE", Name: "Wrapped ONE"},
	HARMONYTESTNET: {Address: "0xcf664087a5bb0237a0bad6742852ec6c8d69a27a", Decimals: 18, Symbol: "WONE", Name: "Wrapped ONE"},
}
