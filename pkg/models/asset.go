package models

// AssetKind tags the two variants of Asset.
type AssetKind int

const (
	AssetNative AssetKind = iota
	AssetToken
)

func (k AssetKind) String() string {
	if k == AssetToken {
		return "Token"
	}
	return "Native"
}

// Asset is any fungible currency, either a chain's native coin (*Currency)
// or an on-chain token (*Token). The set of implementations is closed.
type Asset interface {
	Decimals() uint8
	Symbol() string
	Name() string
	Kind() AssetKind

	currency() *Currency
}

// CurrencyEquals compares two assets. Tokens are equal by chain id and address,
// native currencies only by identity, and a token never equals a native currency.
func CurrencyEquals(a, b Asset) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch {
	case a.Kind() == AssetToken && b.Kind() == AssetToken:
		return a.(*Token).Equals(b.(*Token))
	case a.Kind() == AssetToken || b.Kind() == AssetToken:
		return false
	default:
		return a.currency() == b.currency()
	}
}
