package tokenlist

import (
	"errors"
	"fmt"
	"math"
	"os"
	"sort"

	"github.com/diadata-org/dex-sdk-go/pkg/constants"
	"github.com/diadata-org/dex-sdk-go/pkg/models"
	"github.com/diadata-org/dex-sdk-go/pkg/utils"
	"github.com/ethereum/go-ethereum/common"
	"github.com/tidwall/gjson"
)

// Reason classifies why a token list entry was rejected.
type Reason string

const (
	ReasonSchema    Reason = "schema"
	ReasonDecimals  Reason = "decimals"
	ReasonAddress   Reason = "address"
	ReasonChain     Reason = "chain"
	ReasonDuplicate Reason = "duplicate"
)

var ErrInvalidList = errors.New("invalid token list")

// Rejection describes a skipped entry of the token list.
type Rejection struct {
	Index  int
	Reason Reason
	Err    error
}

type tokenKey struct {
	chainID constants.ChainID
	address common.Address
}

// List is an immutable set of validated tokens.
type List struct {
	name     string
	tokens   map[tokenKey]*models.Token
	byChain  map[constants.ChainID][]*models.Token
	rejected []Rejection
}

type options struct {
	metrics *Metrics
	chains  map[constants.ChainID]bool
}

type Option func(*options)

// WithMetrics counts loaded and rejected entries on @m.
func WithMetrics(m *Metrics) Option {
	return func(o *options) { o.metrics = m }
}

// WithChains restricts the list to tokens on @chainIDs.
func WithChains(chainIDs ...constants.ChainID) Option {
	return func(o *options) {
		if o.chains == nil {
			o.chains = make(map[constants.ChainID]bool)
		}
		for _, chainID := range chainIDs {
			o.chains[chainID] = true
		}
	}
}

// Load reads the token list stored at @path.
func Load(path string, opts ...Option) (*List, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read token list: %w", err)
	}
	return Parse(data, opts...)
}

// Parse builds a List from a token list document of the form
// {"name": ..., "tokens": [{"chainId", "address", "decimals", "symbol", "name"}, ...]}.
// Invalid entries are skipped and reported by List.Rejected.
func Parse(data []byte, opts ...Option) (*List, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: malformed json", ErrInvalidList)
	}
	root := gjson.ParseBytes(data)
	entries := root.Get("tokens")
	if !entries.IsArray() {
		return nil, fmt.Errorf("%w: missing tokens array", ErrInvalidList)
	}

	l := &List{
		name:    root.Get("name").String(),
		tokens:  make(map[tokenKey]*models.Token),
		byChain: make(map[constants.ChainID][]*models.Token),
	}

	reject := func(index int, reason Reason, err error) {
		log.Warnf("token list %q: skip entry %d (%s): %v", l.name, index, reason, err)
		l.rejected = append(l.rejected, Rejection{Index: index, Reason: reason, Err: err})
		o.metrics.tokenRejected(reason)
	}

	for i, entry := range entries.Array() {
		chainID, decimals, err := parseNumbers(entry)
		if err != nil {
			reject(i, ReasonSchema, err)
			continue
		}
		if o.chains != nil && !o.chains[chainID] {
			reject(i, ReasonChain, fmt.Errorf("chain %d not selected", chainID))
			continue
		}

		token, err := models.NewToken(chainID, entry.Get("address").String(), decimals, entry.Get("symbol").String(), entry.Get("name").String())
		if err != nil {
			var rangeErr *utils.InvalidRangeError
			if errors.As(err, &rangeErr) {
				reject(i, ReasonDecimals, err)
			} else {
				reject(i, ReasonAddress, err)
			}
			continue
		}

		key := tokenKey{chainID: token.ChainID(), address: token.AddressBytes()}
		if existing, ok := l.tokens[key]; ok {
			reject(i, ReasonDuplicate, fmt.Errorf("%s already listed as %s", token, existing))
			continue
		}
		l.tokens[key] = token
		l.byChain[chainID] = append(l.byChain[chainID], token)
		o.metrics.tokenLoaded(chainID)
	}

	for _, tokens := range l.byChain {
		sortCanonical(tokens)
	}

	log.Infof("token list %q: loaded %d tokens, rejected %d entries.", l.name, len(l.tokens), len(l.rejected))
	return l, nil
}

func parseNumbers(entry gjson.Result) (chainID constants.ChainID, decimals int, err error) {
	for _, field := range []string{"chainId", "decimals"} {
		v := entry.Get(field)
		if v.Type != gjson.Number {
			err = fmt.Errorf("field %s: expected number, got %q", field, v.Raw)
			return
		}
		if v.Num != math.Trunc(v.Num) {
			err = fmt.Errorf("field %s: expected integer, got %s", field, v.Raw)
			return
		}
	}
	if !entry.Get("address").Exists() {
		err = errors.New("field address: missing")
		return
	}
	chainID = constants.ChainID(entry.Get("chainId").Int())
	decimals = int(entry.Get("decimals").Int())
	return
}

// sortCanonical orders same-chain tokens by address.
func sortCanonical(tokens []*models.Token) {
	sort.Slice(tokens, func(i, j int) bool {
		before, err := tokens[i].SortsBefore(tokens[j])
		if err != nil {
			log.Errorf("sort tokens: %v", err)
		}
		return before
	})
}

func (l *List) Name() string { return l.name }

// Len returns the number of accepted tokens.
func (l *List) Len() int { return len(l.tokens) }

// Find returns the token with @address on @chainID. @address is normalized first.
func (l *List) Find(chainID constants.ChainID, address string) (*models.Token, bool) {
	parsed, _, err := utils.ValidateAndParseAddress(address)
	if err != nil {
		return nil, false
	}
	t, ok := l.tokens[tokenKey{chainID: chainID, address: parsed}]
	return t, ok
}

// Tokens returns the tokens on @chainID in canonical address order.
func (l *List) Tokens(chainID constants.ChainID) []*models.Token {
	return append([]*models.Token(nil), l.byChain[chainID]...)
}

// ChainIDs returns all chains with at least one token in ascending order.
func (l *List) ChainIDs() []constants.ChainID {
	chainIDs := make([]constants.ChainID, 0, len(l.byChain))
	for chainID := range l.byChain {
		chainIDs = append(chainIDs, chainID)
	}
	sort.Slice(chainIDs, func(i, j int) bool { return chainIDs[i] < chainIDs[j] })
	return chainIDs
}

// Rejected returns the skipped entries in document order.
func (l *List) Rejected() []Rejection {
	return append([]Rejection(nil), l.rejected...)
}
