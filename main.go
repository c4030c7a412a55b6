package main

import (
	"flag"
	"strconv"
	"strings"

	"github.com/diadata-org/dex-sdk-go/pkg/config"
	"github.com/diadata-org/dex-sdk-go/pkg/constants"
	"github.com/diadata-org/dex-sdk-go/pkg/models"
	"github.com/diadata-org/dex-sdk-go/pkg/tokenlist"
	"github.com/diadata-org/dex-sdk-go/pkg/utils"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
)

const (
	// Separator for entries in the environment variables, i.e. 56:0xA-0xB,250:0xC-0xD.
	ENV_SEPARATOR = ","
)

var (
	env = flag.Bool("env", true, "Get settings from env variables if set to true. Otherwise, they are read from the config file.")

	// Comma separated list of pairs.
	// Format should be as follows: ChainID:AddressA-AddressB,ChainID:AddressA-AddressB
	pairsEnv = utils.Getenv("PAIRS", "")
	// Comma separated list of chain ids. Empty means all supported chains.
	chainsEnv = utils.Getenv("CHAINS", "")

	cfg *config.Config
)

func init() {
	flag.Parse()

	if *env {
		cfg = &config.Config{
			LogLevel:       utils.Getenv("LOG_LEVEL", "info"),
			TokenListPath:  utils.Getenv("TOKENLIST_PATH", ""),
			MetricsEnabled: utils.Getenv("METRICS_ENABLED", "false") == "true",
		}
		for _, p := range strings.Split(pairsEnv, ENV_SEPARATOR) {
			if p = strings.TrimSpace(p); p != "" {
				cfg.Pairs = append(cfg.Pairs, p)
			}
		}
		for _, c := range strings.Split(chainsEnv, ENV_SEPARATOR) {
			if c = strings.TrimSpace(c); c == "" {
				continue
			}
			chainID, err := strconv.ParseInt(c, 10, 64)
			if err != nil {
				log.Fatalf("Parse CHAINS: %v", err)
			}
			cfg.Chains = append(cfg.Chains, chainID)
		}
		if err := cfg.Validate(); err != nil {
			log.Fatalf("Invalid settings: %v", err)
		}
	} else {
		var err error
		cfg, err = config.Load(config.Path("dexsdk"))
		if err != nil {
			log.Fatalf("Load config: %v", err)
		}
	}

	loglevel, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Errorf("Parse log level: %v.", err)
	} else {
		log.SetLevel(loglevel)
	}
	tokenlist.SetLogger(log.StandardLogger())
}

func main() {
	registry, err := models.NewRegistry()
	if err != nil {
		log.Fatalf("Build registry: %v", err)
	}

	chainIDs := cfg.ChainIDs()
	if len(chainIDs) == 0 {
		chainIDs = registry.ChainIDs()
	}
	for _, chainID := range chainIDs {
		native, _ := registry.Native(chainID)
		wrapped, _ := registry.WrappedNative(chainID)
		exchange, _ := registry.Exchange(chainID)
		log.Infof(
			"chain %d (%s) -- native: %s (%d decimals) -- wrapped: %s -- exchange: %s factory %s",
			chainID,
			chainID,
			native.Symbol(),
			native.Decimals(),
			wrapped,
			exchange.Name,
			exchange.Factory.Hex(),
		)
	}

	reg := prometheus.NewRegistry()
	var list *tokenlist.List
	if cfg.TokenListPath != "" {
		opts := []tokenlist.Option{tokenlist.WithChains(chainIDs...)}
		if cfg.MetricsEnabled {
			opts = append(opts, tokenlist.WithMetrics(tokenlist.NewMetrics(reg)))
		}
		list, err = tokenlist.Load(cfg.TokenListPath, opts...)
		if err != nil {
			log.Fatalf("Load token list: %v", err)
		}
		for _, chainID := range list.ChainIDs() {
			for _, token := range list.Tokens(chainID) {
				log.Debugf("listed token: %s", token)
			}
		}
	}

	specs, err := cfg.PairSpecs()
	if err != nil {
		log.Fatalf("Parse pairs: %v", err)
	}
	for _, spec := range specs {
		logPair(registry, list, spec)
	}

	if cfg.MetricsEnabled {
		logMetrics(reg)
	}
}

// logPair logs the canonical token order and the pair contract address of @spec.
func logPair(registry *models.Registry, list *tokenlist.List, spec utils.PairSpec) {
	exchange, ok := registry.Exchange(spec.ChainID)
	if !ok {
		log.Errorf("pair %s: no exchange on chain %d", spec, spec.ChainID)
		return
	}
	tokenA, err := resolveToken(registry, list, spec.ChainID, spec.TokenA)
	if err != nil {
		log.Errorf("pair %s: %v", spec, err)
		return
	}
	tokenB, err := resolveToken(registry, list, spec.ChainID, spec.TokenB)
	if err != nil {
		log.Errorf("pair %s: %v", spec, err)
		return
	}
	token0, token1, err := models.SortTokens(tokenA, tokenB)
	if err != nil {
		log.Errorf("pair %s: %v", spec, err)
		return
	}
	pairAddress, err := exchange.PairAddress(token0, token1)
	if err != nil {
		log.Errorf("pair %s: %v", spec, err)
		return
	}
	log.Infof("%s pair %s -- %s: %s", exchange.Identifier(), token0, token1, pairAddress.Hex())
}

// resolveToken returns the listed or wrapped native token for @address and
// falls back to a token without metadata.
func resolveToken(registry *models.Registry, list *tokenlist.List, chainID constants.ChainID, address string) (*models.Token, error) {
	if list != nil {
		if token, ok := list.Find(chainID, address); ok {
			return token, nil
		}
	}
	token, err := models.NewToken(chainID, address, 18, "", "")
	if err != nil {
		return nil, err
	}
	if wrapped, ok := registry.WrappedNative(chainID); ok && wrapped.Equals(token) {
		return wrapped, nil
	}
	log.Warnf("token %s not listed, decimals unknown.", token.Address())
	return token, nil
}

func logMetrics(reg *prometheus.Registry) {
	families, err := reg.Gather()
	if err != nil {
		log.Errorf("Gather metrics: %v", err)
		return
	}
	for _, family := range families {
		for _, metric := range family.GetMetric() {
			var labels []string
			for _, label := range metric.GetLabel() {
				labels = append(labels, label.GetName()+"="+label.GetValue())
			}
			log.Infof("%s{%s} %v", family.GetName(), strings.Join(labels, ","), metric.GetCounter().GetValue())
		}
	}
}
