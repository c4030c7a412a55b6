package config

import (
	"fmt"
	"os"

	"github.com/diadata-org/dex-sdk-go/pkg/constants"
	"github.com/diadata-org/dex-sdk-go/pkg/utils"
	"github.com/tkanos/gonfig"
)

// Config is read from a JSON file. Fields with an env tag can be overridden
// by the corresponding environment variable.
type Config struct {
	LogLevel       string   `json:"LogLevel" env:"LOG_LEVEL"`
	TokenListPath  string   `json:"TokenListPath" env:"TOKENLIST_PATH"`
	MetricsEnabled bool     `json:"MetricsEnabled" env:"METRICS_ENABLED"`
	Chains         []int64  `json:"Chains"`
	Pairs          []string `json:"Pairs"`
}

// Load reads the config at @path and validates it.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	c := Config{LogLevel: "info"}
	if err := gonfig.GetConf(path, &c); err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return &c, nil
}

// Path returns the config location from CONFIG_PATH, falling back to the default location of @name.
func Path(name string) string {
	return utils.Getenv("CONFIG_PATH", utils.GetConfigPath(name))
}

// Validate rejects unsupported chains and malformed pairs.
func (c *Config) Validate() error {
	for _, chainID := range c.Chains {
		if !constants.ChainID(chainID).Supported() {
			return fmt.Errorf("unsupported chain %d", chainID)
		}
	}
	_, err := c.PairSpecs()
	return err
}

// ChainIDs returns the configured chains. Empty means all supported chains.
func (c *Config) ChainIDs() []constants.ChainID {
	chainIDs := make([]constants.ChainID, 0, len(c.Chains))
	for _, chainID := range c.Chains {
		chainIDs = append(chainIDs, constants.ChainID(chainID))
	}
	return chainIDs
}

// PairSpecs parses the configured pairs.
func (c *Config) PairSpecs() ([]utils.PairSpec, error) {
	specs := make([]utils.PairSpec, 0, len(c.Pairs))
	for _, p := range c.Pairs {
		spec, err := utils.ParsePairSpec(p)
		if err != nil {
			return nil, err
		}
		if !spec.ChainID.Supported() {
			return nil, fmt.Errorf("pair %s: unsupported chain %d", p, spec.ChainID)
		}
		specs = append(specs, spec)
	}
	return specs, nil
}
