package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"chainscope/internal/chain"
)

// InspectorConfig holds configuration for the chain inspector server.
type InspectorConfig struct {
	Endpoints  map[string]string
	RPCTimeout time.Duration
	LogLevel   string
}

// AggregatorConfig holds configuration for the market aggregator server.
type AggregatorConfig struct {
	Endpoints    map[string]string
	LlamaURL     string
	CoingeckoURL string
	HTTPTimeout  time.Duration
	TVLCacheTTL  time.Duration
	PriceTTL     time.Duration
	LogLevel     string
}

// LoadInspector merges config file, environment variables, and flags.
func LoadInspector(cfgFile string, flags *pflag.FlagSet) (InspectorConfig, error) {
	v, err := newViper(cfgFile, flags)
	if err != nil {
		return InspectorConfig{}, err
	}

	v.SetDefault("rpc-timeout", 30*time.Second)

	return InspectorConfig{
		Endpoints:  endpoints(v),
		RPCTimeout: v.GetDuration("rpc-timeout"),
		LogLevel:   v.GetString("log-level"),
	}, nil
}

// LoadAggregator merges config file, environment variables, and flags.
func LoadAggregator(cfgFile string, flags *pflag.FlagSet) (AggregatorConfig, error) {
	v, err := newViper(cfgFile, flags)
	if err != nil {
		return AggregatorConfig{}, err
	}

	v.SetDefault("llama-url", "https://api.llama.fi")
	v.SetDefault("coingecko-url", "https://api.coingecko.com/api/v3")
	v.SetDefault("http-timeout", 30*time.Second)
	v.SetDefault("tvl-cache-ttl", time.Hour)
	v.SetDefault("price-cache-ttl", 5*time.Minute)

	return AggregatorConfig{
		Endpoints:    endpoints(v),
		LlamaURL:     strings.TrimSuffix(v.GetString("llama-url"), "/"),
		CoingeckoURL: strings.TrimSuffix(v.GetString("coingecko-url"), "/"),
		HTTPTimeout:  v.GetDuration("http-timeout"),
		TVLCacheTTL:  v.GetDuration("tvl-cache-ttl"),
		PriceTTL:     v.GetDuration("price-cache-ttl"),
		LogLevel:     v.GetString("log-level"),
	}, nil
}

func newViper(cfgFile string, flags *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix("CHAINSCOPE")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("log-level", "info")
	for name, url := range chain.DefaultEndpoints {
		v.SetDefault("rpc-"+name, url)
	}

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("bind flags: %w", err)
		}
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	return v, nil
}

func endpoints(v *viper.Viper) map[string]string {
	out := make(map[string]string, len(chain.DefaultEndpoints))
	for _, name := range chain.Names() {
		out[name] = v.GetString("rpc-" + name)
	}
	return out
}
