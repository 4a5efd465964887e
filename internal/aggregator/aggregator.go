// Package aggregator implements the Market Aggregator tool server:
// DeFi TVL and protocol metrics, token spot prices, and a raw JSON-RPC
// passthrough to the configured chain endpoints.
package aggregator

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

const (
	// DefaultChain is the chain used when the caller does not pick one.
	DefaultChain = "polygon-zkevm"

	// DefaultMethod is the RPC method used when none is given.
	DefaultMethod = "eth_blockNumber"

	// DefaultToken is the price lookup used when none is given.
	DefaultToken = "ethereum"

	defaultTimeout  = 30 * time.Second
	defaultTVLTTL   = time.Hour
	defaultPriceTTL = 5 * time.Minute

	userAgent = "chainscope/1.0"
)

// Config holds the aggregator's upstream endpoints and staleness windows.
type Config struct {
	LlamaURL     string
	CoingeckoURL string
	Endpoints    map[string]string
	Timeout      time.Duration
	TVLTTL       time.Duration
	PriceTTL     time.Duration
}

// Aggregator owns one pooled HTTP client and one TTL cache for the
// process lifetime. All operations return a JSON-marshalable payload;
// failures become error payloads and never propagate as Go errors.
type Aggregator struct {
	cfg        Config
	httpClient *http.Client
	cache      *gocache.Cache
	logger     *zap.Logger
}

// New builds an Aggregator from config.
func New(cfg Config, logger *zap.Logger) *Aggregator {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.TVLTTL <= 0 {
		cfg.TVLTTL = defaultTVLTTL
	}
	if cfg.PriceTTL <= 0 {
		cfg.PriceTTL = defaultPriceTTL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Aggregator{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		cache:      gocache.New(gocache.NoExpiration, 10*time.Minute),
		logger:     logger,
	}
}

// Close releases idle upstream connections.
func (a *Aggregator) Close() {
	a.httpClient.CloseIdleConnections()
}

// getJSON issues a GET and decodes the body into out on 2xx. The status
// code is returned for non-2xx responses with a nil error.
func (a *Aggregator) getJSON(ctx context.Context, url string, out interface{}) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return resp.StatusCode, nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return resp.StatusCode, fmt.Errorf("decode response: %w", err)
	}
	return resp.StatusCode, nil
}

func nowStamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}
