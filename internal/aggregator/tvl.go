package aggregator

import (
	"context"
	"fmt"
	"net/url"

	"go.uber.org/zap"

	"chainscope/internal/model"
)

// FetchTVL returns TVL data from DeFiLlama for a protocol slug, or the
// global figure for "all". Results are cached for the TVL staleness
// window; a cached entry skips the network call entirely.
func (a *Aggregator) FetchTVL(ctx context.Context, protocol string) interface{} {
	key := "tvl:" + protocol
	if cached, ok := a.cache.Get(key); ok {
		return cached
	}

	endpoint := a.cfg.LlamaURL + "/tvl"
	if protocol != "all" {
		endpoint = a.cfg.LlamaURL + "/protocol/" + url.PathEscape(protocol)
	}

	var payload interface{}
	status, err := a.getJSON(ctx, endpoint, &payload)
	if err != nil {
		return model.ErrorResult{Error: err.Error(), Protocol: protocol}
	}
	if status != 200 {
		return model.ErrorResult{Error: fmt.Sprintf("HTTP %d", status), Protocol: protocol}
	}

	a.cache.Set(key, payload, a.cfg.TVLTTL)
	a.logger.Debug("fetched tvl", zap.String("protocol", protocol))
	return payload
}

// ProtocolData fetches protocol metadata and reshapes it to a fixed
// field set. No caching here, unlike FetchTVL.
func (a *Aggregator) ProtocolData(ctx context.Context, protocolName string) interface{} {
	endpoint := a.cfg.LlamaURL + "/protocol/" + url.PathEscape(protocolName)

	var payload map[string]interface{}
	status, err := a.getJSON(ctx, endpoint, &payload)
	if err != nil {
		return model.ErrorResult{Error: err.Error()}
	}
	if status != 200 {
		return model.ErrorResult{Error: fmt.Sprintf("Protocol %s not found", protocolName)}
	}

	chainTVLs := payload["chainTvls"]
	if chainTVLs == nil {
		chainTVLs = map[string]interface{}{}
	}

	return model.ProtocolData{
		Name:      payload["name"],
		Symbol:    payload["symbol"],
		TVL:       payload["tvl"],
		ChainTVLs: chainTVLs,
		Change1h:  payload["change_1h"],
		Change1d:  payload["change_1d"],
		Change7d:  payload["change_7d"],
		Mcap:      payload["mcap"],
	}
}
