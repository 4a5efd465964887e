package aggregator

import (
	"context"
	"fmt"
	"net/url"

	"go.uber.org/zap"

	"chainscope/internal/model"
)

// TokenPrice fetches spot price, 24h change, and market cap for a token
// id, cached for the price staleness window. Unknown token ids are
// passed through as null fields, not an error.
func (a *Aggregator) TokenPrice(ctx context.Context, tokenID string) interface{} {
	key := "price:" + tokenID
	if cached, ok := a.cache.Get(key); ok {
		return cached
	}

	query := url.Values{}
	query.Set("ids", tokenID)
	query.Set("vs_currencies", "usd")
	query.Set("include_24hr_change", "true")
	query.Set("include_market_cap", "true")
	endpoint := a.cfg.CoingeckoURL + "/simple/price?" + query.Encode()

	var payload map[string]map[string]float64
	status, err := a.getJSON(ctx, endpoint, &payload)
	if err != nil {
		return model.ErrorResult{Error: err.Error()}
	}
	if status != 200 {
		return model.ErrorResult{Error: fmt.Sprintf("CoinGecko API error: %d", status)}
	}

	entry := payload[tokenID]
	result := model.TokenPrice{
		Token:     tokenID,
		PriceUSD:  lookupFloat(entry, "usd"),
		Change24h: lookupFloat(entry, "usd_24h_change"),
		MarketCap: lookupFloat(entry, "usd_market_cap"),
		Timestamp: nowStamp(),
	}

	a.cache.Set(key, result, a.cfg.PriceTTL)
	a.logger.Debug("fetched price", zap.String("token", tokenID))
	return result
}

func lookupFloat(entry map[string]float64, key string) *float64 {
	if entry == nil {
		return nil
	}
	value, ok := entry[key]
	if !ok {
		return nil
	}
	return &value
}
