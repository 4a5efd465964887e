package model

// ProtocolData is the reshaped DeFiLlama protocol payload. Field types
// mirror whatever the aggregator returns; absent fields marshal as null.
type ProtocolData struct {
	Name      interface{} `json:"name"`
	Symbol    interface{} `json:"symbol"`
	TVL       interface{} `json:"tvl"`
	ChainTVLs interface{} `json:"chainTvls"`
	Change1h  interface{} `json:"change_1h"`
	Change1d  interface{} `json:"change_1d"`
	Change7d  interface{} `json:"change_7d"`
	Mcap      interface{} `json:"mcap"`
}

// TokenPrice is the get_token_price success payload. Pointer fields stay
// null when the price aggregator does not know the token.
type TokenPrice struct {
	Token     string   `json:"token"`
	PriceUSD  *float64 `json:"price_usd"`
	Change24h *float64 `json:"change_24h"`
	MarketCap *float64 `json:"market_cap"`
	Timestamp string   `json:"timestamp"`
}

// RPCResult is the query_blockchain success payload. BlockNumber is only
// populated for eth_blockNumber.
type RPCResult struct {
	Chain       string      `json:"chain"`
	Method      string      `json:"method"`
	Result      interface{} `json:"result"`
	BlockNumber *uint64     `json:"block_number"`
}
