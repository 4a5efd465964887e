package aggregator

import "github.com/mark3labs/mcp-go/mcp"

// Tool definitions for the Market Aggregator server.

var toolFetchTVL = mcp.NewTool("fetch_tvl",
	mcp.WithDescription(
		"Fetch Total Value Locked (TVL) data from DeFiLlama. "+
			"Use 'all' for global TVL or specify a protocol name."),
	mcp.WithString("protocol",
		mcp.Description("Protocol name (e.g., 'aave', 'uniswap') or 'all' for global TVL"),
		mcp.DefaultString("all")),
)

var toolGetProtocolData = mcp.NewTool("get_protocol_data",
	mcp.WithDescription(
		"Get detailed data for a specific DeFi protocol including TVL "+
			"breakdown by chain, price changes, and market cap."),
	mcp.WithString("protocol_name",
		mcp.Required(),
		mcp.Description("Protocol slug (e.g., 'aave', 'curve', 'uniswap')")),
)

var toolQueryBlockchain = mcp.NewTool("query_blockchain",
	mcp.WithDescription(
		"Query blockchain RPC endpoints for real-time data (block number, "+
			"gas price, etc.). Supports Polygon zkEVM, Scroll, zkSync."),
	mcp.WithString("chain",
		mcp.Description("Blockchain network to query"),
		mcp.Enum("polygon-zkevm", "scroll", "zksync"),
		mcp.DefaultString(DefaultChain)),
	mcp.WithString("method",
		mcp.Description("RPC method (e.g., 'eth_blockNumber', 'eth_gasPrice')"),
		mcp.DefaultString(DefaultMethod)),
)

var toolGetTokenPrice = mcp.NewTool("get_token_price",
	mcp.WithDescription(
		"Get current token price and 24h change from CoinGecko. "+
			"Returns USD price, market cap, and price change."),
	mcp.WithString("token_id",
		mcp.Description("CoinGecko token ID (e.g., 'ethereum', 'bitcoin', 'polygon-zkevm')"),
		mcp.DefaultString(DefaultToken)),
)
