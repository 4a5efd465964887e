package aggregator

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"chainscope/internal/model"
)

// NewServer wires the aggregator operations into an MCP stdio server.
func NewServer(agg *Aggregator) *server.MCPServer {
	s := server.NewMCPServer("web3-aggregator", "1.0.0", server.WithToolCapabilities(false))
	s.AddTool(toolFetchTVL, agg.handleFetchTVL)
	s.AddTool(toolGetProtocolData, agg.handleGetProtocolData)
	s.AddTool(toolQueryBlockchain, agg.handleQueryBlockchain)
	s.AddTool(toolGetTokenPrice, agg.handleGetTokenPrice)
	return s
}

func (a *Aggregator) handleFetchTVL(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	protocol := req.GetString("protocol", "all")
	return jsonResult(a.FetchTVL(ctx, protocol)), nil
}

func (a *Aggregator) handleGetProtocolData(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	protocolName, err := req.RequireString("protocol_name")
	if err != nil {
		return jsonResult(model.ErrorResult{Error: "protocol_name required"}), nil
	}
	return jsonResult(a.ProtocolData(ctx, protocolName)), nil
}

func (a *Aggregator) handleQueryBlockchain(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	chainName := req.GetString("chain", DefaultChain)
	method := req.GetString("method", DefaultMethod)
	return jsonResult(a.QueryBlockchain(ctx, chainName, method)), nil
}

func (a *Aggregator) handleGetTokenPrice(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	tokenID := req.GetString("token_id", DefaultToken)
	return jsonResult(a.TokenPrice(ctx, tokenID)), nil
}

// jsonResult renders any payload as a pretty-printed JSON text result.
func jsonResult(payload interface{}) *mcp.CallToolResult {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return mcp.NewToolResultText(fmt.Sprintf(`{"error": %q}`, err.Error()))
	}
	return mcp.NewToolResultText(string(data))
}
