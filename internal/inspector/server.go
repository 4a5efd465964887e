package inspector

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"chainscope/internal/model"
)

// NewServer wires the inspector operations into an MCP stdio server.
func NewServer(ins *Inspector) *server.MCPServer {
	s := server.NewMCPServer("chain-inspector", "1.0.0", server.WithToolCapabilities(false))
	s.AddTool(toolMonitorEvents, ins.handleMonitorEvents)
	s.AddTool(toolCheckVulnerabilities, ins.handleCheckVulnerabilities)
	s.AddTool(toolTrackTransactions, ins.handleTrackTransactions)
	return s
}

func (ins *Inspector) handleMonitorEvents(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	contract, err := req.RequireString("contract_address")
	if err != nil {
		return jsonResult(model.ErrorResult{Error: "contract_address is required"}), nil
	}
	chainName := req.GetString("chain", DefaultChain)
	eventName := req.GetString("event_name", "Transfer")

	var fromBlock *uint64
	if v := req.GetInt("from_block", -1); v >= 0 {
		from := uint64(v)
		fromBlock = &from
	}

	return jsonResult(ins.MonitorEvents(ctx, chainName, contract, eventName, fromBlock)), nil
}

func (ins *Inspector) handleCheckVulnerabilities(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	contract, err := req.RequireString("contract_address")
	if err != nil {
		return jsonResult(model.ErrorResult{Error: "contract_address is required"}), nil
	}
	chainName := req.GetString("chain", DefaultChain)

	return jsonResult(ins.CheckVulnerabilities(ctx, chainName, contract)), nil
}

func (ins *Inspector) handleTrackTransactions(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	address, err := req.RequireString("address")
	if err != nil {
		return jsonResult(model.ErrorResult{Error: "address is required"}), nil
	}
	chainName := req.GetString("chain", DefaultChain)
	txCount := req.GetInt("tx_count", 10)

	return jsonResult(ins.TrackTransactions(ctx, chainName, address, txCount)), nil
}

// jsonResult renders any payload as a pretty-printed JSON text result.
func jsonResult(payload interface{}) *mcp.CallToolResult {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return mcp.NewToolResultText(fmt.Sprintf(`{"error": %q}`, err.Error()))
	}
	return mcp.NewToolResultText(string(data))
}
