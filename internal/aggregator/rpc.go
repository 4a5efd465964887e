package aggregator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"chainscope/internal/model"
)

// rpcRequest is the fixed JSON-RPC 2.0 envelope the passthrough sends:
// empty params, id 1.
type rpcRequest struct {
	JSONRPC string        `json:"jsonrpc"`
	Method  string        `json:"method"`
	Params  []interface{} `json:"params"`
	ID      int           `json:"id"`
}

type rpcResponse struct {
	Result interface{} `json:"result"`
}

// QueryBlockchain forwards an RPC method call with empty parameters to
// the endpoint registered for the chain. For eth_blockNumber the hex
// result is additionally parsed into a decimal block number.
func (a *Aggregator) QueryBlockchain(ctx context.Context, chainName, method string) interface{} {
	endpoint, ok := a.cfg.Endpoints[chainName]
	if !ok {
		// Mirrors the registry fallback: unknown chains go to the default.
		endpoint = a.cfg.Endpoints[DefaultChain]
	}
	if endpoint == "" {
		return model.ErrorResult{Error: fmt.Sprintf("no endpoint for chain %s", chainName), Chain: chainName}
	}

	body, err := json.Marshal(rpcRequest{
		JSONRPC: "2.0",
		Method:  method,
		Params:  []interface{}{},
		ID:      1,
	})
	if err != nil {
		return model.ErrorResult{Error: err.Error(), Chain: chainName}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return model.ErrorResult{Error: err.Error(), Chain: chainName}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return model.ErrorResult{Error: err.Error(), Chain: chainName}
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		return model.ErrorResult{Error: fmt.Sprintf("RPC call failed: %d", resp.StatusCode)}
	}

	var decoded rpcResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return model.ErrorResult{Error: err.Error(), Chain: chainName}
	}

	result := model.RPCResult{
		Chain:  chainName,
		Method: method,
		Result: decoded.Result,
	}
	if method == "eth_blockNumber" {
		blockNumber, err := parseHexUint(decoded.Result)
		if err != nil {
			return model.ErrorResult{Error: err.Error(), Chain: chainName}
		}
		result.BlockNumber = &blockNumber
	}
	return result
}

func parseHexUint(value interface{}) (uint64, error) {
	// A missing result defaults to block zero.
	if value == nil {
		value = "0x0"
	}
	text, ok := value.(string)
	if !ok {
		return 0, fmt.Errorf("non-string RPC result %v", value)
	}
	parsed, err := strconv.ParseUint(strings.TrimPrefix(text, "0x"), 16, 64)
	if err != nil {
		return 0, fmt.Errorf("parse block number %q: %w", text, err)
	}
	return parsed, nil
}
