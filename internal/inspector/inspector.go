// Package inspector implements the Chain Inspector tool server: contract
// event monitoring, bytecode risk scanning, and address transaction
// tracking over EVM JSON-RPC endpoints.
package inspector

import (
	"context"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"
)

const (
	// DefaultChain is the chain used when the caller does not pick one.
	DefaultChain = "polygon-zkevm"

	// defaultLookback is how far behind head monitor_events starts when
	// no from_block is given.
	defaultLookback = 1000

	// maxEvents caps how many decoded events a single call returns.
	maxEvents = 50

	// maxScanBlocks bounds the backward scan of track_transactions.
	maxScanBlocks = 100

	// maxContractSize is the deploy size limit (EIP-170); the size
	// warning fires strictly above it.
	maxContractSize = 24576

	// defaultTimeout bounds every outbound RPC round trip.
	defaultTimeout = 30 * time.Second
)

// ChainReader is the read-only RPC surface the inspector needs per chain.
// Implemented by *chain.Client.
type ChainReader interface {
	ChainID(ctx context.Context) (*big.Int, error)
	BlockNumber(ctx context.Context) (uint64, error)
	BlockByNumber(ctx context.Context, number *big.Int) (*types.Block, error)
	CodeAt(ctx context.Context, address common.Address) ([]byte, error)
	BalanceAt(ctx context.Context, address common.Address) (*big.Int, error)
	NonceAt(ctx context.Context, address common.Address) (uint64, error)
	FilterLogs(ctx context.Context, fromBlock, toBlock uint64, addresses []common.Address, topic0 []common.Hash) ([]types.Log, error)
}

// Inspector owns one ChainReader per supported chain. All operations
// return a JSON-marshalable payload; failures become error payloads and
// never propagate as Go errors.
type Inspector struct {
	chains  map[string]ChainReader
	timeout time.Duration
	logger  *zap.Logger
}

// New builds an Inspector over the given chain readers.
func New(chains map[string]ChainReader, logger *zap.Logger) *Inspector {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Inspector{
		chains:  chains,
		timeout: defaultTimeout,
		logger:  logger,
	}
}

// SetTimeout overrides the per-call RPC timeout.
func (ins *Inspector) SetTimeout(timeout time.Duration) {
	if timeout > 0 {
		ins.timeout = timeout
	}
}

func (ins *Inspector) reader(chainName string) (ChainReader, bool) {
	reader, ok := ins.chains[chainName]
	return reader, ok
}

func (ins *Inspector) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, ins.timeout)
}

func nowStamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}
