package inspector

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/trie"
)

// fakeChain implements ChainReader in memory. calls counts every RPC
// round trip so tests can assert that validation happens first.
type fakeChain struct {
	chainID *big.Int
	head    uint64
	code    []byte
	balance *big.Int
	nonce   uint64
	logs    []types.Log
	blocks  map[uint64]*types.Block

	calls       int
	blockCalls  int
	filterFrom  uint64
	filterTo    uint64
	filterTopic []common.Hash
}

func newFakeChain() *fakeChain {
	return &fakeChain{
		chainID: big.NewInt(1101),
		balance: big.NewInt(0),
		blocks:  make(map[uint64]*types.Block),
	}
}

func (f *fakeChain) ChainID(context.Context) (*big.Int, error) {
	f.calls++
	return f.chainID, nil
}

func (f *fakeChain) BlockNumber(context.Context) (uint64, error) {
	f.calls++
	return f.head, nil
}

func (f *fakeChain) BlockByNumber(_ context.Context, number *big.Int) (*types.Block, error) {
	f.calls++
	f.blockCalls++
	if !number.IsUint64() {
		return nil, fmt.Errorf("bad block number %s", number)
	}
	if block, ok := f.blocks[number.Uint64()]; ok {
		return block, nil
	}
	return emptyBlock(number.Uint64()), nil
}

func (f *fakeChain) CodeAt(context.Context, common.Address) ([]byte, error) {
	f.calls++
	return f.code, nil
}

func (f *fakeChain) BalanceAt(context.Context, common.Address) (*big.Int, error) {
	f.calls++
	return f.balance, nil
}

func (f *fakeChain) NonceAt(context.Context, common.Address) (uint64, error) {
	f.calls++
	return f.nonce, nil
}

func (f *fakeChain) FilterLogs(_ context.Context, fromBlock, toBlock uint64, _ []common.Address, topic0 []common.Hash) ([]types.Log, error) {
	f.calls++
	f.filterFrom = fromBlock
	f.filterTo = toBlock
	f.filterTopic = topic0
	return f.logs, nil
}

func emptyBlock(number uint64) *types.Block {
	header := &types.Header{Number: new(big.Int).SetUint64(number)}
	return types.NewBlock(header, nil, nil, nil, trie.NewStackTrie(nil))
}

func blockWithTxs(number uint64, txs []*types.Transaction) *types.Block {
	header := &types.Header{Number: new(big.Int).SetUint64(number)}
	return types.NewBlock(header, txs, nil, nil, trie.NewStackTrie(nil))
}
