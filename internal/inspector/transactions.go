package inspector

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"

	"chainscope/internal/chain"
	"chainscope/internal/model"
)

// TrackTransactions returns balance, nonce, and up to txCount recent
// transactions touching the address, scanning at most maxScanBlocks
// blocks backward from head. Transactions further back are not found.
func (ins *Inspector) TrackTransactions(ctx context.Context, chainName, address string, txCount int) interface{} {
	reader, ok := ins.reader(chainName)
	if !ok {
		return model.ErrorResult{Error: fmt.Sprintf("Unsupported chain: %s", chainName)}
	}
	if !common.IsHexAddress(address) {
		return model.ErrorResult{Error: fmt.Sprintf("Invalid address: %s", address)}
	}
	if txCount <= 0 {
		txCount = 10
	}
	account := common.HexToAddress(address)

	callCtx, cancel := ins.callContext(ctx)
	defer cancel()

	nonce, err := reader.NonceAt(callCtx, account)
	if err != nil {
		return model.ErrorResult{Error: err.Error(), Chain: chainName}
	}
	balance, err := reader.BalanceAt(callCtx, account)
	if err != nil {
		return model.ErrorResult{Error: err.Error(), Chain: chainName}
	}
	head, err := reader.BlockNumber(callCtx)
	if err != nil {
		return model.ErrorResult{Error: err.Error(), Chain: chainName}
	}
	chainID, err := reader.ChainID(callCtx)
	if err != nil {
		return model.ErrorResult{Error: err.Error(), Chain: chainName}
	}
	signer := types.LatestSignerForChainID(chainID)

	lowest := uint64(0)
	if head > maxScanBlocks {
		lowest = head - maxScanBlocks
	}

	transactions := make([]model.TransactionRecord, 0, txCount)
scan:
	for number := head; number > lowest; number-- {
		block, err := reader.BlockByNumber(callCtx, new(big.Int).SetUint64(number))
		if err != nil {
			return model.ErrorResult{Error: err.Error(), Chain: chainName}
		}
		for _, tx := range block.Transactions() {
			record, ok := ins.matchTransaction(signer, tx, account, number)
			if !ok {
				continue
			}
			transactions = append(transactions, record)
			if len(transactions) >= txCount {
				break scan
			}
		}
	}

	return model.TrackResult{
		Chain:              chainName,
		Address:            account.Hex(),
		BalanceEth:         chain.WeiToEther(balance),
		TransactionCount:   nonce,
		RecentTransactions: transactions,
		Timestamp:          nowStamp(),
	}
}

func (ins *Inspector) matchTransaction(signer types.Signer, tx *types.Transaction, account common.Address, blockNumber uint64) (model.TransactionRecord, bool) {
	from, err := types.Sender(signer, tx)
	if err != nil {
		ins.logger.Warn("sender recovery failed", zap.String("tx", tx.Hash().Hex()), zap.Error(err))
		return model.TransactionRecord{}, false
	}

	to := ""
	if tx.To() != nil {
		to = tx.To().Hex()
	}
	if from != account && to != account.Hex() {
		return model.TransactionRecord{}, false
	}

	direction := model.DirectionReceived
	if from == account {
		direction = model.DirectionSent
	}

	return model.TransactionRecord{
		Hash:     tx.Hash().Hex(),
		From:     from.Hex(),
		To:       to,
		Value:    chain.WeiToEther(tx.Value()),
		Block:    blockNumber,
		GasPrice: chain.WeiToGwei(tx.GasPrice()),
		Type:     direction,
	}, true
}
