package inspector

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"

	"chainscope/internal/model"
)

// MonitorEvents fetches recent logs for a contract matching one of the
// known event signatures and decodes them.
func (ins *Inspector) MonitorEvents(ctx context.Context, chainName, contractAddress, eventName string, fromBlock *uint64) interface{} {
	reader, ok := ins.reader(chainName)
	if !ok {
		return model.ErrorResult{Error: fmt.Sprintf("Unsupported chain: %s", chainName)}
	}
	if !common.IsHexAddress(contractAddress) {
		return model.ErrorResult{Error: fmt.Sprintf("Invalid contract address: %s", contractAddress)}
	}
	event, ok := supportedEvent(eventName)
	if !ok {
		return model.ErrorResult{Error: fmt.Sprintf("Unknown event: %s", eventName)}
	}
	contract := common.HexToAddress(contractAddress)

	callCtx, cancel := ins.callContext(ctx)
	defer cancel()

	head, err := reader.BlockNumber(callCtx)
	if err != nil {
		return model.ErrorResult{Error: err.Error(), Chain: chainName}
	}

	from := uint64(0)
	if head > defaultLookback {
		from = head - defaultLookback
	}
	if fromBlock != nil {
		from = *fromBlock
	}

	logs, err := reader.FilterLogs(callCtx, from, head, []common.Address{contract}, []common.Hash{event.ID})
	if err != nil {
		return model.ErrorResult{Error: err.Error(), Chain: chainName}
	}

	// The count reflects every matching log; the listing keeps only the
	// most recent maxEvents of them.
	matched := len(logs)
	if len(logs) > maxEvents {
		logs = logs[len(logs)-maxEvents:]
	}

	entries := make([]model.EventEntry, 0, len(logs))
	fetchedAt := nowStamp()
	for _, lg := range logs {
		args, err := decodeEventArgs(event, lg)
		if err != nil {
			ins.logger.Warn("event decode failed",
				zap.String("chain", chainName),
				zap.String("tx", lg.TxHash.Hex()),
				zap.Error(err),
			)
			continue
		}
		entries = append(entries, model.EventEntry{
			BlockNumber:     lg.BlockNumber,
			TransactionHash: lg.TxHash.Hex(),
			Args:            args,
			Timestamp:       fetchedAt,
		})
	}

	return model.EventResult{
		Chain:       chainName,
		Contract:    contract.Hex(),
		EventName:   eventName,
		FromBlock:   from,
		ToBlock:     head,
		EventsCount: matched,
		Events:      entries,
	}
}

func decodeEventArgs(event abi.Event, lg types.Log) (map[string]interface{}, error) {
	indexed := indexedArguments(event.Inputs)
	if len(lg.Topics) != len(indexed)+1 {
		return nil, fmt.Errorf("expected %d topics, got %d", len(indexed)+1, len(lg.Topics))
	}

	args := make(map[string]interface{})
	if err := abi.ParseTopicsIntoMap(args, indexed, lg.Topics[1:]); err != nil {
		return nil, fmt.Errorf("parse topics: %w", err)
	}
	values, err := event.Inputs.NonIndexed().Unpack(lg.Data)
	if err != nil {
		return nil, fmt.Errorf("unpack %s: %w", event.Name, err)
	}
	for i, arg := range event.Inputs.NonIndexed() {
		args[arg.Name] = values[i]
	}

	for name, value := range args {
		args[name] = displayValue(value)
	}
	return args, nil
}

func indexedArguments(args abi.Arguments) abi.Arguments {
	indexed := make(abi.Arguments, 0, len(args))
	for _, arg := range args {
		if arg.Indexed {
			indexed = append(indexed, arg)
		}
	}
	return indexed
}

func displayValue(value interface{}) interface{} {
	switch v := value.(type) {
	case common.Address:
		return v.Hex()
	case *big.Int:
		return v.String()
	default:
		return v
	}
}
