package collectible

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// EventsForTransaction scans the whole contract history for eventName logs and
// keeps those emitted by txHash, in log order.
func (c *Client) EventsForTransaction(ctx context.Context, txHash common.Hash, eventName string) ([]*Event, error) {
	event, ok := c.abi.Events[eventName]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownEvent, eventName)
	}
	logs, err := c.history(ctx, [][]common.Hash{{event.ID}})
	if err != nil {
		return nil, err
	}
	result := make([]*Event, 0)
	for _, lg := range logs {
		if lg.TxHash != txHash {
			continue
		}
		// the topic already identifies the event, a layout mismatch only loses the fields
		ev, err := c.decodeLog(lg)
		if err != nil {
			c.log.Warn("Could not decode event, keeping it without fields", "event", eventName, "tx", txHash.Hex(), "err", err)
			ev = &Event{
				Name:        event.Name,
				TxHash:      lg.TxHash,
				BlockNumber: lg.BlockNumber,
				LogIndex:    lg.Index,
				Fields:      make(map[string]interface{}),
			}
		}
		result = append(result, ev)
	}
	return result, nil
}

// LastEvent returns the most recent event the ABI can decode, nil if there is none
func (c *Client) LastEvent(ctx context.Context) (*Event, error) {
	logs, err := c.history(ctx, nil)
	if err != nil {
		return nil, err
	}
	for i := len(logs) - 1; i >= 0; i-- {
		if ev, err := c.decodeLog(logs[i]); err == nil {
			return ev, nil
		}
	}
	return nil, nil
}

func (c *Client) history(ctx context.Context, topics [][]common.Hash) ([]types.Log, error) {
	head, err := c.backend.HeaderByNumber(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("could not get head block: %w", err)
	}
	query := ethereum.FilterQuery{
		FromBlock: big.NewInt(0),
		ToBlock:   head.Number,
		Addresses: []common.Address{c.address},
		Topics:    topics,
	}
	logs, err := c.backend.FilterLogs(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("could not filter logs: %w", err)
	}
	return logs, nil
}

func (c *Client) decodeLog(lg types.Log) (*Event, error) {
	if len(lg.Topics) == 0 {
		return nil, fmt.Errorf("%w: anonymous log", ErrUnknownEvent)
	}
	event, err := c.abi.EventByID(lg.Topics[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnknownEvent, err)
	}
	fields := make(map[string]interface{})
	if len(lg.Data) > 0 {
		if err := event.Inputs.NonIndexed().UnpackIntoMap(fields, lg.Data); err != nil {
			return nil, fmt.Errorf("could not unpack %s: %w", event.Name, err)
		}
	}
	var indexed abi.Arguments
	for _, arg := range event.Inputs {
		if arg.Indexed {
			indexed = append(indexed, arg)
		}
	}
	if err := abi.ParseTopicsIntoMap(fields, indexed, lg.Topics[1:]); err != nil {
		return nil, fmt.Errorf("could not parse %s topics: %w", event.Name, err)
	}
	return &Event{
		Name:        event.Name,
		TxHash:      lg.TxHash,
		BlockNumber: lg.BlockNumber,
		LogIndex:    lg.Index,
		Fields:      fields,
	}, nil
}
