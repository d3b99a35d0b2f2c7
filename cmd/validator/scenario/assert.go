package scenario

import (
	"context"
	"math/big"
	"reflect"

	"github.com/ethereum/go-ethereum/common"
	"github.com/verichains/collectible-validator/cmd/validator/collectible"
)

// valuesEqual compares scalars by value and token id sequences element by element,
// order and length included.
func valuesEqual(actual, expected interface{}) bool {
	switch want := expected.(type) {
	case *big.Int:
		got, ok := actual.(*big.Int)
		return ok && got != nil && want != nil && got.Cmp(want) == 0
	case []*big.Int:
		got, ok := actual.([]*big.Int)
		if !ok || len(got) != len(want) {
			return false
		}
		for i := range want {
			if got[i] == nil || got[i].Cmp(want[i]) != 0 {
				return false
			}
		}
		return true
	case common.Address:
		got, ok := actual.(common.Address)
		return ok && got == want
	}
	return reflect.DeepEqual(actual, expected)
}

func assertEqual(actual, expected interface{}, message string) error {
	if !valuesEqual(actual, expected) {
		return failf(message, "Expected Value: %v\nActual Value: %v", expected, actual)
	}
	return nil
}

// expect reads a value and asserts it equals expected. Read errors are returned as is.
func expect(expected interface{}, message string, read func() (interface{}, error)) error {
	actual, err := read()
	if err != nil {
		return err
	}
	return assertEqual(actual, expected, message)
}

func assertRejected(outcome collectible.Outcome, expectedReason, message string) error {
	switch o := outcome.(type) {
	case *collectible.Accepted:
		return failf(message, "Transaction accepted: %s\nGas Used: %d", o.TxHash.Hex(), o.GasUsed)
	case *collectible.Rejected:
		if !SameReason(o.Reason, expectedReason) {
			return failf(message, "Expected Reason: %s\nActual Reason: %s", expectedReason, o.Reason)
		}
		return nil
	}
	return failf(message, "Unexpected outcome: %v", outcome)
}

func assertAccepted(outcome collectible.Outcome, message string) (*collectible.Accepted, error) {
	switch o := outcome.(type) {
	case *collectible.Accepted:
		return o, nil
	case *collectible.Rejected:
		return nil, &AssertionError{Message: message, Detail: o.Reason}
	}
	return nil, failf(message, "Unexpected outcome: %v", outcome)
}

func assertEventEmitted(ctx context.Context, client collectible.ContractClient, txHash common.Hash, eventName, message string) error {
	events, err := client.EventsForTransaction(ctx, txHash, eventName)
	if err != nil {
		return err
	}
	if len(events) == 0 {
		return failf(message, "Transaction: %s\nEvent: %s", txHash.Hex(), eventName)
	}
	return nil
}

// tokenRange returns the ids start, start+1, ..., start+count-1
func tokenRange(start, count uint64) []*big.Int {
	ids := make([]*big.Int, count)
	for i := range ids {
		ids[i] = new(big.Int).SetUint64(start + uint64(i))
	}
	return ids
}
