package collectible

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/verichains/collectible-validator/cmd/validator/wallet"
)

func (c *Client) Mint(ctx context.Context, count uint64, value *big.Int, sender *wallet.Account) Outcome {
	return c.transact(ctx, sender, value, "mint", new(big.Int).SetUint64(count))
}

func (c *Client) MintTo(ctx context.Context, count uint64, recipient common.Address, value *big.Int, sender *wallet.Account) Outcome {
	return c.transact(ctx, sender, value, "mintTo", new(big.Int).SetUint64(count), recipient)
}

func (c *Client) SetBaseURI(ctx context.Context, baseURI, reason string, sender *wallet.Account) Outcome {
	return c.transact(ctx, sender, nil, "setBaseURI", baseURI, reason)
}

func (c *Client) Pause(ctx context.Context, paused bool, reason string, sender *wallet.Account) Outcome {
	return c.transact(ctx, sender, nil, "pause", paused, reason)
}

func (c *Client) WithdrawAll(ctx context.Context, sender *wallet.Account) Outcome {
	return c.transact(ctx, sender, nil, "withdrawAll")
}

// transact submits one transaction with the fixed gas ceiling, so the node never
// estimates and a reverting call is mined or refused as the contract decides.
func (c *Client) transact(ctx context.Context, sender *wallet.Account, value *big.Int, method string, args ...interface{}) Outcome {
	if sender == nil {
		sender = c.creator
	}
	opts, err := sender.Transactor(c.config.ChainID)
	if err != nil {
		return &Rejected{Reason: err.Error()}
	}
	opts.Context = ctx
	opts.Value = value
	opts.GasLimit = c.config.GasLimit

	tx, err := c.contract.Transact(opts, method, args...)
	if err != nil {
		return &Rejected{Reason: revertReason(err)}
	}
	return c.waitOutcome(ctx, sender.Address, tx)
}

func (c *Client) waitOutcome(ctx context.Context, from common.Address, tx *types.Transaction) Outcome {
	waitCtx, cancel := context.WithTimeout(ctx, c.config.ReceiptTimeout)
	defer cancel()
	receipt, err := bind.WaitMined(waitCtx, c.backend, tx)
	if err != nil {
		return &Rejected{Reason: fmt.Sprintf("could not get receipt of %s: %v", tx.Hash().Hex(), err)}
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return &Rejected{Reason: c.replayReason(ctx, from, tx, receipt)}
	}
	return &Accepted{
		TxHash:      receipt.TxHash,
		GasUsed:     receipt.GasUsed,
		BlockNumber: receipt.BlockNumber.Uint64(),
	}
}

// replayReason re-executes a failed transaction on top of its parent block to
// recover the revert message the receipt does not carry.
func (c *Client) replayReason(ctx context.Context, from common.Address, tx *types.Transaction, receipt *types.Receipt) string {
	msg := ethereum.CallMsg{
		From:  from,
		To:    tx.To(),
		Gas:   tx.Gas(),
		Value: tx.Value(),
		Data:  tx.Data(),
	}
	var parent *big.Int
	if receipt.BlockNumber != nil && receipt.BlockNumber.Sign() > 0 {
		parent = new(big.Int).Sub(receipt.BlockNumber, common.Big1)
	}
	if _, err := c.backend.CallContract(ctx, msg, parent); err != nil {
		return revertReason(err)
	}
	return fmt.Sprintf("%v: %s", ErrReverted, tx.Hash().Hex())
}

// revertReason prefers the decoded Error(string) payload the node attaches to a
// reverted call over the node's own wording of the error.
func revertReason(err error) string {
	var dataErr rpc.DataError
	if errors.As(err, &dataErr) {
		if hexData, ok := dataErr.ErrorData().(string); ok {
			if data, derr := hexutil.Decode(hexData); derr == nil {
				if reason, uerr := abi.UnpackRevert(data); uerr == nil {
					return "execution reverted: " + reason
				}
			}
		}
	}
	return err.Error()
}
