package main

import (
	"context"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/log"
	"github.com/ethereum/go-ethereum/rpc"
)

const (
	rpcDialRetryDelay = 1 * time.Second
)

// RpcConnector dials the node, retrying while it is not up yet
type RpcConnector struct {
	rpcUrl     string
	maxAttempt int
}

// SetMaxAttempt set maximum number of attempt to dial rpc node
// provide a number less than or equal 0 to repeat dialing until successful
func (c *RpcConnector) SetMaxAttempt(max int) {
	c.maxAttempt = max
}

// Connect repeats dialing the rpc node until max attempt has been reached
func (c *RpcConnector) Connect(ctx context.Context) (*ethclient.Client, error) {
	var attempt int
	for {
		attempt += 1
		log.Debug("Dialing RPC node...", "rpcUrl", c.rpcUrl, "attempt", attempt)
		client, err := rpc.DialContext(ctx, c.rpcUrl)
		if err == nil {
			// http dials lazily, make sure the node answers
			ethClient := ethclient.NewClient(client)
			if _, err = ethClient.BlockNumber(ctx); err == nil {
				return ethClient, nil
			}
			client.Close()
		}
		if c.maxAttempt > 0 && attempt >= c.maxAttempt {
			return nil, err
		}
		log.Warn("Could not reach RPC node, retrying", "rpcUrl", c.rpcUrl, "attempt", attempt, "err", err)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(rpcDialRetryDelay):
		}
	}
}

func NewRpcConnector(rpcUrl string) *RpcConnector {
	return &RpcConnector{rpcUrl: rpcUrl}
}

// chainID returns the configured chain id, or the node's when none is configured
func chainID(ctx context.Context, client *ethclient.Client, configured uint64) (*big.Int, error) {
	if configured != 0 {
		return new(big.Int).SetUint64(configured), nil
	}
	return client.ChainID(ctx)
}
