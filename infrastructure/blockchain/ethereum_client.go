// Package blockchain provides the chain-facing infrastructure: the Ethereum
// client wrapper used to observe block heights, and the randomness sources
// that derive draws from chain data.
package blockchain

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"

	"lotto-engine/domain/errors"
	"lotto-engine/domain/interfaces"
)

// ethereumClient implements the ChainReader interface.
type ethereumClient struct {
	client  *ethclient.Client
	chainID int64
}

// NewEthereumClient creates a new Ethereum chain reader and verifies that
// the endpoint serves the expected chain.
func NewEthereumClient(rpcURL string, chainID int64) (interfaces.ChainReader, error) {
	client, err := ethclient.Dial(rpcURL)
	if err != nil {
		return nil, &errors.ChainError{
			Operation: "Dial",
			ChainID:   chainID,
			Err:       err,
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	networkID, err := client.ChainID(ctx)
	if err != nil {
		client.Close()
		return nil, &errors.ChainError{
			Operation: "ChainID",
			ChainID:   chainID,
			Err:       err,
		}
	}

	if networkID.Int64() != chainID {
		client.Close()
		return nil, &errors.ChainError{
			Operation: "ChainID",
			ChainID:   chainID,
			Err:       fmt.Errorf("chain ID mismatch: expected %d, got %d", chainID, networkID.Int64()),
		}
	}

	return &ethereumClient{
		client:  client,
		chainID: chainID,
	}, nil
}

// BlockHeight returns the current block height.
func (c *ethereumClient) BlockHeight(ctx context.Context) (uint64, error) {
	height, err := c.client.BlockNumber(ctx)
	if err != nil {
		return 0, &errors.ChainError{
			Operation: "BlockHeight",
			ChainID:   c.chainID,
			Err:       err,
		}
	}
	return height, nil
}

// BlockHash returns the hash of the block at the given height. The block
// must already exist; a draw never waits for the chain.
func (c *ethereumClient) BlockHash(ctx context.Context, height uint64) (common.Hash, error) {
	header, err := c.client.HeaderByNumber(ctx, new(big.Int).SetUint64(height))
	if err != nil {
		return common.Hash{}, &errors.ChainError{
			Operation:   "BlockHash",
			ChainID:     c.chainID,
			BlockNumber: height,
			Err:         err,
		}
	}
	return header.Hash(), nil
}

// Close closes the chain connection.
func (c *ethereumClient) Close() error {
	c.client.Close()
	return nil
}
