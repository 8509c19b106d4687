// Package commands provides CLI command implementations for the lottery
// settlement engine.
package commands

import (
	"context"
	"fmt"
	"strconv"

	"lotto-engine/application/engine"
	"lotto-engine/domain/entities"
	"lotto-engine/domain/errors"
	"lotto-engine/domain/interfaces"
	"lotto-engine/infrastructure/config"
)

// heightUnset marks the --height flag as not provided. Height zero is a
// legitimate chain height, so the flag cannot default to it.
const heightUnset int64 = -1

// resolveHeight returns the flag override when given, otherwise the current
// chain height.
func resolveHeight(ctx context.Context, container *config.Container, height int64) (uint64, error) {
	if height >= 0 {
		return uint64(height), nil
	}
	if container.ChainReader == nil {
		return 0, fmt.Errorf("no RPC endpoint configured; pass --height")
	}
	h, err := container.ChainReader.BlockHeight(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to read chain height: %w", err)
	}
	return h, nil
}

// resolveCall builds the call context for a mutating engine operation.
func resolveCall(ctx context.Context, container *config.Container, caller string, height int64, value int64) (engine.Call, error) {
	if caller == "" {
		return engine.Call{}, fmt.Errorf("--caller is required")
	}
	h, err := resolveHeight(ctx, container, height)
	if err != nil {
		return engine.Call{}, err
	}
	return engine.Call{
		Caller: entities.AddrFromHex(caller),
		Height: h,
		Value:  value,
	}, nil
}

// inTransaction runs the given writes inside a single transaction.
func inTransaction(container *config.Container, apply func(uow interfaces.UnitOfWork) error) error {
	uow := container.UnitOfWork
	if err := uow.Begin(); err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	if err := apply(uow); err != nil {
		_ = uow.Rollback()
		return fmt.Errorf("failed to persist: %w", err)
	}
	if err := uow.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}

// callFailure wraps an engine error with the numeric result code external
// callers of the historical contract interface observe.
func callFailure(op errors.Op, err error) error {
	return fmt.Errorf("%s failed (code %d): %w", op, errors.WireCode(op, err), err)
}

// parseUint64 parses a string to uint64.
func parseUint64(s string) (uint64, error) {
	return strconv.ParseUint(s, 10, 64)
}

// parseInt64 parses a string to int64.
func parseInt64(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}
