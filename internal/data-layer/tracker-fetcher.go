package data_layer

import (
	"context"
	"fmt"

	"icon-active-addresses/internal/model"
)

type TrackerFetcher interface {
	// BlockByTimestamp returns the block height the tracker matches to a Unix timestamp in seconds.
	BlockByTimestamp(ctx context.Context, timestamp int64) (int64, error)
	// GetTransactions returns one page of transactions in the block range. Non-2xx statuses are
	// reported through the page's StatusCode, not as an error.
	GetTransactions(ctx context.Context, br model.BlockRange, limit, skip int64) (*model.TransactionPage, error)
}

// StatusError is an unexpected HTTP status from the tracker.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("tracker returned status %d", e.Code)
	}
	return fmt.Sprintf("tracker returned status %d: %s", e.Code, e.Body)
}
