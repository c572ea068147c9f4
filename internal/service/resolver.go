package service

import (
	"context"
	"fmt"
	"log"

	data_layer "icon-active-addresses/internal/data-layer"
	"icon-active-addresses/internal/model"
)

// Resolver maps timestamps to block heights. Failures are not retried.
type Resolver struct {
	Fetcher data_layer.TrackerFetcher
	Metrics *Metrics
	Logger  *log.Logger
}

func (r *Resolver) ResolveBlock(ctx context.Context, timestamp int64) (int64, error) {
	height, err := r.Fetcher.BlockByTimestamp(ctx, timestamp)
	if err != nil {
		return 0, fmt.Errorf("resolve block for %d: %w", timestamp, err)
	}
	r.Metrics.blockResolved()
	return height, nil
}

func (r *Resolver) ResolveBlockRange(ctx context.Context, tr model.TimeRange) (model.BlockRange, error) {
	from, err := r.ResolveBlock(ctx, tr.Start)
	if err != nil {
		return model.BlockRange{}, err
	}
	to, err := r.ResolveBlock(ctx, tr.End)
	if err != nil {
		return model.BlockRange{}, err
	}
	if to < from {
		logger(r.Logger).Printf("[Resolver] warning: end block %d precedes start block %d", to, from)
	}
	return model.BlockRange{From: from, To: to}, nil
}

func logger(l *log.Logger) *log.Logger {
	if l == nil {
		return log.Default()
	}
	return l
}
