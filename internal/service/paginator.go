package service

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"log"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	data_layer "icon-active-addresses/internal/data-layer"
	"icon-active-addresses/internal/model"
)

// ErrInvalidPageSize is yielded by Pages when PageSize is not positive.
var ErrInvalidPageSize = errors.New("page size must be positive")

// Paginator walks the tracker's transaction listing for a block range one page at a time.
type Paginator struct {
	Fetcher     data_layer.TrackerFetcher
	Range       model.BlockRange
	PageSize    int64 // must be positive
	Termination model.TerminationPolicy
	Retry       RetryPolicy
	PageDelay   time.Duration
	Metrics     *Metrics
	Logger      *log.Logger
}

// Pages yields the sender addresses of each page in increasing offset order until the
// termination policy reports the listing exhausted. A fetch error that outlives the retry
// policy, or a cancelled context, is yielded once and ends the sequence. Every call starts
// again from the first page.
func (p *Paginator) Pages(ctx context.Context) iter.Seq2[*model.AddressSet, error] {
	return func(yield func(*model.AddressSet, error) bool) {
		if p.PageSize <= 0 {
			yield(nil, fmt.Errorf("%w: %d", ErrInvalidPageSize, p.PageSize))
			return
		}
		limiter := p.newLimiter()
		for index := int64(0); ; index++ {
			addrs, done, err := p.fetchPage(ctx, limiter, index)
			if err != nil {
				yield(nil, err)
				return
			}
			if done {
				return
			}
			if !yield(addrs, nil) {
				return
			}
		}
	}
}

func (p *Paginator) newLimiter() *rate.Limiter {
	if p.PageDelay <= 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}
	return rate.NewLimiter(rate.Every(p.PageDelay), 1)
}

// fetchPage retries the same page until it succeeds or the retry policy gives up.
func (p *Paginator) fetchPage(ctx context.Context, limiter *rate.Limiter, index int64) (*model.AddressSet, bool, error) {
	skip := p.PageSize * index
	for attempt := 1; ; attempt++ {
		if err := limiter.Wait(ctx); err != nil {
			return nil, false, err
		}

		page, err := p.Fetcher.GetTransactions(ctx, p.Range, p.PageSize, skip)
		if err == nil {
			var done bool
			done, err = p.terminal(page, index)
			if err == nil {
				if done {
					return nil, true, nil
				}
				p.Metrics.pageFetched()
				return ExtractSenders(page.Transactions), false, nil
			}
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, false, ctxErr
		}

		p.Metrics.pageRetried()
		if p.Retry.exhausted(attempt) {
			return nil, false, &RetryError{Page: index, Attempts: attempt, Err: err}
		}
		wait := p.Retry.Backoff(attempt)
		logger(p.Logger).Printf("[Paginator] page %d (skip=%d) attempt %d failed: %v; retrying in %s",
			index, skip, attempt, err, wait)
		if err := sleepCtx(ctx, wait); err != nil {
			return nil, false, err
		}
	}
}

// terminal decides whether a fetched page ends pagination. A non-nil error marks the page
// as failed and subject to retry.
func (p *Paginator) terminal(page *model.TransactionPage, index int64) (bool, error) {
	switch {
	case page.StatusCode == http.StatusNoContent:
		return true, nil
	case page.StatusCode >= 200 && page.StatusCode < 300:
		return len(page.Transactions) == 0, nil
	case p.Termination == model.TerminateOnEmptyPage:
		return false, &data_layer.StatusError{Code: page.StatusCode}
	default:
		logger(p.Logger).Printf("[Paginator] page %d returned status %d, treating as end of data", index, page.StatusCode)
		return true, nil
	}
}
