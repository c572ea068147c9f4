package icon

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	data_layer "icon-active-addresses/internal/data-layer"
	"icon-active-addresses/internal/model"
)

// GenesisTimestamp is the earliest Unix time the tracker can map to a block.
const GenesisTimestamp int64 = 1516819217

// ErrNotAnArray is returned for a transactions body that decodes but is not a JSON array, e.g. null.
var ErrNotAnArray = errors.New("transactions body is not a JSON array")

type TrackerFetcher struct {
	client *resty.Client
}

// NewTrackerFetcher builds a client for the tracker REST API rooted at endpoint.
// A zero timeout leaves requests unbounded.
func NewTrackerFetcher(endpoint string, timeout time.Duration) *TrackerFetcher {
	client := resty.New().
		SetBaseURL(strings.TrimRight(endpoint, "/")).
		SetHeader("Accept", "application/json")
	if timeout > 0 {
		client.SetTimeout(timeout)
	}
	return &TrackerFetcher{client: client}
}

func (t *TrackerFetcher) BlockByTimestamp(ctx context.Context, timestamp int64) (int64, error) {
	var res struct {
		Number *int64 `json:"number"`
	}
	resp, err := t.client.R().
		SetContext(ctx).
		SetPathParam("micros", strconv.FormatInt(timestamp*1_000_000, 10)).
		ForceContentType("application/json").
		SetResult(&res).
		Get("/blocks/timestamp/{micros}/")
	if err != nil {
		return 0, fmt.Errorf("block for timestamp %d: %w", timestamp, err)
	}
	if !resp.IsSuccess() {
		return 0, &data_layer.StatusError{Code: resp.StatusCode(), Body: resp.String()}
	}
	if res.Number == nil {
		return 0, fmt.Errorf("block for timestamp %d: response has no number", timestamp)
	}
	return *res.Number, nil
}

func (t *TrackerFetcher) GetTransactions(ctx context.Context, br model.BlockRange, limit, skip int64) (*model.TransactionPage, error) {
	resp, err := t.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"start_block_number": strconv.FormatInt(br.From, 10),
			"end_block_number":   strconv.FormatInt(br.To, 10),
			"limit":              strconv.FormatInt(limit, 10),
			"skip":               strconv.FormatInt(skip, 10),
		}).
		Get("/transactions")
	if err != nil {
		return nil, err
	}

	// 204 and empty bodies end pagination, so the page body is decoded by hand.
	page := &model.TransactionPage{StatusCode: resp.StatusCode()}
	body := bytes.TrimSpace(resp.Body())
	if !resp.IsSuccess() || len(body) == 0 {
		return page, nil
	}
	var txs []model.Transaction
	if err := json.Unmarshal(body, &txs); err != nil {
		return nil, fmt.Errorf("decode transactions (skip=%d): %w", skip, err)
	}
	if txs == nil {
		return nil, fmt.Errorf("decode transactions (skip=%d): %w", skip, ErrNotAnArray)
	}
	page.Transactions = txs
	return page, nil
}
