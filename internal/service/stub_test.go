package service

import (
	"context"
	"net/http"
	"sync"

	"icon-active-addresses/internal/model"
)

type stubResponse struct {
	status int
	txs    []model.Transaction
	err    error
}

// stubFetcher serves scripted responses keyed by skip. Each call consumes the next response for
// that skip and the last one repeats; skips without a script answer 204.
type stubFetcher struct {
	mu         sync.Mutex
	blocks     map[int64]int64
	blockErr   error
	blockCalls int
	responses  map[int64][]stubResponse
	skips      []int64
}

func (s *stubFetcher) BlockByTimestamp(ctx context.Context, timestamp int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blockCalls++
	if s.blockErr != nil {
		return 0, s.blockErr
	}
	if h, ok := s.blocks[timestamp]; ok {
		return h, nil
	}
	// Roughly one block every two seconds after genesis.
	return (timestamp - 1516819217) / 2, nil
}

func (s *stubFetcher) GetTransactions(ctx context.Context, br model.BlockRange, limit, skip int64) (*model.TransactionPage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.skips = append(s.skips, skip)
	script := s.responses[skip]
	if len(script) == 0 {
		return &model.TransactionPage{StatusCode: http.StatusNoContent}, nil
	}
	r := script[0]
	if len(script) > 1 {
		s.responses[skip] = script[1:]
	}
	if r.err != nil {
		return nil, r.err
	}
	return &model.TransactionPage{StatusCode: r.status, Transactions: r.txs}, nil
}

func ok(addrs ...string) stubResponse {
	txs := make([]model.Transaction, 0, len(addrs))
	for _, a := range addrs {
		txs = append(txs, model.Transaction{FromAddress: a})
	}
	return stubResponse{status: http.StatusOK, txs: txs}
}
