package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"icon-active-addresses/internal/config"
	data_layer "icon-active-addresses/internal/data-layer"
	"icon-active-addresses/internal/model"
	"icon-active-addresses/internal/service/output"
)

// Harvester collects the unique senders active in a time range and writes the summary.
type Harvester struct {
	Fetcher     data_layer.TrackerFetcher
	Writer      output.Writer
	Range       model.TimeRange
	PageSize    int64
	Termination model.TerminationPolicy
	Retry       RetryPolicy
	StartDelay  time.Duration
	PageDelay   time.Duration
	NameStyle   model.NameStyle
	Metrics     *Metrics
	Logger      *log.Logger
}

func NewHarvesterFromConfig(cfg *config.AppConfig, fetcher data_layer.TrackerFetcher, writer output.Writer, metrics *Metrics, l *log.Logger) *Harvester {
	p := cfg.Pagination
	return &Harvester{
		Fetcher:     fetcher,
		Writer:      writer,
		Range:       cfg.TimeRange(),
		PageSize:    p.PageSize,
		Termination: p.Termination,
		Retry: RetryPolicy{
			MaxAttempts: p.Retry.MaxAttempts,
			Wait:        p.Retry.Wait,
			MaxWait:     p.Retry.MaxWait,
		},
		StartDelay: p.StartDelay,
		PageDelay:  p.PageDelay,
		NameStyle:  cfg.Output.NameStyle,
		Metrics:    metrics,
		Logger:     l,
	}
}

// Run resolves the block range, drains every page and writes the result.
// It returns the written document and the location reported by the writer.
func (h *Harvester) Run(ctx context.Context) (*model.OutputDocument, string, error) {
	l := logger(h.Logger)

	resolver := &Resolver{Fetcher: h.Fetcher, Metrics: h.Metrics, Logger: h.Logger}
	br, err := resolver.ResolveBlockRange(ctx, h.Range)
	if err != nil {
		return nil, "", err
	}
	l.Printf("[Harvester] datetime range: %s - %s", output.FormatTimestamp(h.Range.Start), output.FormatTimestamp(h.Range.End))
	l.Printf("[Harvester] block range: %d - %d", br.From, br.To)

	if err := sleepCtx(ctx, h.StartDelay); err != nil {
		return nil, "", err
	}

	paginator := &Paginator{
		Fetcher:     h.Fetcher,
		Range:       br,
		PageSize:    h.PageSize,
		Termination: h.Termination,
		Retry:       h.Retry,
		PageDelay:   h.PageDelay,
		Metrics:     h.Metrics,
		Logger:      h.Logger,
	}
	active, err := Collect(ctx, paginator, func(total int) {
		h.Metrics.setAddresses(total)
		l.Printf("[Harvester] total active addresses: %d", total)
	})
	if err != nil {
		return nil, "", fmt.Errorf("paginate blocks %d-%d: %w", br.From, br.To, err)
	}

	doc := output.NewDocument(h.Range, br, active, h.NameStyle)
	where, err := h.Writer.Write(ctx, doc)
	if err != nil {
		return nil, "", err
	}
	if where != "" {
		l.Printf("[Harvester] wrote %d addresses to %s", doc.Count, where)
	}
	return doc, where, nil
}

// Collect folds every page the paginator yields into one set. progress, if set, receives the
// running total after each page.
func Collect(ctx context.Context, p *Paginator, progress func(total int)) (*model.AddressSet, error) {
	acc := model.NewAddressSet()
	for page, err := range p.Pages(ctx) {
		if err != nil {
			return nil, err
		}
		acc.Merge(page)
		if progress != nil {
			progress(acc.Len())
		}
	}
	return acc, nil
}
