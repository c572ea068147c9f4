package output

import (
	"context"
	"fmt"
	"time"

	"icon-active-addresses/internal/model"
)

// isoLayout matches the UTC datetimes in output names, e.g. 2022-07-07T00:00:00.
const isoLayout = "2006-01-02T15:04:05"

type Writer interface {
	// Write persists the document and returns where it went.
	Write(ctx context.Context, doc *model.OutputDocument) (string, error)
}

func FormatTimestamp(ts int64) string {
	return time.Unix(ts, 0).UTC().Format(isoLayout)
}

// FileName derives the output file name from the run's time range.
func FileName(tr model.TimeRange, style model.NameStyle) string {
	if style == model.NameStyleUnix {
		return fmt.Sprintf("active-addresses-%d-%d.json", tr.Start, tr.End)
	}
	return fmt.Sprintf("active-addresses-%s-%s.json", FormatTimestamp(tr.Start), FormatTimestamp(tr.End))
}

// NewDocument freezes the collected addresses into the summary document.
func NewDocument(tr model.TimeRange, br model.BlockRange, addrs *model.AddressSet, style model.NameStyle) *model.OutputDocument {
	sorted := addrs.Sorted()
	doc := &model.OutputDocument{
		StartBlock: br.From,
		EndBlock:   br.To,
		Count:      len(sorted),
		Addresses:  sorted,
	}
	if style == model.NameStyleUnix {
		doc.StartTimestamp = tr.Start
		doc.EndTimestamp = tr.End
	} else {
		doc.StartTime = FormatTimestamp(tr.Start)
		doc.EndTime = FormatTimestamp(tr.End)
	}
	return doc
}
