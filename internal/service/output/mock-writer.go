package output

import (
	"context"
	"fmt"

	"icon-active-addresses/internal/model"
)

// MockWriter prints a summary instead of writing a file.
type MockWriter struct {
	Docs []*model.OutputDocument
}

func (m *MockWriter) Write(ctx context.Context, doc *model.OutputDocument) (string, error) {
	m.Docs = append(m.Docs, doc)
	fmt.Printf("[MOCK-WRITER] Blocks: %d → %d | Count: %d\n", doc.StartBlock, doc.EndBlock, doc.Count)
	return "", nil
}
