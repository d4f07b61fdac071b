package mock

import (
	"context"

	"github.com/fwojciec/api2md"
)

var _ api2md.DocumentWriter = (*DocumentWriter)(nil)

// DocumentWriter is a mock implementation of api2md.DocumentWriter.
type DocumentWriter struct {
	WriteDocumentFn func(ctx context.Context, doc *api2md.Document) (string, error)
}

func (w *DocumentWriter) WriteDocument(ctx context.Context, doc *api2md.Document) (string, error) {
	return w.WriteDocumentFn(ctx, doc)
}
