package mock

import "github.com/fwojciec/api2md"

var _ api2md.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of api2md.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*api2md.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*api2md.ExtractResult, error) {
	return e.ExtractFn(html)
}
