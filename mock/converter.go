package mock

import "github.com/fwojciec/api2md"

var _ api2md.Converter = (*Converter)(nil)

// Converter is a mock implementation of api2md.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
