package mock

import "github.com/fwojciec/api2md"

var _ api2md.Classifier = (*Classifier)(nil)

// Classifier is a mock implementation of api2md.Classifier.
type Classifier struct {
	ClassifyFn func(html string) (*api2md.EndpointInfo, error)
}

func (c *Classifier) Classify(html string) (*api2md.EndpointInfo, error) {
	return c.ClassifyFn(html)
}
