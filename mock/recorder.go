package mock

import (
	"context"

	"github.com/fwojciec/api2md"
)

var _ api2md.ConversionRecorder = (*ConversionRecorder)(nil)

// ConversionRecorder is a mock implementation of api2md.ConversionRecorder.
type ConversionRecorder struct {
	RecordConversionFn func(ctx context.Context, rec *api2md.ConversionRecord) error
}

func (r *ConversionRecorder) RecordConversion(ctx context.Context, rec *api2md.ConversionRecord) error {
	return r.RecordConversionFn(ctx, rec)
}
