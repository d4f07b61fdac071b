package mock

import (
	"context"

	"github.com/fwojciec/api2md"
)

var _ api2md.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of api2md.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	if d.WaitFn == nil {
		return nil
	}
	return d.WaitFn(ctx, domain)
}
