package calls

import (
	"context"
	"strings"

	"golang.org/x/time/rate"
)

type wrappedLimiter struct {
	limiter *rate.Limiter
}

func newWrappedLimiter(r rate.Limit) *wrappedLimiter {
	burst := 1
	if r != rate.Inf && r*10 > 1 {
		burst = int(r * 10)
	}

	return &wrappedLimiter{
		limiter: rate.NewLimiter(r, burst),
	}
}

func (wl *wrappedLimiter) Wait(ctx context.Context) error {
	err := wl.limiter.Wait(ctx)
	if err == nil {
		return nil
	}
	// The limiter refuses up front when the wait would outlast the context
	// deadline. Treat that like the deadline itself so callers only have to
	// care about context errors.
	if strings.Contains(err.Error(), "would exceed context deadline") {
		<-ctx.Done()
		return ctx.Err()
	}
	return err
}
