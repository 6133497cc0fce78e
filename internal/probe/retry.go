package probe

import (
	"context"
	"time"

	"github.com/keivanh/keepwarm/internal/domain"
)

// Retry wraps a Checker with a bounded retry loop for one target.
// MaxRetries is the number of attempts after the first; Delay is the
// pause between attempts, never applied after the final one.
type Retry struct {
	Checker    Checker
	MaxRetries int
	Delay      time.Duration
}

// Run probes the target until an attempt succeeds or the retries are
// exhausted, returning one ProbeResult either way. Attempts is always in
// [1, MaxRetries+1]. A non-2xx response and a transport failure retry
// identically.
func (r *Retry) Run(ctx context.Context, url string) domain.ProbeResult {
	max := r.MaxRetries
	if max < 0 {
		max = 0
	}
	res := domain.ProbeResult{URL: url}
	for attempt := 0; ; attempt++ {
		out := r.Checker.Check(ctx, url)
		res.Attempts = attempt + 1
		if out.OK {
			res.OK = true
			res.Status = out.Status
			res.ElapsedMS = out.ElapsedMS
			res.Error = ""
			return res
		}
		res.OK = false
		res.Error = out.Error
		if attempt == max {
			return res
		}
		time.Sleep(r.Delay)
	}
}
