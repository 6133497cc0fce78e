package probe

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// userAgent identifies the engine to probed endpoints.
const userAgent = "keepwarm-probe/1.0 (+https://github.com/keivanh/keepwarm)"

type HTTPChecker struct {
	Client *http.Client
}

// NewHTTPChecker builds a checker with the given client timeout. A zero
// timeout keeps the client default: the engine adds no deadline of its
// own on top of it.
func NewHTTPChecker(timeout time.Duration) *HTTPChecker {
	return &HTTPChecker{Client: &http.Client{Timeout: timeout}}
}

// Check issues a single GET, following redirects, and classifies the
// response. Success is a status in [200,299]; elapsed time is recorded
// only for successful attempts.
func (c *HTTPChecker) Check(ctx context.Context, url string) Outcome {
	start := time.Now()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Outcome{Error: err.Error()}
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.Client.Do(req)
	if err != nil {
		return Outcome{Error: err.Error()}
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	elapsed := time.Since(start).Milliseconds()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return Outcome{OK: true, Status: resp.StatusCode, ElapsedMS: elapsed}
	}
	return Outcome{Status: resp.StatusCode, Error: fmt.Sprintf("HTTP %d", resp.StatusCode)}
}

var _ Checker = (*HTTPChecker)(nil)
