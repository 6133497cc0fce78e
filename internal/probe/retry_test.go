package probe

import (
	"context"
	"testing"
	"time"
)

// fakeChecker replays a scripted sequence of outcomes.
type fakeChecker struct {
	outcomes []Outcome
	calls    int
}

func (f *fakeChecker) Check(ctx context.Context, url string) Outcome {
	i := f.calls
	f.calls++
	if i >= len(f.outcomes) {
		return f.outcomes[len(f.outcomes)-1]
	}
	return f.outcomes[i]
}

func TestRetry_SucceedsImmediately(t *testing.T) {
	f := &fakeChecker{outcomes: []Outcome{{OK: true, Status: 200, ElapsedMS: 7}}}
	r := &Retry{Checker: f, MaxRetries: 5, Delay: time.Hour}

	res := r.Run(context.Background(), "https://a.test")
	if !res.OK || res.Attempts != 1 || res.Status != 200 || res.ElapsedMS != 7 {
		t.Fatalf("unexpected result: %+v", res)
	}
	if f.calls != 1 {
		t.Fatalf("success must not retry, got %d calls", f.calls)
	}
}

func TestRetry_SucceedsAfterRetry(t *testing.T) {
	f := &fakeChecker{outcomes: []Outcome{
		{Error: "HTTP 503", Status: 503},
		{OK: true, Status: 200, ElapsedMS: 12},
	}}
	r := &Retry{Checker: f, MaxRetries: 3, Delay: 5 * time.Millisecond}

	res := r.Run(context.Background(), "https://a.test")
	if !res.OK || res.Attempts != 2 {
		t.Fatalf("expected success on attempt 2, got %+v", res)
	}
	if res.Error != "" {
		t.Fatalf("success must clear the error, got %q", res.Error)
	}
}

func TestRetry_ZeroRetriesSingleAttempt(t *testing.T) {
	f := &fakeChecker{outcomes: []Outcome{{Error: "HTTP 500", Status: 500}}}
	r := &Retry{Checker: f, MaxRetries: 0, Delay: time.Hour}

	res := r.Run(context.Background(), "https://b.test")
	if res.OK || res.Attempts != 1 || f.calls != 1 {
		t.Fatalf("maxRetries=0 must probe exactly once: %+v calls=%d", res, f.calls)
	}
	if res.Error != "HTTP 500" {
		t.Fatalf("want last probe error, got %q", res.Error)
	}
	if res.Status != 0 {
		t.Fatalf("failed result must not carry a status, got %d", res.Status)
	}
}

func TestRetry_ExhaustsRetriesAndWaitsBetweenAttempts(t *testing.T) {
	f := &fakeChecker{outcomes: []Outcome{{Error: "HTTP 500"}}}
	delay := 30 * time.Millisecond
	r := &Retry{Checker: f, MaxRetries: 2, Delay: delay}

	start := time.Now()
	res := r.Run(context.Background(), "https://b.test")
	elapsed := time.Since(start)

	if res.OK || res.Attempts != 3 || f.calls != 3 {
		t.Fatalf("want 3 attempts, got %+v calls=%d", res, f.calls)
	}
	// two inter-attempt delays, no trailing sleep
	if elapsed < 2*delay {
		t.Fatalf("want >= %s of retry delay, got %s", 2*delay, elapsed)
	}
	if elapsed > 10*delay {
		t.Fatalf("suspiciously long run (trailing sleep?): %s", elapsed)
	}
}

func TestRetry_NegativeMaxRetriesClamped(t *testing.T) {
	f := &fakeChecker{outcomes: []Outcome{{Error: "refused"}}}
	r := &Retry{Checker: f, MaxRetries: -4, Delay: 0}

	res := r.Run(context.Background(), "https://b.test")
	if res.Attempts != 1 || f.calls != 1 {
		t.Fatalf("negative maxRetries must act as zero: %+v calls=%d", res, f.calls)
	}
}
