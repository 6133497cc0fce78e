package probe

import "context"

// Outcome is the classified result of a single probe attempt.
//
// Status is the HTTP status code when a response arrived; 0 on transport
// failure. ElapsedMS is the wall-clock time of the attempt. Error holds
// the failure description: "HTTP <code>" for a non-2xx response, the
// native error text for a transport failure.
type Outcome struct {
	OK        bool
	Status    int
	ElapsedMS int64
	Error     string
}

// Checker performs one probe attempt against a target URL. It does not
// retry or sleep.
type Checker interface {
	Check(ctx context.Context, url string) Outcome
}
