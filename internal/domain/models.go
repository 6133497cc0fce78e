package domain

import "time"

// MaxLogEntries bounds the rolling history of past executions.
const MaxLogEntries = 14

// TriggerKind records which external stimulus started an execution.
type TriggerKind string

const (
	TriggerManual TriggerKind = "manual"
	TriggerCron   TriggerKind = "cron"
)

// RetryPolicy is the configured retry behavior for one execution.
type RetryPolicy struct {
	MaxRetries   int `json:"maxRetries"`
	DelaySeconds int `json:"delaySeconds"`
}

// DefaultPolicy is the fallback when the stored settings blob is absent
// or unreadable.
func DefaultPolicy() RetryPolicy {
	return RetryPolicy{MaxRetries: 0, DelaySeconds: 1}
}

// Sanitized clamps the policy to safe values: maxRetries never negative,
// delaySeconds never below one second.
func (p RetryPolicy) Sanitized() RetryPolicy {
	if p.MaxRetries < 0 {
		p.MaxRetries = 0
	}
	if p.DelaySeconds < 1 {
		p.DelaySeconds = 1
	}
	return p
}

// Delay returns the inter-attempt pause as a duration.
func (p RetryPolicy) Delay() time.Duration {
	return time.Duration(p.DelaySeconds) * time.Second
}

// ProbeResult is the outcome of one target's full retry sequence within a
// single execution. Status and ElapsedMS are set only when the final
// attempt succeeded; Error only when it did not.
type ProbeResult struct {
	URL       string `json:"url"`
	Status    int    `json:"status,omitempty"`
	OK        bool   `json:"ok"`
	ElapsedMS int64  `json:"elapsedMs,omitempty"`
	Attempts  int    `json:"attempts"`
	Error     string `json:"error,omitempty"`
}

// LogEntry is the aggregated record of one execution. ID is the execution
// start time in milliseconds since epoch; Timestamp is the same instant
// rendered for a fixed display timezone. Results keep the order of the
// configured target list.
type LogEntry struct {
	ID        int64         `json:"id"`
	Timestamp string        `json:"timestamp"`
	Trigger   TriggerKind   `json:"trigger"`
	Results   []ProbeResult `json:"results"`
}
