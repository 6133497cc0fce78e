package domain

import (
	"encoding/json"
	"testing"
	"time"
)

func TestRetryPolicy_Sanitized(t *testing.T) {
	cases := []struct {
		in   RetryPolicy
		want RetryPolicy
	}{
		{RetryPolicy{MaxRetries: 3, DelaySeconds: 5}, RetryPolicy{MaxRetries: 3, DelaySeconds: 5}},
		{RetryPolicy{MaxRetries: -2, DelaySeconds: 0}, RetryPolicy{MaxRetries: 0, DelaySeconds: 1}},
		{RetryPolicy{}, RetryPolicy{MaxRetries: 0, DelaySeconds: 1}},
		{RetryPolicy{MaxRetries: 0, DelaySeconds: -10}, RetryPolicy{MaxRetries: 0, DelaySeconds: 1}},
	}
	for _, c := range cases {
		if got := c.in.Sanitized(); got != c.want {
			t.Fatalf("Sanitized(%+v) = %+v, want %+v", c.in, got, c.want)
		}
	}
}

func TestRetryPolicy_Delay(t *testing.T) {
	p := RetryPolicy{MaxRetries: 1, DelaySeconds: 3}
	if p.Delay() != 3*time.Second {
		t.Fatalf("want 3s, got %s", p.Delay())
	}
}

func TestProbeResult_JSONOmitsEmptyFields(t *testing.T) {
	b, err := json.Marshal(ProbeResult{URL: "https://b.test", OK: false, Attempts: 3, Error: "HTTP 500"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if _, ok := m["status"]; ok {
		t.Fatalf("failed result should omit status, got %v", m)
	}
	if _, ok := m["elapsedMs"]; ok {
		t.Fatalf("failed result should omit elapsedMs, got %v", m)
	}
	if m["error"] != "HTTP 500" {
		t.Fatalf("want error field, got %v", m)
	}
}

func TestLogEntry_JSONRoundTrip(t *testing.T) {
	want := LogEntry{
		ID:        1724800000000,
		Timestamp: "2026-08-28 12:00:00 UTC",
		Trigger:   TriggerCron,
		Results: []ProbeResult{
			{URL: "https://a.test", Status: 200, OK: true, ElapsedMS: 42, Attempts: 1},
		},
	}
	b, err := json.Marshal(want)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var got LogEntry
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.ID != want.ID || got.Trigger != want.Trigger || len(got.Results) != 1 ||
		got.Results[0] != want.Results[0] {
		t.Fatalf("mismatch after round-trip:\nwant=%+v\ngot =%+v", want, got)
	}
}
