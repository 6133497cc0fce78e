package domain

import "encoding/json"

// The persisted state lives in the key-value store as opaque JSON blobs.
// Decoding is best-effort: a blob that fails to parse yields a documented
// default instead of an error, so stale or hand-edited state can never
// wedge an execution.

// DecodeTargets parses the stored target list. Malformed input yields an
// empty list.
func DecodeTargets(raw string) []string {
	var urls []string
	if err := json.Unmarshal([]byte(raw), &urls); err != nil {
		return nil
	}
	return urls
}

// DecodePolicy parses the stored retry settings and sanitizes them.
// Malformed input yields the default policy.
func DecodePolicy(raw string) RetryPolicy {
	var p RetryPolicy
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return DefaultPolicy()
	}
	return p.Sanitized()
}

// DecodeHistory parses the stored log history. Malformed input yields an
// empty history; this is a silent recovery, not an error.
func DecodeHistory(raw string) []LogEntry {
	var entries []LogEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return nil
	}
	return entries
}
