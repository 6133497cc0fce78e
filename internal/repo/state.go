// Package repo gives typed access to the engine's persisted state. Each
// piece of state lives under a well-known key in the kv store as a JSON
// blob; reads decode best-effort (malformed blob -> default), while store
// I/O errors pass through untouched.
package repo

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/keivanh/keepwarm/internal/domain"
	"github.com/keivanh/keepwarm/internal/kv"
)

const (
	KeyTargets  = "urls"
	KeySettings = "settings"
	KeyLogs     = "logs"
)

type State struct {
	KV kv.Store
}

func NewState(store kv.Store) *State {
	return &State{KV: store}
}

// Targets loads the configured target list. Absent or malformed -> empty.
func (s *State) Targets(ctx context.Context) ([]string, error) {
	raw, ok, err := s.KV.Get(ctx, KeyTargets)
	if err != nil {
		return nil, fmt.Errorf("load targets: %w", err)
	}
	if !ok {
		return nil, nil
	}
	return domain.DecodeTargets(raw), nil
}

func (s *State) SaveTargets(ctx context.Context, urls []string) error {
	if urls == nil {
		urls = []string{}
	}
	b, err := json.Marshal(urls)
	if err != nil {
		return fmt.Errorf("encode targets: %w", err)
	}
	if err := s.KV.Put(ctx, KeyTargets, string(b)); err != nil {
		return fmt.Errorf("save targets: %w", err)
	}
	return nil
}

// Policy loads the retry settings, sanitized. Absent or malformed ->
// default policy.
func (s *State) Policy(ctx context.Context) (domain.RetryPolicy, error) {
	raw, ok, err := s.KV.Get(ctx, KeySettings)
	if err != nil {
		return domain.RetryPolicy{}, fmt.Errorf("load settings: %w", err)
	}
	if !ok {
		return domain.DefaultPolicy(), nil
	}
	return domain.DecodePolicy(raw), nil
}

func (s *State) SavePolicy(ctx context.Context, p domain.RetryPolicy) error {
	b, err := json.Marshal(p.Sanitized())
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := s.KV.Put(ctx, KeySettings, string(b)); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

// History loads the stored log history, newest first. Absent or
// malformed -> empty.
func (s *State) History(ctx context.Context) ([]domain.LogEntry, error) {
	raw, ok, err := s.KV.Get(ctx, KeyLogs)
	if err != nil {
		return nil, fmt.Errorf("load logs: %w", err)
	}
	if !ok {
		return nil, nil
	}
	return domain.DecodeHistory(raw), nil
}

// SaveHistory overwrites the stored history as a single blob.
func (s *State) SaveHistory(ctx context.Context, entries []domain.LogEntry) error {
	if entries == nil {
		entries = []domain.LogEntry{}
	}
	b, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("encode logs: %w", err)
	}
	if err := s.KV.Put(ctx, KeyLogs, string(b)); err != nil {
		return fmt.Errorf("save logs: %w", err)
	}
	return nil
}

// Seed writes initial targets and settings, touching only keys that are
// not present yet. Used by the optional seed file at startup.
func (s *State) Seed(ctx context.Context, targets []string, policy *domain.RetryPolicy) error {
	if len(targets) > 0 {
		if _, ok, err := s.KV.Get(ctx, KeyTargets); err != nil {
			return fmt.Errorf("seed targets: %w", err)
		} else if !ok {
			if err := s.SaveTargets(ctx, targets); err != nil {
				return err
			}
		}
	}
	if policy != nil {
		if _, ok, err := s.KV.Get(ctx, KeySettings); err != nil {
			return fmt.Errorf("seed settings: %w", err)
		} else if !ok {
			if err := s.SavePolicy(ctx, *policy); err != nil {
				return err
			}
		}
	}
	return nil
}
