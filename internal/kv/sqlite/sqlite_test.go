package sqlite

import (
	"context"
	"path/filepath"
	"testing"
)

func TestStore_GetPutOverwrite(t *testing.T) {
	ctx := context.Background()
	s, err := New(ctx, filepath.Join(t.TempDir(), "keepwarm.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer s.Close()

	if _, ok, err := s.Get(ctx, "settings"); err != nil || ok {
		t.Fatalf("missing key: ok=%v err=%v", ok, err)
	}
	if err := s.Put(ctx, "settings", `{"maxRetries":1,"delaySeconds":2}`); err != nil {
		t.Fatalf("put: %v", err)
	}
	v, ok, err := s.Get(ctx, "settings")
	if err != nil || !ok || v == "" {
		t.Fatalf("get: v=%q ok=%v err=%v", v, ok, err)
	}
	if err := s.Put(ctx, "settings", `{"maxRetries":3,"delaySeconds":2}`); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	if v, _, _ := s.Get(ctx, "settings"); v != `{"maxRetries":3,"delaySeconds":2}` {
		t.Fatalf("want overwritten value, got %q", v)
	}
}

func TestStore_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "keepwarm.db")

	s, err := New(ctx, path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := s.Put(ctx, "urls", `["https://a.test"]`); err != nil {
		t.Fatalf("put: %v", err)
	}
	s.Close()

	s2, err := New(ctx, path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s2.Close()
	v, ok, err := s2.Get(ctx, "urls")
	if err != nil || !ok || v != `["https://a.test"]` {
		t.Fatalf("persisted value lost: v=%q ok=%v err=%v", v, ok, err)
	}
}
