// Package kv defines the persistent key-value collaborator the engine
// reads its inputs from and writes its history to. Values are opaque
// string blobs; interpretation happens in the repo layer.
package kv

import "context"

// Store is the minimal get/put contract. Get reports absence via the
// bool; an error means the store itself failed, which is the only class
// the engine propagates. No transactions or conditional writes are
// assumed.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Put(ctx context.Context, key, value string) error
}
