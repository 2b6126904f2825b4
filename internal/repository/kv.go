package repository

import "context"

// KV is the capability interface for the persistent key/value slots backing
// dashboard state. A missing key is reported via the bool, not an error.
type KV interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}
