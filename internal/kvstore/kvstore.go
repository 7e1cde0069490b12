package kvstore

import "errors"

// ErrNotFound is returned by Get for a missing key.
var ErrNotFound = errors.New("kvstore: key not found")

// Store is the durable local key-value store the console persists into:
// session fields, the cached profile blob, nothing else. String keys,
// string values, synchronous semantics.
type Store interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Delete(key string) error
}
