package cache

import (
	"context"
	"encoding/json"
	"errors"
)

// Store is a generic key-value memo store.
//
// Entries never expire: a value stored under a key is assumed to stay
// valid for the lifetime of the store.
type Store[V any] interface {
	// Get retrieves a value by key.
	// Returns ErrNotFound if the key does not exist.
	Get(ctx context.Context, key string) (V, error)

	// Set stores a value, replacing any previous value for the key.
	Set(ctx context.Context, key string, value V) error

	// Len reports the number of stored entries.
	Len(ctx context.Context) (int, error)

	// Close releases resources held by the store.
	Close() error
}

// Marshaler serializes and deserializes values for stores
// that require byte representation (e.g., Redis).
type Marshaler[V any] interface {
	Marshal(v V) ([]byte, error)
	Unmarshal(data []byte) (V, error)
}

type jsonMarshaler[V any] struct{}

func (jsonMarshaler[V]) Marshal(v V) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Join(ErrMarshal, err)
	}
	return data, nil
}

func (jsonMarshaler[V]) Unmarshal(data []byte) (V, error) {
	var v V
	if err := json.Unmarshal(data, &v); err != nil {
		return v, errors.Join(ErrUnmarshal, err)
	}
	return v, nil
}
