// Package kv provides durable key-value storage for the client.
//
// Three backends are available: a JSON file (default), the OS keychain, and
// a SQLite database. All of them store opaque byte values under string keys
// and report a missing key with ErrNotFound rather than an error value of
// their own.
package kv

import "errors"

// ErrNotFound is returned by Get when no value is stored under the key.
var ErrNotFound = errors.New("kv: key not found")

// Store is a durable key-value store.
type Store interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error
}
