package model

import (
	"errors"
	"fmt"
)

// ErrStoreClosed is returned by stores used after Close.
var ErrStoreClosed = errors.New("store closed")

// StoreError wraps a failed preference read or write so callers can inspect
// which key and operation failed.
type StoreError struct {
	Op  string // "get" or "set"
	Key string
	Err error
}

func (e *StoreError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s %q: %v", e.Op, e.Key, e.Err)
	}
	return fmt.Sprintf("%s %q", e.Op, e.Key)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
