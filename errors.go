package vfsource

import (
	"errors"
	"fmt"
)

var (
	// ErrNilLister is returned by NewSource when no Lister is provided.
	ErrNilLister = errors.New("vfsource: lister cannot be nil")
	// ErrNilRetriever is returned by NewSource when no Retriever is provided.
	ErrNilRetriever = errors.New("vfsource: retriever cannot be nil")
	// ErrNilLocation is returned when a required vfs.Location is nil.
	ErrNilLocation = errors.New("vfsource: location cannot be nil")
)

// wrapListError returns a wrapped listing error
func wrapListError(err error) error {
	return fmt.Errorf("list error: %w", err)
}

// wrapRetrieveError returns a wrapped retrieval error
func wrapRetrieveError(name string, err error) error {
	return fmt.Errorf("retrieve error for %s: %w", name, err)
}

// wrapCreateMessageError returns a wrapped message creation error
func wrapCreateMessageError(err error) error {
	return fmt.Errorf("create message error: %w", err)
}
