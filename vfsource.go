package vfsource

import (
	"time"

	"github.com/c2fo/vfs/v7"
)

// Descriptor is a lightweight metadata snapshot of a remote file, captured at
// listing time and used for change detection without reading content.
type Descriptor struct {
	// Name is the base name of the file relative to the listed location. It is
	// the unique key within a single poll cycle.
	Name string
	// Modified is the remote modification timestamp at listing time.
	Modified time.Time
	// Size is the remote size in bytes at listing time.
	Size uint64
}

// RetrievedFile pairs the descriptor that triggered retrieval with the local
// handle holding the fetched bytes. The source owns retrieved files until they
// are consumed into a payload.
type RetrievedFile struct {
	Descriptor Descriptor
	File       vfs.File
}

// Message is one delivered payload: an ordered group of retrieved files plus
// whatever the configured MessageCreator built from them. ID is the
// correlation token used by OnSend and OnFailure to resolve the originating
// payload, so callers may freely copy or re-wrap a Message as long as the ID
// is preserved.
type Message struct {
	ID      string
	Payload any
	Files   []RetrievedFile
}

// Lister returns the current set of remote file descriptors. Implementations
// are expected to be safe for use by a single poll cycle at a time; the
// Source serializes cycles itself.
type Lister interface {
	ListFiles() ([]Descriptor, error)
}

// Retriever fetches the content behind a descriptor into local storage and
// returns the local handle. A failed retrieval only drops that descriptor from
// the current cycle; see Source for the retry policy.
type Retriever interface {
	Retrieve(d Descriptor) (vfs.File, error)
}

// MessageCreator maps a payload's retrieved files to the outbound message
// payload. The default creator returns the files themselves.
type MessageCreator interface {
	Create(files []RetrievedFile) (any, error)
}

// MessageCreatorFunc adapts a function to the MessageCreator interface.
type MessageCreatorFunc func(files []RetrievedFile) (any, error)

// Create calls f.
func (f MessageCreatorFunc) Create(files []RetrievedFile) (any, error) {
	return f(files)
}

type defaultMessageCreator struct{}

func (defaultMessageCreator) Create(files []RetrievedFile) (any, error) {
	return files, nil
}
