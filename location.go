package vfsource

import (
	"fmt"
	"regexp"

	"github.com/c2fo/vfs/v7"
)

// LocationLister lists the files at a vfs.Location as Descriptors, one
// metadata snapshot per file. It works against any registered backend (os,
// mem, s3, gs, azure, sftp, ftp).
type LocationLister struct {
	location vfs.Location
	regex    *regexp.Regexp
}

// LocationListerOption is a functional option for configuring a LocationLister.
type LocationListerOption func(*LocationLister)

// WithListRegex restricts listings to file names matching regex.
func WithListRegex(regex *regexp.Regexp) LocationListerOption {
	return func(l *LocationLister) {
		l.regex = regex
	}
}

// NewLocationLister returns a Lister over location.
func NewLocationLister(location vfs.Location, opts ...LocationListerOption) (*LocationLister, error) {
	if location == nil {
		return nil, ErrNilLocation
	}

	l := &LocationLister{location: location}
	for _, opt := range opts {
		opt(l)
	}

	return l, nil
}

// ListFiles returns a descriptor for every file currently at the location.
// Any listing or metadata failure aborts the whole listing, since a partial
// view would make change detection unreliable.
func (l *LocationLister) ListFiles() ([]Descriptor, error) {
	var names []string
	var err error
	if l.regex != nil {
		names, err = l.location.ListByRegex(l.regex)
	} else {
		names, err = l.location.List()
	}
	if err != nil {
		return nil, fmt.Errorf("error listing files: %w", err)
	}

	descriptors := make([]Descriptor, 0, len(names))
	for _, name := range names {
		f, err := l.location.NewFile(name)
		if err != nil {
			return nil, fmt.Errorf("error creating file: %w", err)
		}

		lastModified, err := f.LastModified()
		if err != nil {
			return nil, fmt.Errorf("error getting last modified time: %w", err)
		}

		size, err := f.Size()
		if err != nil {
			return nil, fmt.Errorf("error getting file size: %w", err)
		}

		d := Descriptor{Name: name, Size: size}
		if lastModified != nil {
			d.Modified = *lastModified
		}
		descriptors = append(descriptors, d)
	}

	return descriptors, nil
}

// LocationRetriever stages remote files into a local vfs.Location and hands
// back the staged handle. Staging is typically an os-backed location, but any
// writable backend works.
type LocationRetriever struct {
	remote  vfs.Location
	staging vfs.Location
}

// NewLocationRetriever returns a Retriever that copies files from remote into
// staging.
func NewLocationRetriever(remote, staging vfs.Location) (*LocationRetriever, error) {
	if remote == nil || staging == nil {
		return nil, ErrNilLocation
	}
	return &LocationRetriever{remote: remote, staging: staging}, nil
}

// Retrieve copies the file named by d from the remote location into the
// staging location. The returned handle is closed; consumers reopen it by
// reading.
func (r *LocationRetriever) Retrieve(d Descriptor) (vfs.File, error) {
	remoteFile, err := r.remote.NewFile(d.Name)
	if err != nil {
		return nil, fmt.Errorf("error creating file: %w", err)
	}

	staged, err := remoteFile.CopyToLocation(r.staging)
	if err != nil {
		return nil, fmt.Errorf("error copying to staging location: %w", err)
	}

	return staged, nil
}

// NewLocationSource wires a LocationLister and LocationRetriever over the
// remote/staging pair into a Source. It is the usual entry point when the
// remote store is reachable as a vfs.Location.
func NewLocationSource(remote, staging vfs.Location, opts ...Option) (*Source, error) {
	lister, err := NewLocationLister(remote)
	if err != nil {
		return nil, err
	}

	retriever, err := NewLocationRetriever(remote, staging)
	if err != nil {
		return nil, err
	}

	return NewSource(lister, retriever, opts...)
}
