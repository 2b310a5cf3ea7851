package vfsource

import "sort"

// changeTracker maintains the backlog: the last accepted descriptor per file
// name. It is not safe for concurrent use on its own; the Source guards all
// access behind its poll-cycle mutex, so per-entry locking is unnecessary.
type changeTracker struct {
	backlog map[string]Descriptor
}

func newChangeTracker() *changeTracker {
	return &changeTracker{backlog: make(map[string]Descriptor)}
}

// diff returns the descriptors that are new or changed relative to the
// backlog, sorted by name so repeated identical listings produce identical
// output. Dirty entries are accepted into the backlog immediately, before any
// retrieval is attempted. A duplicate poll arriving before retrieval finishes
// therefore does not re-dirty the same name, and a failed retrieval is not
// retried until the remote timestamp or size changes again.
func (t *changeTracker) diff(observed []Descriptor) []Descriptor {
	var dirty []Descriptor
	for _, d := range observed {
		if t.changed(d) {
			t.backlog[d.Name] = d
			dirty = append(dirty, d)
		}
	}
	sort.Slice(dirty, func(i, j int) bool {
		return dirty[i].Name < dirty[j].Name
	})
	return dirty
}

// changed reports whether d is absent from the backlog or differs from the
// accepted entry by timestamp or size.
func (t *changeTracker) changed(d Descriptor) bool {
	accepted, exists := t.backlog[d.Name]
	if !exists {
		return true
	}
	return !accepted.Modified.Equal(d.Modified) || accepted.Size != d.Size
}

func (t *changeTracker) len() int {
	return len(t.backlog)
}
