package vfsource

import "sync"

// inFlightRegistry tracks payloads that have been delivered but not yet
// acknowledged or failed, keyed by message correlation id. Entries stay
// registered until OnSend or OnFailure resolves them; there is no automatic
// expiry.
type inFlightRegistry struct {
	mu      sync.Mutex
	entries map[string][]RetrievedFile
}

func newInFlightRegistry() *inFlightRegistry {
	return &inFlightRegistry{entries: make(map[string][]RetrievedFile)}
}

func (r *inFlightRegistry) register(id string, files []RetrievedFile) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[id] = files
}

// acknowledge removes the entry for id and reports whether it existed.
// Acknowledging an unknown or already-acknowledged id is a no-op, which keeps
// duplicate ack signals harmless.
func (r *inFlightRegistry) acknowledge(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, exists := r.entries[id]
	delete(r.entries, id)
	return exists
}

// remove removes and returns the entry for id, for failure redelivery.
func (r *inFlightRegistry) remove(id string) ([]RetrievedFile, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	files, exists := r.entries[id]
	delete(r.entries, id)
	return files, exists
}

func (r *inFlightRegistry) len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}
