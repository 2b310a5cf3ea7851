package vfsource

import (
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
)

// RetrievalErrorHandler is called when a single descriptor fails to retrieve
// during a poll cycle. The cycle continues with the remaining descriptors and
// the failed descriptor is not retried until its remote copy changes again;
// the handler is the hook for callers who want to alert on or compensate for
// the dropped content version.
type RetrievalErrorHandler func(d Descriptor, err error)

// Source turns a remote file store into a sequence of acknowledgeable
// payloads. Each call to Receive drains pending work into a bounded payload,
// running at most one poll cycle (list, diff against the backlog, retrieve
// dirty files) when nothing is pending. Receive, OnSend, and OnFailure are
// safe for concurrent use by multiple goroutines without external
// synchronization; concurrent receivers are handed disjoint payloads.
//
// A delivered payload stays registered until OnSend or OnFailure resolves it.
// There is no automatic expiry, so a caller that abandons a Message without
// acknowledging or failing it leaks the entry.
type Source struct {
	lister        Lister
	retriever     Retriever
	creator       MessageCreator
	logger        *slog.Logger
	metrics       *Metrics
	onRetrieveErr RetrievalErrorHandler

	maxPerPayload atomic.Int64

	// pollMu serializes poll cycles so two receivers never race to retrieve
	// the same dirty descriptor twice. It also guards the tracker.
	pollMu   sync.Mutex
	tracker  *changeTracker
	pending  *pendingQueue
	inFlight *inFlightRegistry
}

// NewSource returns a Source that polls lister for changes and fetches dirty
// files through retriever.
func NewSource(lister Lister, retriever Retriever, opts ...Option) (*Source, error) {
	if lister == nil {
		return nil, ErrNilLister
	}
	if retriever == nil {
		return nil, ErrNilRetriever
	}

	s := &Source{
		lister:    lister,
		retriever: retriever,
		creator:   defaultMessageCreator{},
		logger:    slog.New(slog.DiscardHandler),
		tracker:   newChangeTracker(),
		pending:   newPendingQueue(),
		inFlight:  newInFlightRegistry(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// SetMaxMessagesPerPayload changes the payload size bound. n <= 0 means
// unbounded. The bound in effect at drain time governs how a redelivered
// payload is re-split, not the bound at original delivery.
func (s *Source) SetMaxMessagesPerPayload(n int) {
	if n < 0 {
		n = 0
	}
	s.maxPerPayload.Store(int64(n))
}

// Receive returns the next payload, or (nil, nil) when no files are dirty.
// It first drains pending work; if nothing is pending it runs one poll cycle
// and drains again. It never blocks waiting for remote changes, so callers
// own the polling cadence. A listing failure is returned as an error with no
// backlog or queue mutation, and calling Receive again later retries the
// cycle from scratch.
func (s *Source) Receive() (*Message, error) {
	if msg, err := s.nextMessage(); msg != nil || err != nil {
		return msg, err
	}

	if err := s.pollCycle(); err != nil {
		return nil, err
	}

	return s.nextMessage()
}

// OnSend acknowledges the payload behind msg, removing it from the in-flight
// registry. Unknown, already-acknowledged, and nil messages are no-ops.
func (s *Source) OnSend(msg *Message) {
	if msg == nil {
		return
	}
	if s.inFlight.acknowledge(msg.ID) {
		s.logger.Debug("payload acknowledged", "id", msg.ID, "files", len(msg.Files))
		s.metrics.payloadAcknowledged(s.inFlight.len())
	}
}

// OnFailure fails the payload behind msg: its exact file set goes back to the
// front of the pending queue, ahead of newer work, so a subsequent Receive
// redelivers it. Unknown, already-resolved, and nil messages are no-ops.
func (s *Source) OnFailure(msg *Message, cause error) {
	if msg == nil {
		return
	}
	files, exists := s.inFlight.remove(msg.ID)
	if !exists {
		return
	}
	s.pending.requeueFront(files)
	s.logger.Warn("payload failed, requeued for redelivery", "id", msg.ID, "files", len(files), "cause", cause)
	s.metrics.payloadFailed(s.inFlight.len(), s.pending.len())
}

// nextMessage drains up to the configured bound from the pending queue and
// wraps the result. Returns (nil, nil) when nothing is pending.
func (s *Source) nextMessage() (*Message, error) {
	files := s.pending.drain(int(s.maxPerPayload.Load()))
	if len(files) == 0 {
		return nil, nil
	}

	id := uuid.NewString()
	s.inFlight.register(id, files)

	payload, err := s.creator.Create(files)
	if err != nil {
		// Undo the registration so the files are redelivered rather than lost.
		s.inFlight.remove(id)
		s.pending.requeueFront(files)
		return nil, wrapCreateMessageError(err)
	}

	s.logger.Debug("payload delivered", "id", id, "files", len(files))
	s.metrics.payloadDelivered(s.inFlight.len(), s.pending.len())

	return &Message{ID: id, Payload: payload, Files: files}, nil
}

// pollCycle lists the remote store, diffs the listing against the backlog,
// and retrieves every dirty descriptor into the pending queue. Cycles are
// mutually exclusive per Source.
func (s *Source) pollCycle() error {
	s.pollMu.Lock()
	defer s.pollMu.Unlock()

	observed, err := s.lister.ListFiles()
	if err != nil {
		s.metrics.listFailed()
		return wrapListError(err)
	}
	s.metrics.polled()

	dirty := s.tracker.diff(observed)
	if len(dirty) == 0 {
		return nil
	}
	s.metrics.filesDirty(len(dirty))
	s.logger.Debug("poll cycle found dirty files", "dirty", len(dirty), "observed", len(observed))

	retrieved := make([]RetrievedFile, 0, len(dirty))
	for _, d := range dirty {
		file, err := s.retriever.Retrieve(d)
		if err != nil {
			// The backlog entry was already accepted at diff time, so this
			// content version gets exactly one retrieval attempt.
			s.logger.Warn("retrieval failed, descriptor dropped until remote copy changes",
				"name", d.Name, "error", err)
			s.metrics.retrievalFailed()
			if s.onRetrieveErr != nil {
				s.onRetrieveErr(d, wrapRetrieveError(d.Name, err))
			}
			continue
		}
		retrieved = append(retrieved, RetrievedFile{Descriptor: d, File: file})
	}

	s.pending.push(retrieved...)
	s.metrics.pendingChanged(s.pending.len())
	return nil
}
