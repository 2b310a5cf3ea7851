package vfsource

import "sync"

// pendingQueue is the FIFO of retrieved-but-undelivered files shared by all
// consumers of a Source. Drains are atomic: two concurrent drains never
// receive overlapping items.
type pendingQueue struct {
	mu    sync.Mutex
	items []RetrievedFile
}

func newPendingQueue() *pendingQueue {
	return &pendingQueue{}
}

// push appends files to the back of the queue.
func (q *pendingQueue) push(files ...RetrievedFile) {
	if len(files) == 0 {
		return
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	q.items = append(q.items, files...)
}

// drain atomically removes up to max items from the front of the queue and
// returns them in FIFO order. max <= 0 drains everything. Returns nil when
// the queue is empty.
func (q *pendingQueue) drain(max int) []RetrievedFile {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.items) == 0 {
		return nil
	}

	n := len(q.items)
	if max > 0 && max < n {
		n = max
	}

	drained := make([]RetrievedFile, n)
	copy(drained, q.items[:n])
	q.items = q.items[n:]
	return drained
}

// requeueFront reinserts files at the front of the queue, preserving their
// relative order ahead of anything already queued. Failed payloads come back
// through here so they are retried before newer work.
func (q *pendingQueue) requeueFront(files []RetrievedFile) {
	if len(files) == 0 {
		return
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	q.items = append(append(make([]RetrievedFile, 0, len(files)+len(q.items)), files...), q.items...)
}

func (q *pendingQueue) len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}
