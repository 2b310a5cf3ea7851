package vfsource

import "log/slog"

// Option is a functional option for configuring a Source.
type Option func(*Source)

// WithMaxMessagesPerPayload bounds the number of files per payload. n <= 0
// means unbounded, which is the default: every dirty file goes out in one
// payload.
func WithMaxMessagesPerPayload(n int) Option {
	return func(s *Source) {
		s.SetMaxMessagesPerPayload(n)
	}
}

// WithMessageCreator sets the MessageCreator used to build payloads. The
// default creator returns the retrieved files themselves.
func WithMessageCreator(creator MessageCreator) Option {
	return func(s *Source) {
		if creator != nil {
			s.creator = creator
		}
	}
}

// WithLogger sets the logger. The Source is silent by default.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Source) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithMetrics attaches prometheus instrumentation to the Source.
func WithMetrics(m *Metrics) Option {
	return func(s *Source) {
		s.metrics = m
	}
}

// WithRetrievalErrorHandler sets the handler called when a single file fails
// to retrieve during a poll cycle. Retrieval failures are otherwise absorbed.
func WithRetrievalErrorHandler(handler RetrievalErrorHandler) Option {
	return func(s *Source) {
		s.onRetrieveErr = handler
	}
}
