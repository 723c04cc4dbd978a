package httpclient

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/restdeck/restdeck/internal/domain"
)

// Manager launches dispatches as background tasks. Concurrent in-flight
// calls are allowed; each is keyed by a generated id so completions can
// be told apart. There is no cancellation: a call runs to completion or
// transport failure.
type Manager struct {
	dispatcher *Dispatcher
	logger     *slog.Logger

	mu       sync.Mutex
	inflight map[string]struct{}
}

// NewManager wraps a dispatcher with in-flight tracking.
func NewManager(dispatcher *Dispatcher, logger *slog.Logger) *Manager {
	return &Manager{
		dispatcher: dispatcher,
		logger:     logger,
		inflight:   make(map[string]struct{}),
	}
}

// Dispatch snapshots the request, starts the call in the background, and
// returns its id immediately. The done callback runs on the dispatch
// goroutine once the record is ready; callers that own UI state must hop
// back to their event thread themselves.
func (m *Manager) Dispatch(req domain.Request, done func(id string, record domain.ResponseRecord)) string {
	id := uuid.NewString()
	snapshot := req.Clone()

	m.mu.Lock()
	m.inflight[id] = struct{}{}
	m.mu.Unlock()

	m.logger.Debug("dispatch started",
		slog.String("id", id),
		slog.String("method", string(snapshot.Method)),
		slog.String("url", snapshot.URL))

	go func() {
		record := m.dispatcher.Execute(context.Background(), snapshot)

		m.mu.Lock()
		delete(m.inflight, id)
		remaining := len(m.inflight)
		m.mu.Unlock()

		m.logger.Debug("dispatch finished",
			slog.String("id", id),
			slog.Int("status", record.StatusCode),
			slog.Int("in_flight", remaining))

		if done != nil {
			done(id, record)
		}
	}()

	return id
}

// InFlight reports the number of outstanding dispatches.
func (m *Manager) InFlight() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.inflight)
}
