package memory

import (
	"context"
	"sync"
	"time"

	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/checkout"
	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/kernel"
	"github.com/bossnaboss212/dernier-occase/internal/pkg/errs"
)

// InMemorySessionStore keeps at most one in-flight checkout session per
// customer. Sessions are owned by their customer's conversation, so the
// lock only guards the map, not the sessions themselves.
type InMemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[kernel.UUID]*checkout.Session
}

// NewInMemorySessionStore creates an empty session store.
func NewInMemorySessionStore() *InMemorySessionStore {
	return &InMemorySessionStore{sessions: make(map[kernel.UUID]*checkout.Session)}
}

// Get returns the customer's active session.
func (s *InMemorySessionStore) Get(
	ctx context.Context,
	customerID kernel.UUID,
) (*checkout.Session, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	session, found := s.sessions[customerID]
	s.mu.RUnlock()

	if !found {
		return nil, errs.NewObjectNotFoundError("checkout session", customerID.String())
	}

	return session, nil
}

// Save stores the session, replacing any previous one for the same customer.
func (s *InMemorySessionStore) Save(ctx context.Context, session *checkout.Session) error {
	if err := session.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	s.sessions[session.CustomerID()] = session
	s.mu.Unlock()

	return nil
}

// Delete discards the customer's session. Deleting an absent session is not
// an error.
func (s *InMemorySessionStore) Delete(ctx context.Context, customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	delete(s.sessions, customerID)
	s.mu.Unlock()

	return nil
}

// DeleteIdleBefore drops every session whose last activity predates cutoff
// and reports how many were dropped.
func (s *InMemorySessionStore) DeleteIdleBefore(
	ctx context.Context,
	cutoff time.Time,
) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	dropped := 0
	for customerID, session := range s.sessions {
		if session.UpdatedAt().Before(cutoff) {
			delete(s.sessions, customerID)
			dropped++
		}
	}

	return dropped, nil
}
