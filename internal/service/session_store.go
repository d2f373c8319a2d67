package service

import (
	"errors"
	"sync"
	"time"

	"restaurant-pos/internal/domain"
)

var ErrSessionNotFound = errors.New("session not found")

// SessionStore owns every live cart session and the table→session
// binding. It is explicit injected state, never package-level: each
// table id maps to at most one session, and sessions for different
// tables stay fully isolated.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*domain.Session
	byTable  map[int]string
}

func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*domain.Session),
		byTable:  make(map[int]string),
	}
}

func (s *SessionStore) Put(session *domain.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = session
	if session.TableID != nil {
		s.byTable[*session.TableID] = session.ID
	}
}

func (s *SessionStore) Get(id string) (*domain.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[id]
	return session, ok
}

func (s *SessionStore) ByTable(tableID int) (*domain.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.byTable[tableID]
	if !ok {
		return nil, false
	}
	session, ok := s.sessions[id]
	return session, ok
}

// Update runs fn on the session under the store lock. All cart
// mutations go through here so repeated user actions cannot interleave.
func (s *SessionStore) Update(id string, fn func(*domain.Session) error) (*domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}

	prevTable := session.TableID
	if err := fn(session); err != nil {
		return nil, err
	}

	if prevTable != nil && (session.TableID == nil || *session.TableID != *prevTable) {
		delete(s.byTable, *prevTable)
	}
	if session.TableID != nil {
		s.byTable[*session.TableID] = session.ID
	}
	return session, nil
}

// TableBinding is the floor-view projection of one table→session
// binding, copied out under the store lock. Readers work from these
// copies and never touch live session state.
type TableBinding struct {
	TableID   int
	SessionID string
	Items     int
	StartedAt *time.Time
}

func (b TableBinding) summary() *domain.OrderSummary {
	elapsed := time.Duration(0)
	if b.StartedAt != nil {
		elapsed = time.Since(*b.StartedAt)
	}
	return &domain.OrderSummary{
		ID:    b.SessionID,
		Items: b.Items,
		Time:  domain.FormatDuration(elapsed),
	}
}

// BoundTables snapshots every table currently bound to a session.
func (s *SessionStore) BoundTables() []TableBinding {
	s.mu.RLock()
	defer s.mu.RUnlock()
	bindings := make([]TableBinding, 0, len(s.byTable))
	for tableID, id := range s.byTable {
		session, ok := s.sessions[id]
		if !ok {
			continue
		}
		binding := TableBinding{
			TableID:   tableID,
			SessionID: id,
			Items:     session.ItemCount(),
		}
		if session.StartedAt != nil {
			started := *session.StartedAt
			binding.StartedAt = &started
		}
		bindings = append(bindings, binding)
	}
	return bindings
}

func (s *SessionStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[id]
	if !ok {
		return
	}
	if session.TableID != nil {
		delete(s.byTable, *session.TableID)
	}
	delete(s.sessions, id)
}
