package pager

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/guttosm/stockpager/internal/page"
)

// Session is one viewer's document plus the controller rendering into it.
type Session struct {
	ID string

	mu         sync.Mutex
	doc        *page.Document
	controller *Controller
	lastSeen   time.Time
}

// Do runs fn with exclusive access to the session's state. Display passes of
// one session never overlap; distinct sessions run in parallel.
func (s *Session) Do(fn func(c *Controller, d *page.Document)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.controller, s.doc)
}

// Store keeps sessions in memory and drops those idle longer than ttl.
type Store struct {
	mu       sync.Mutex
	fetch    Fetcher
	ttl      time.Duration
	sessions map[string]*Session
	now      func() time.Time
}

// NewStore creates an empty store. A non-positive ttl disables expiry.
func NewStore(f Fetcher, ttl time.Duration) *Store {
	return &Store{
		fetch:    f,
		ttl:      ttl,
		sessions: make(map[string]*Session),
		now:      time.Now,
	}
}

// Get returns the live session with id and refreshes its idle timer.
func (st *Store) Get(id string) (*Session, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()

	st.sweep()
	s, ok := st.sessions[id]
	if ok {
		s.lastSeen = st.now()
	}
	return s, ok
}

// Create starts a new session with a fresh document.
func (st *Store) Create() *Session {
	st.mu.Lock()
	defer st.mu.Unlock()

	st.sweep()
	doc := page.NewDocument()
	s := &Session{
		ID:         uuid.NewString(),
		doc:        doc,
		controller: NewController(st.fetch, doc),
		lastSeen:   st.now(),
	}
	st.sessions[s.ID] = s
	return s
}

// GetOrCreate returns the session for id, or a new one when id is unknown or
// expired. created reports which happened.
func (st *Store) GetOrCreate(id string) (s *Session, created bool) {
	if id != "" {
		if s, ok := st.Get(id); ok {
			return s, false
		}
	}
	return st.Create(), true
}

// Len returns the number of live sessions.
func (st *Store) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.sweep()
	return len(st.sessions)
}

// sweep drops expired sessions; st.mu must be held.
func (st *Store) sweep() {
	if st.ttl <= 0 {
		return
	}
	cutoff := st.now().Add(-st.ttl)
	for id, s := range st.sessions {
		if s.lastSeen.Before(cutoff) {
			delete(st.sessions, id)
		}
	}
}

// Standalone runs one display pass on a throwaway document, for callers that
// only want a snapshot of page.
func Standalone(ctx context.Context, f Fetcher, pageNum int) (*page.Document, *Controller) {
	doc := page.NewDocument()
	c := NewController(f, doc)
	c.Show(ctx, pageNum)
	return doc, c
}
