// Package session tracks per-conversation state. One session maps to one
// conversation, one cart and one last-order pointer.
package session

import (
	"crypto/rand"
	"fmt"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/novalabs/nova-agent-backend/internal/barista"
	"github.com/novalabs/nova-agent-backend/internal/cart"
	"github.com/novalabs/nova-agent-backend/internal/orders"
)

// State is everything a single conversation owns. The cart is lock-free by
// design: exactly one conversation drives a session at a time.
type State struct {
	id        string
	createdAt time.Time
	cart      *cart.Cart
	lastOrder *orders.Order
	userName  string
	coffee    *barista.Collector
}

func newState(id string) *State {
	return &State{
		id:        id,
		createdAt: time.Now().UTC(),
		cart:      cart.New(),
		coffee:    barista.NewCollector(),
	}
}

func (s *State) ID() string {
	return s.id
}

func (s *State) CreatedAt() time.Time {
	return s.createdAt
}

func (s *State) Cart() *cart.Cart {
	return s.cart
}

func (s *State) LastOrder() *orders.Order {
	return s.lastOrder
}

func (s *State) SetLastOrder(order *orders.Order) {
	s.lastOrder = order
}

func (s *State) UserName() string {
	return s.userName
}

func (s *State) SetUserName(name string) {
	s.userName = name
}

func (s *State) Coffee() *barista.Collector {
	return s.coffee
}

// Manager hands out and tracks live sessions. Session ids are ULIDs so they
// sort by creation time.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*State
}

func NewManager() *Manager {
	return &Manager{sessions: make(map[string]*State)}
}

// Create registers a new session and returns its state.
func (m *Manager) Create() *State {
	id := ulid.MustNew(ulid.Timestamp(time.Now().UTC()), rand.Reader).String()
	state := newState(id)

	m.mu.Lock()
	m.sessions[id] = state
	m.mu.Unlock()
	return state
}

// Get returns the session for the id, if it is still live.
func (m *Manager) Get(id string) (*State, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	state, ok := m.sessions[id]
	return state, ok
}

// End destroys the session, clearing its cart first.
func (m *Manager) End(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	state, ok := m.sessions[id]
	if !ok {
		return fmt.Errorf("session %s not found", id)
	}
	state.cart.Clear()
	delete(m.sessions, id)
	return nil
}

// Len reports the number of live sessions.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
