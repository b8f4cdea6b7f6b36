// Package store owns the current AppState and applies dispatched actions to
// it one at a time.
package store

import (
	"io"
	"sync"

	"charm-wallet-state/appstate"

	"github.com/charmbracelet/log"
)

// Listener is called after every dispatch with the previous state, the new
// state and the action that produced it.
type Listener func(prev, next appstate.AppState, action appstate.Action)

// Store serialises dispatches against a single AppState.
type Store struct {
	mu        sync.Mutex
	state     appstate.AppState
	listeners map[int]Listener
	order     []int
	nextID    int
	logger    *log.Logger

	history    []appstate.ActionType
	historyCap int
	historyPos int
}

// Option configures a Store.
type Option func(*Store)

// WithLogger logs every dispatch at debug level to l.
func WithLogger(l *log.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithHistory keeps the types of the last n dispatched actions.
func WithHistory(n int) Option {
	return func(s *Store) {
		if n > 0 {
			s.historyCap = n
		}
	}
}

// New returns a store holding initial.
func New(initial appstate.AppState, opts ...Option) *Store {
	s := &Store{
		state:     initial,
		listeners: make(map[int]Listener),
		logger:    log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns the current state.
func (s *Store) State() appstate.AppState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Dispatch reduces action into the current state and notifies listeners.
// Listeners run on the dispatching goroutine after the lock is released, so
// they may call State or Dispatch.
func (s *Store) Dispatch(action appstate.Action) appstate.AppState {
	if action == nil {
		return s.State()
	}

	s.mu.Lock()
	prev := s.state
	next := appstate.Reduce(prev, action)
	s.state = next
	s.record(action.Type())
	listeners := make([]Listener, 0, len(s.order))
	for _, id := range s.order {
		listeners = append(listeners, s.listeners[id])
	}
	s.mu.Unlock()

	if _, unknown := action.(appstate.Unknown); unknown {
		s.logger.Debug("ignored action", "type", action.Type())
	} else {
		s.logger.Debug("dispatch", "type", action.Type())
	}

	for _, l := range listeners {
		l(prev, next, action)
	}
	return next
}

// Subscribe registers l and returns a function that removes it.
func (s *Store) Subscribe(l Listener) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.listeners[id] = l
	s.order = append(s.order, id)

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			delete(s.listeners, id)
			for i, v := range s.order {
				if v == id {
					s.order = append(s.order[:i], s.order[i+1:]...)
					break
				}
			}
		})
	}
}

func (s *Store) record(t appstate.ActionType) {
	if s.historyCap == 0 {
		return
	}
	if len(s.history) < s.historyCap {
		s.history = append(s.history, t)
		return
	}
	s.history[s.historyPos] = t
	s.historyPos = (s.historyPos + 1) % s.historyCap
}

// History returns recorded action types, oldest first.
func (s *Store) History() []appstate.ActionType {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]appstate.ActionType, 0, len(s.history))
	out = append(out, s.history[s.historyPos:]...)
	out = append(out, s.history[:s.historyPos]...)
	return out
}
