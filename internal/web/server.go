// Package web implements the calculator session service: one calculator
// per session, held in memory, mutated over HTTP and observed over
// WebSocket. Each session serializes access to its calculator with a
// mutex; the calc package itself stays single-threaded.
package web

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sync"
	"time"

	"github.com/step-calc/stepcalc/pkg/calc"
	"github.com/step-calc/stepcalc/pkg/types"
)

// Config is the session service configuration
type Config struct {
	Addr       string
	Passphrase string
	Debug      bool
}

// Server owns the session registry
type Server struct {
	config   *Config
	auth     *Authenticator
	sessions map[string]*Session
	mu       sync.RWMutex
}

// NewServer creates a session server. A non-empty passphrase enables
// token authentication for the whole API.
func NewServer(config *Config) (*Server, error) {
	s := &Server{
		config:   config,
		sessions: make(map[string]*Session),
	}
	if config.Passphrase != "" {
		auth, err := NewAuthenticator(config.Passphrase)
		if err != nil {
			return nil, fmt.Errorf("failed to set up authentication: %w", err)
		}
		s.auth = auth
	}
	return s, nil
}

// Auth returns the authenticator, or nil when authentication is disabled
func (s *Server) Auth() *Authenticator {
	return s.auth
}

// CreateSession creates a session with its own calculator
func (s *Server) CreateSession(initial float64, precision int) *Session {
	session := &Session{
		id:          newSessionID(),
		calc:        calc.New(calc.WithInitial(initial), calc.WithPrecision(precision)),
		subscribers: make(map[string]chan *types.UpdateEvent),
	}

	s.mu.Lock()
	s.sessions[session.id] = session
	s.mu.Unlock()
	return session
}

// Session looks up a session by id
func (s *Server) Session(id string) (*Session, bool) {
	s.mu.RLock()
	session, ok := s.sessions[id]
	s.mu.RUnlock()
	return session, ok
}

// DeleteSession drops a session and closes its subscriber channels
func (s *Server) DeleteSession(id string) bool {
	s.mu.Lock()
	session, ok := s.sessions[id]
	delete(s.sessions, id)
	s.mu.Unlock()

	if ok {
		session.closeSubscribers()
	}
	return ok
}

// SessionCount returns the number of live sessions
func (s *Server) SessionCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Session binds one calculator to one session id
type Session struct {
	id   string
	mu   sync.Mutex
	calc *calc.Calculator

	subscribers map[string]chan *types.UpdateEvent
	subMu       sync.RWMutex
}

// ID returns the session id
func (sess *Session) ID() string {
	return sess.id
}

// Snapshot returns the current session state
func (sess *Session) Snapshot() *types.SessionState {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.snapshotLocked()
}

// snapshotLocked builds a state snapshot; callers hold sess.mu
func (sess *Session) snapshotLocked() *types.SessionState {
	return &types.SessionState{
		ID:        sess.id,
		Result:    sess.calc.Result(),
		History:   sess.calc.History(),
		Memory:    sess.calc.Memory(),
		Steps:     sess.calc.Steps(),
		Precision: sess.calc.Precision(),
		UpdatedAt: time.Now(),
	}
}

// Eval evaluates an expression against the session calculator. On
// success the new state is published to all subscribers.
func (sess *Session) Eval(expression string) (*types.SessionState, error) {
	sess.mu.Lock()
	if _, err := sess.calc.Expr(expression); err != nil {
		sess.mu.Unlock()
		return nil, err
	}
	state := sess.snapshotLocked()
	sess.mu.Unlock()

	sess.publish(state)
	return state, nil
}

// Apply runs a named mutating operation against the session calculator.
// On success the new state is published to all subscribers.
func (sess *Session) Apply(op string, operand *float64) (*types.SessionState, error) {
	sess.mu.Lock()
	if err := applyOp(sess.calc, op, operand); err != nil {
		sess.mu.Unlock()
		return nil, err
	}
	state := sess.snapshotLocked()
	sess.mu.Unlock()

	sess.publish(state)
	return state, nil
}

// Subscribe registers a state-event channel for a websocket client
func (sess *Session) Subscribe(clientID string) chan *types.UpdateEvent {
	ch := make(chan *types.UpdateEvent, 16)
	sess.subMu.Lock()
	sess.subscribers[clientID] = ch
	sess.subMu.Unlock()
	return ch
}

// Unsubscribe removes a client and closes its channel
func (sess *Session) Unsubscribe(clientID string) {
	sess.subMu.Lock()
	if ch, ok := sess.subscribers[clientID]; ok {
		delete(sess.subscribers, clientID)
		close(ch)
	}
	sess.subMu.Unlock()
}

// publish fans a state event out to all subscribers, dropping events
// for clients whose channel is full.
func (sess *Session) publish(state *types.SessionState) {
	event := &types.UpdateEvent{
		Type:      types.EventTypeState,
		Timestamp: time.Now(),
		State:     state,
	}

	sess.subMu.RLock()
	defer sess.subMu.RUnlock()
	for _, ch := range sess.subscribers {
		select {
		case ch <- event:
		default:
		}
	}
}

// closeSubscribers closes every subscriber channel
func (sess *Session) closeSubscribers() {
	sess.subMu.Lock()
	for id, ch := range sess.subscribers {
		delete(sess.subscribers, id)
		close(ch)
	}
	sess.subMu.Unlock()
}

// newSessionID returns a random 16-hex-digit session id
func newSessionID() string {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand never fails on supported platforms
		return fmt.Sprintf("%016x", time.Now().UnixNano())
	}
	return hex.EncodeToString(buf)
}
