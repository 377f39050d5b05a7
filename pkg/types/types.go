// Package types holds the wire types of the stepcalc session API.
package types

import "time"

// SessionState is a snapshot of one calculator session
type SessionState struct {
	// ID identifies the session
	ID string `json:"id"`
	// Result is the current value rounded to the session precision
	Result float64 `json:"result"`
	// History is the ordered value history, oldest first
	History []float64 `json:"history"`
	// Memory is the memory register
	Memory float64 `json:"memory"`
	// Steps is the number of history entries
	Steps int `json:"steps"`
	// Precision is the display precision in decimal digits
	Precision int `json:"precision"`
	// UpdatedAt is when the snapshot was taken
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateSessionRequest creates a new calculator session
type CreateSessionRequest struct {
	Initial   *float64 `json:"initial,omitempty"`
	Precision *int     `json:"precision,omitempty"`
}

// ExprRequest evaluates an expression against a session
type ExprRequest struct {
	Expr string `json:"expr"`
}

// OpRequest applies a named mutating operation to a session
type OpRequest struct {
	Op      string   `json:"op"`
	Operand *float64 `json:"operand,omitempty"`
}

// UpdateEvent is pushed over the websocket after every successful mutation
type UpdateEvent struct {
	Type      string        `json:"type"`
	Timestamp time.Time     `json:"timestamp"`
	State     *SessionState `json:"state,omitempty"`
	Error     string        `json:"error,omitempty"`
	Kind      string        `json:"kind,omitempty"`
}

// Event type values for UpdateEvent.Type.
const (
	EventTypeState = "state"
	EventTypeError = "error"
)

// AuthRequest exchanges the service passphrase for a bearer token
type AuthRequest struct {
	Passphrase string `json:"passphrase"`
}

// AuthResponse carries the issued bearer token
type AuthResponse struct {
	Token string `json:"token"`
}

// ErrorResponse is the JSON error body of the API
type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}
