// Package handlers implements the HTTP and WebSocket endpoints of the
// session service.
package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/step-calc/stepcalc/internal/web"
	"github.com/step-calc/stepcalc/internal/web/middleware"
	"github.com/step-calc/stepcalc/pkg/calc"
	"github.com/step-calc/stepcalc/pkg/types"
)

// generateClientID returns a unique id for a websocket client
func generateClientID() string {
	return strconv.FormatInt(time.Now().UnixNano(), 36)
}

// APIHandler serves the session API
type APIHandler struct {
	server   *web.Server
	upgrader websocket.Upgrader
}

// NewAPIHandler creates the API handler
func NewAPIHandler(server *web.Server) *APIHandler {
	return &APIHandler{
		server: server,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				// Cross-origin browser clients are expected; auth is
				// handled by the token middleware.
				return true
			},
		},
	}
}

// HandleAuth exchanges the service passphrase for a bearer token
func (h *APIHandler) HandleAuth() http.Handler {
	return middleware.JSON(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			middleware.WriteJSONError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
		auth := h.server.Auth()
		if auth == nil {
			middleware.WriteJSONError(w, http.StatusNotFound, "authentication is disabled")
			return
		}

		var req types.AuthRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			middleware.WriteJSONError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		token, err := auth.IssueToken(req.Passphrase)
		if err != nil {
			middleware.WriteJSONError(w, http.StatusUnauthorized, "invalid passphrase")
			return
		}
		json.NewEncoder(w).Encode(types.AuthResponse{Token: token})
	}))
}

// HandleSessions creates sessions (POST /api/sessions)
func (h *APIHandler) HandleSessions() http.Handler {
	return middleware.JSON(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			middleware.WriteJSONError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}

		req := types.CreateSessionRequest{}
		if r.Body != nil && r.ContentLength != 0 {
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				middleware.WriteJSONError(w, http.StatusBadRequest, "invalid request body")
				return
			}
		}

		initial := 0.0
		if req.Initial != nil {
			initial = *req.Initial
		}
		precision := calc.DefaultPrecision
		if req.Precision != nil {
			precision = *req.Precision
		}

		session := h.server.CreateSession(initial, precision)
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(session.Snapshot())
	}))
}

// HandleSession serves one session: GET and DELETE on
// /api/sessions/{id}, POST on /api/sessions/{id}/expr and
// /api/sessions/{id}/op.
func (h *APIHandler) HandleSession() http.Handler {
	return middleware.JSON(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rest := strings.TrimPrefix(r.URL.Path, "/api/sessions/")
		id, action, _ := strings.Cut(rest, "/")
		if id == "" {
			middleware.WriteJSONError(w, http.StatusBadRequest, "missing session id")
			return
		}

		session, ok := h.server.Session(id)
		if !ok {
			middleware.WriteJSONError(w, http.StatusNotFound, "session not found")
			return
		}

		switch {
		case action == "" && r.Method == http.MethodGet:
			json.NewEncoder(w).Encode(session.Snapshot())
		case action == "" && r.Method == http.MethodDelete:
			h.server.DeleteSession(id)
			w.WriteHeader(http.StatusNoContent)
		case action == "expr" && r.Method == http.MethodPost:
			h.handleExpr(w, r, session)
		case action == "op" && r.Method == http.MethodPost:
			h.handleOp(w, r, session)
		default:
			middleware.WriteJSONError(w, http.StatusMethodNotAllowed, "method not allowed")
		}
	}))
}

// handleExpr evaluates an expression against the session
func (h *APIHandler) handleExpr(w http.ResponseWriter, r *http.Request, session *web.Session) {
	var req types.ExprRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Expr == "" {
		middleware.WriteJSONError(w, http.StatusBadRequest, "missing expression")
		return
	}

	state, err := session.Eval(req.Expr)
	if err != nil {
		writeCalcError(w, err)
		return
	}
	json.NewEncoder(w).Encode(state)
}

// handleOp applies a named operation to the session
func (h *APIHandler) handleOp(w http.ResponseWriter, r *http.Request, session *web.Session) {
	var req types.OpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Op == "" {
		middleware.WriteJSONError(w, http.StatusBadRequest, "missing operation")
		return
	}

	state, err := session.Apply(req.Op, req.Operand)
	if err != nil {
		if errors.Is(err, web.ErrBadOperation) {
			middleware.WriteJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeCalcError(w, err)
		return
	}
	json.NewEncoder(w).Encode(state)
}

// HandleWS streams state updates for one session over a websocket
// (GET /api/ws/{id}). Incoming frames are treated as expression
// requests and evaluated like the REST endpoint.
func (h *APIHandler) HandleWS() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimPrefix(r.URL.Path, "/api/ws/")
		session, ok := h.server.Session(id)
		if !ok {
			middleware.WriteJSONError(w, http.StatusNotFound, "session not found")
			return
		}

		conn, err := h.upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Printf("websocket upgrade failed: %v", err)
			return
		}
		defer conn.Close()

		clientID := generateClientID()
		events := session.Subscribe(clientID)
		defer session.Unsubscribe(clientID)

		// gorilla connections allow one concurrent writer; the event
		// forwarder and the read loop share this lock.
		var writeMu sync.Mutex
		writeJSON := func(v interface{}) error {
			writeMu.Lock()
			defer writeMu.Unlock()
			return conn.WriteJSON(v)
		}

		if err := writeJSON(&types.UpdateEvent{
			Type:      types.EventTypeState,
			Timestamp: time.Now(),
			State:     session.Snapshot(),
		}); err != nil {
			return
		}

		go func() {
			for event := range events {
				if err := writeJSON(event); err != nil {
					return
				}
			}
		}()

		h.readLoop(conn, session, writeJSON)
	})
}

// readLoop evaluates expression frames until the client goes away
func (h *APIHandler) readLoop(conn *websocket.Conn, session *web.Session, writeJSON func(interface{}) error) {
	for {
		var req types.ExprRequest
		if err := conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("websocket read failed: %v", err)
			}
			return
		}
		if req.Expr == "" {
			continue
		}

		if _, err := session.Eval(req.Expr); err != nil {
			// Successful results reach the client via the subscriber
			// stream; only errors are sent directly.
			event := &types.UpdateEvent{
				Type:      types.EventTypeError,
				Timestamp: time.Now(),
				Error:     err.Error(),
			}
			var calcErr *calc.CalcError
			if errors.As(err, &calcErr) {
				event.Kind = calcErr.Kind.String()
			}
			if writeErr := writeJSON(event); writeErr != nil {
				return
			}
		}
	}
}

// writeCalcError maps a calculator error onto an API error response
func writeCalcError(w http.ResponseWriter, err error) {
	var calcErr *calc.CalcError
	if errors.As(err, &calcErr) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(types.ErrorResponse{
			Error: calcErr.Message,
			Kind:  calcErr.Kind.String(),
		})
		return
	}
	middleware.WriteJSONError(w, http.StatusInternalServerError, err.Error())
}
