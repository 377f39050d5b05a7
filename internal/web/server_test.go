package web

import (
	"errors"
	"math"
	"testing"

	"github.com/step-calc/stepcalc/pkg/calc"
	"github.com/step-calc/stepcalc/pkg/types"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	server, err := NewServer(&Config{Addr: ":0"})
	if err != nil {
		t.Fatalf("NewServer failed: %v", err)
	}
	return server
}

func TestCreateAndLookupSession(t *testing.T) {
	server := newTestServer(t)

	session := server.CreateSession(10, 4)
	if session.ID() == "" {
		t.Fatal("session id must not be empty")
	}

	found, ok := server.Session(session.ID())
	if !ok || found != session {
		t.Fatal("session lookup failed")
	}

	state := session.Snapshot()
	if state.Result != 10 || state.Steps != 1 || state.Precision != 4 {
		t.Errorf("unexpected initial state: %+v", state)
	}
}

func TestSessionEval(t *testing.T) {
	server := newTestServer(t)
	session := server.CreateSession(0, calc.DefaultPrecision)

	state, err := session.Eval("(3 + 4) * 2")
	if err != nil {
		t.Fatalf("Eval failed: %v", err)
	}
	if state.Result != 14 {
		t.Errorf("Result = %g, want 14", state.Result)
	}
	if state.Steps != 2 {
		t.Errorf("Steps = %d, want 2", state.Steps)
	}
}

func TestSessionEvalErrorKeepsState(t *testing.T) {
	server := newTestServer(t)
	session := server.CreateSession(5, calc.DefaultPrecision)

	_, err := session.Eval("1 / 0")
	if !errors.Is(err, calc.ErrDivisionByZero) {
		t.Fatalf("expected DivisionByZero, got %v", err)
	}

	state := session.Snapshot()
	if state.Steps != 1 || state.Result != 5 {
		t.Errorf("failed eval must not mutate the session: %+v", state)
	}
}

func TestSessionApplyOps(t *testing.T) {
	server := newTestServer(t)
	session := server.CreateSession(10, calc.DefaultPrecision)

	operand := func(v float64) *float64 { return &v }

	steps := []struct {
		op      string
		operand *float64
		result  float64
	}{
		{"multiply", operand(3), 30},
		{"subtract", operand(5), 25},
		{"sqrt", nil, 5},
		{"undo", nil, 25},
		{"mem_store", nil, 25},
		{"reset", nil, 0},
		{"mem_recall", nil, 25},
	}

	for _, step := range steps {
		state, err := session.Apply(step.op, step.operand)
		if err != nil {
			t.Fatalf("Apply(%q) failed: %v", step.op, err)
		}
		if math.Abs(state.Result-step.result) > 1e-9 {
			t.Fatalf("Apply(%q): Result = %g, want %g", step.op, state.Result, step.result)
		}
	}

	if state := session.Snapshot(); state.Memory != 25 {
		t.Errorf("Memory = %g, want 25", state.Memory)
	}
}

func TestApplyRejectsBadRequests(t *testing.T) {
	server := newTestServer(t)
	session := server.CreateSession(0, calc.DefaultPrecision)

	if _, err := session.Apply("launch", nil); !errors.Is(err, ErrBadOperation) {
		t.Errorf("unknown op: expected ErrBadOperation, got %v", err)
	}
	if _, err := session.Apply("add", nil); !errors.Is(err, ErrBadOperation) {
		t.Errorf("missing operand: expected ErrBadOperation, got %v", err)
	}

	operand := 0.0
	if _, err := session.Apply("divide", &operand); !errors.Is(err, calc.ErrDivisionByZero) {
		t.Errorf("divide by zero must surface the calculator error, got %v", err)
	}
}

func TestSubscribersReceiveStateEvents(t *testing.T) {
	server := newTestServer(t)
	session := server.CreateSession(0, calc.DefaultPrecision)

	events := session.Subscribe("client-1")
	defer session.Unsubscribe("client-1")

	if _, err := session.Eval("40 + 2"); err != nil {
		t.Fatalf("Eval failed: %v", err)
	}

	select {
	case event := <-events:
		if event.Type != types.EventTypeState {
			t.Errorf("event type = %q, want %q", event.Type, types.EventTypeState)
		}
		if event.State == nil || event.State.Result != 42 {
			t.Errorf("unexpected event state: %+v", event.State)
		}
	default:
		t.Fatal("expected a buffered state event")
	}
}

func TestDeleteSessionClosesSubscribers(t *testing.T) {
	server := newTestServer(t)
	session := server.CreateSession(0, calc.DefaultPrecision)
	events := session.Subscribe("client-1")

	if !server.DeleteSession(session.ID()) {
		t.Fatal("DeleteSession returned false for a live session")
	}
	if server.SessionCount() != 0 {
		t.Errorf("SessionCount = %d, want 0", server.SessionCount())
	}

	if _, open := <-events; open {
		t.Error("subscriber channel must be closed after session deletion")
	}

	if server.DeleteSession(session.ID()) {
		t.Error("deleting a missing session must return false")
	}
}
