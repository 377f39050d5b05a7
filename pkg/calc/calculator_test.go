package calc

import (
	"errors"
	"math"
	"testing"

	"github.com/step-calc/stepcalc/internal/testutil"
)

func TestChainedArithmetic(t *testing.T) {
	c := New(WithInitial(10))
	c.Multiply(3).Subtract(5)

	testutil.ApproxEqual(t, c.Result(), 25, testutil.Epsilon)
	testutil.FloatsEqual(t, c.History(), []float64{10, 30, 25})
}

func TestHistoryInvariant(t *testing.T) {
	c := New()
	steps := []func(){
		func() { c.Add(10) },
		func() { c.Multiply(-3) },
		func() { c.Absolute() },
		func() { c.Subtract(12.5) },
		func() { c.Negate() },
		func() { c.Percent() },
		func() { c.MemStore() },
		func() { c.MemRecall() },
	}

	for i, step := range steps {
		step()
		history := c.History()
		if len(history) < 1 {
			t.Fatalf("step %d: history is empty", i)
		}
		if history[len(history)-1] != c.Value() {
			t.Errorf("step %d: last history entry %g != value %g", i, history[len(history)-1], c.Value())
		}
	}
}

func TestDivide(t *testing.T) {
	c := New(WithInitial(10))
	if _, err := c.Divide(4); err != nil {
		t.Fatalf("Divide(4) failed: %v", err)
	}
	testutil.ApproxEqual(t, c.Result(), 2.5, testutil.Epsilon)
}

func TestDivideByZeroLeavesStateUntouched(t *testing.T) {
	c := New(WithInitial(7))
	c.Add(3)
	before := c.History()

	_, err := c.Divide(0)
	if !errors.Is(err, ErrDivisionByZero) {
		t.Fatalf("expected DivisionByZero, got %v", err)
	}
	testutil.FloatsEqual(t, c.History(), before)
	testutil.ApproxEqual(t, c.Value(), 10, testutil.Epsilon)
}

func TestModulo(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		operand  float64
		expected float64
	}{
		{"positive", 7, 3, 1},
		{"negative value", -7, 3, 2},
		{"negative operand", 7, -3, -2},
		{"both negative", -7, -3, -1},
		{"fractional", 7.5, 2, 1.5},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			c := New(WithInitial(test.value))
			if _, err := c.Modulo(test.operand); err != nil {
				t.Fatalf("Modulo failed: %v", err)
			}
			testutil.ApproxEqual(t, c.Value(), test.expected, testutil.Epsilon)
		})
	}

	t.Run("by zero", func(t *testing.T) {
		c := New(WithInitial(7))
		if _, err := c.Modulo(0); !errors.Is(err, ErrDivisionByZero) {
			t.Errorf("expected DivisionByZero, got %v", err)
		}
	})
}

func TestPower(t *testing.T) {
	c := New(WithInitial(2))
	if _, err := c.Power(10); err != nil {
		t.Fatalf("Power failed: %v", err)
	}
	testutil.ApproxEqual(t, c.Value(), 1024, testutil.Epsilon)

	neg := New(WithInitial(-8))
	if _, err := neg.Power(0.5); !errors.Is(err, ErrDomain) {
		t.Errorf("expected DomainError for fractional power of negative base, got %v", err)
	}
	testutil.FloatsEqual(t, neg.History(), []float64{-8})
}

func TestSqrt(t *testing.T) {
	c := New(WithInitial(16))
	if _, err := c.Sqrt(); err != nil {
		t.Fatalf("Sqrt failed: %v", err)
	}
	testutil.ApproxEqual(t, c.Result(), 4, testutil.Epsilon)

	neg := New(WithInitial(-1))
	_, err := neg.Sqrt()
	if !errors.Is(err, ErrDomain) {
		t.Fatalf("expected DomainError, got %v", err)
	}
	testutil.FloatsEqual(t, neg.History(), []float64{-1})
}

func TestLog(t *testing.T) {
	c := New(WithInitial(math.E))
	if _, err := c.Log(); err != nil {
		t.Fatalf("Log failed: %v", err)
	}
	testutil.ApproxEqual(t, c.Value(), 1, testutil.Epsilon)

	base2 := New(WithInitial(8))
	if _, err := base2.Log(2); err != nil {
		t.Fatalf("Log(2) failed: %v", err)
	}
	testutil.ApproxEqual(t, base2.Value(), 3, testutil.Epsilon)

	ten := New(WithInitial(1000))
	if _, err := ten.Log10(); err != nil {
		t.Fatalf("Log10 failed: %v", err)
	}
	testutil.ApproxEqual(t, ten.Value(), 3, testutil.Epsilon)

	for _, value := range []float64{0, -1} {
		bad := New(WithInitial(value))
		if _, err := bad.Log(); !errors.Is(err, ErrDomain) {
			t.Errorf("Log of %g: expected DomainError, got %v", value, err)
		}
	}

	badBase := New(WithInitial(8))
	if _, err := badBase.Log(1); !errors.Is(err, ErrDomain) {
		t.Errorf("Log base 1: expected DomainError, got %v", err)
	}
}

func TestScientificOps(t *testing.T) {
	tests := []struct {
		name     string
		initial  float64
		op       func(*Calculator) *Calculator
		expected float64
	}{
		{"sin", math.Pi / 2, (*Calculator).Sin, 1},
		{"cos", 0, (*Calculator).Cos, 1},
		{"tan", 0, (*Calculator).Tan, 0},
		{"exp", 1, (*Calculator).Exp, math.E},
		{"floor", 2.7, (*Calculator).Floor, 2},
		{"ceil", 2.1, (*Calculator).Ceil, 3},
		{"percent", 50, (*Calculator).Percent, 0.5},
		{"negate", 4, (*Calculator).Negate, -4},
		{"absolute", -4, (*Calculator).Absolute, 4},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			c := New(WithInitial(test.initial))
			test.op(c)
			testutil.ApproxEqual(t, c.Value(), test.expected, testutil.Epsilon)
			if c.Steps() != 2 {
				t.Errorf("expected 2 history entries, got %d", c.Steps())
			}
		})
	}
}

func TestRoundTo(t *testing.T) {
	c := New(WithInitial(2.5678))
	c.RoundTo(2)
	testutil.ApproxEqual(t, c.Value(), 2.57, testutil.Epsilon)
}

func TestUndoSequence(t *testing.T) {
	c := New()
	c.Add(10).Add(5)
	testutil.FloatsEqual(t, c.History(), []float64{0, 10, 15})

	if _, err := c.Undo(); err != nil {
		t.Fatalf("first undo failed: %v", err)
	}
	testutil.ApproxEqual(t, c.Value(), 10, testutil.Epsilon)
	testutil.FloatsEqual(t, c.History(), []float64{0, 10})

	if _, err := c.Undo(); err != nil {
		t.Fatalf("second undo failed: %v", err)
	}
	testutil.ApproxEqual(t, c.Value(), 0, testutil.Epsilon)
	testutil.FloatsEqual(t, c.History(), []float64{0})

	if _, err := c.Undo(); !errors.Is(err, ErrNothingToUndo) {
		t.Fatalf("expected NothingToUndo, got %v", err)
	}
}

func TestUndoIsInverseOfLastOp(t *testing.T) {
	ops := map[string]func(*Calculator) error{
		"add":      func(c *Calculator) error { c.Add(3); return nil },
		"multiply": func(c *Calculator) error { c.Multiply(2); return nil },
		"divide":   func(c *Calculator) error { _, err := c.Divide(4); return err },
		"sqrt":     func(c *Calculator) error { _, err := c.Sqrt(); return err },
		"recall":   func(c *Calculator) error { c.MemRecall(); return nil },
	}

	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			c := New(WithInitial(16))
			c.Add(9)
			beforeValue := c.Value()
			beforeHistory := c.History()

			if err := op(c); err != nil {
				t.Fatalf("op failed: %v", err)
			}
			if _, err := c.Undo(); err != nil {
				t.Fatalf("undo failed: %v", err)
			}

			testutil.ApproxEqual(t, c.Value(), beforeValue, testutil.Epsilon)
			testutil.FloatsEqual(t, c.History(), beforeHistory)
		})
	}
}

func TestResetThenUndoFails(t *testing.T) {
	c := New(WithInitial(42))
	c.Add(1).Add(2)
	c.Reset(0)

	testutil.FloatsEqual(t, c.History(), []float64{0})
	if _, err := c.Undo(); !errors.Is(err, ErrNothingToUndo) {
		t.Fatalf("expected NothingToUndo after reset, got %v", err)
	}
}

func TestResetToValue(t *testing.T) {
	c := New()
	c.Add(99)
	c.Reset(7)

	testutil.ApproxEqual(t, c.Value(), 7, testutil.Epsilon)
	testutil.FloatsEqual(t, c.History(), []float64{7})
}

func TestClearHistory(t *testing.T) {
	c := New()
	c.Add(1).Add(2).Add(3)
	c.ClearHistory()

	testutil.ApproxEqual(t, c.Value(), 6, testutil.Epsilon)
	testutil.FloatsEqual(t, c.History(), []float64{6})
}

func TestMemoryOps(t *testing.T) {
	c := New(WithInitial(5))

	c.MemStore()
	testutil.ApproxEqual(t, c.Memory(), 5, testutil.Epsilon)
	if c.Steps() != 1 {
		t.Errorf("MemStore must not touch history, got %d entries", c.Steps())
	}

	c.Add(3)
	c.MemRecall()
	testutil.ApproxEqual(t, c.Value(), 5, testutil.Epsilon)
	if c.Steps() != 3 {
		t.Errorf("MemRecall must append to history, got %d entries", c.Steps())
	}

	c.MemAdd()
	testutil.ApproxEqual(t, c.Memory(), 10, testutil.Epsilon)

	c.MemClear()
	testutil.ApproxEqual(t, c.Memory(), 0, testutil.Epsilon)
}

func TestMemStoreRecallIdempotence(t *testing.T) {
	c := New(WithInitial(3.5))
	c.MemStore()
	after := c.Memory()

	c.MemRecall().MemStore()
	testutil.ApproxEqual(t, c.Memory(), after, testutil.Epsilon)
}

func TestRoundedResultView(t *testing.T) {
	c := New(WithInitial(1), WithPrecision(4))
	if _, err := c.Divide(3); err != nil {
		t.Fatalf("Divide failed: %v", err)
	}

	testutil.ApproxEqual(t, c.Result(), 0.3333, 1e-12)
	if c.Value() == c.Result() {
		t.Error("rounding must not affect the stored value")
	}

	c.SetPrecision(1)
	testutil.ApproxEqual(t, c.Result(), 0.3, 1e-12)
	history := c.History()
	testutil.ApproxEqual(t, history[len(history)-1], 1.0/3.0, 1e-15)
}

func TestEqual(t *testing.T) {
	a := New(WithInitial(2))
	b := New(WithInitial(2), WithPrecision(3))
	if !a.Equal(b) {
		t.Error("calculators with the same value must be equal")
	}
	b.Add(1)
	if a.Equal(b) {
		t.Error("calculators with different values must not be equal")
	}
	if a.Equal(nil) {
		t.Error("comparison against nil must be false")
	}
}

func TestString(t *testing.T) {
	c := New(WithInitial(25))
	got := c.String()
	want := "Calculator(result=25, steps=1)"
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
