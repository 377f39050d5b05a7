package errors

import (
	"errors"
	"strings"
	"testing"

	"github.com/step-calc/stepcalc/pkg/calc"
)

func TestFormatCalcError(t *testing.T) {
	f := &Formatter{}

	_, err := calc.New().Undo()
	out := f.Format(err)

	if !strings.Contains(out, "nothing to undo") {
		t.Errorf("output missing message: %q", out)
	}
	if !strings.Contains(out, "💡") {
		t.Errorf("output missing suggestion: %q", out)
	}
	if strings.Contains(out, "\033[") {
		t.Errorf("color must be disabled by default: %q", out)
	}
}

func TestFormatGenericError(t *testing.T) {
	f := &Formatter{}
	out := f.Format(errors.New("boom"))
	if !strings.Contains(out, "boom") {
		t.Errorf("output missing message: %q", out)
	}
}

func TestFormatNil(t *testing.T) {
	f := &Formatter{}
	if out := f.Format(nil); out != "" {
		t.Errorf("Format(nil) = %q, want empty", out)
	}
}

func TestColorEnabled(t *testing.T) {
	f := &Formatter{}
	f.SetColorEnabled(true)

	_, err := calc.Compute("1 / 0")
	out := f.Format(err)
	if !strings.Contains(out, "\033[31m") {
		t.Errorf("output missing red color code: %q", out)
	}
}
