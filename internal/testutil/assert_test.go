package testutil

import (
	"errors"
	"fmt"
	"testing"
)

// Failure paths cannot be observed without a fake testing.TB, so these
// exercise the success paths and the message formatting directly.

func TestAssertEqual_Success(t *testing.T) {
	AssertEqual(t, "hello", "hello")
	AssertEqual(t, []int{1, 2, 3}, []int{1, 2, 3})
	AssertEqual(t, map[string]uint64{"e2e4": 20}, map[string]uint64{"e2e4": 20}, "divide for %s", "start")
}

func TestAssertNoError_Success(t *testing.T) {
	AssertNoError(t, nil)
}

func TestAssertErrorIs_Success(t *testing.T) {
	sentinel := errors.New("sentinel")
	AssertErrorIs(t, fmt.Errorf("context: %w", sentinel), sentinel)
}

func TestAssertTrueFalse_Success(t *testing.T) {
	AssertTrue(t, len("e4") == 2)
	AssertFalse(t, len("e4") == 0)
}

func TestFormatMessage(t *testing.T) {
	tests := []struct {
		name string
		args []interface{}
		want string
	}{
		{"empty", nil, ""},
		{"single string", []interface{}{"simple message"}, "simple message"},
		{"format string", []interface{}{"depth %d", 3}, "depth 3"},
		{"non-string", []interface{}{42}, "42"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatMessage(tt.args...); got != tt.want {
				t.Errorf("formatMessage(%v) = %q; want %q", tt.args, got, tt.want)
			}
		})
	}
}

func TestPositionsCatalogue(t *testing.T) {
	seen := make(map[string]bool)
	for _, p := range Positions {
		if p.Name == "" || p.FEN == "" {
			t.Errorf("position %+v missing name or FEN", p)
		}
		if seen[p.Name] {
			t.Errorf("duplicate position name %q", p.Name)
		}
		seen[p.Name] = true
		if len(p.Nodes) == 0 {
			t.Errorf("position %q has no perft counts", p.Name)
		}
	}
	if _, ok := PositionByName("start"); !ok {
		t.Error("PositionByName(start) not found")
	}
	if _, ok := PositionByName("missing"); ok {
		t.Error("PositionByName(missing) found")
	}
}
