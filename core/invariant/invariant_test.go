package invariant_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/logic-lang/logicopt/core/invariant"
)

// TestPreconditionPass verifies Precondition does not panic when condition is true
func TestPreconditionPass(t *testing.T) {
	x := 1
	invariant.Precondition(true, "this should pass")
	invariant.Precondition(x == 1, "math works")
	invariant.Precondition(len("hello") > 0, "string not empty")
}

// TestPreconditionFail verifies Precondition panics with the expected message
func TestPreconditionFail(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic, got none")
		}
		msg := fmt.Sprint(r)
		if !strings.Contains(msg, "PRECONDITION VIOLATION") {
			t.Errorf("panic message missing kind: %q", msg)
		}
		if !strings.Contains(msg, "node count was 3") {
			t.Errorf("panic message missing formatted detail: %q", msg)
		}
	}()
	invariant.Precondition(false, "node count was %d", 3)
}

// TestPostconditionFail verifies Postcondition panics with the expected kind
func TestPostconditionFail(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic, got none")
		}
		if !strings.Contains(fmt.Sprint(r), "POSTCONDITION VIOLATION") {
			t.Errorf("panic message missing kind: %v", r)
		}
	}()
	invariant.Postcondition(false, "result must not be nil")
}

// TestInvariantFail verifies Invariant panics with the expected kind
func TestInvariantFail(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic, got none")
		}
		if !strings.Contains(fmt.Sprint(r), "INVARIANT VIOLATION") {
			t.Errorf("panic message missing kind: %v", r)
		}
	}()
	invariant.Invariant(false, "rewriter must converge")
}

// TestNotNil verifies nil and typed-nil detection
func TestNotNil(t *testing.T) {
	invariant.NotNil("value", "s")
	invariant.NotNil(42, "n")

	cases := []struct {
		name  string
		value interface{}
	}{
		{"untyped nil", nil},
		{"typed nil pointer", (*int)(nil)},
		{"nil slice", []int(nil)},
		{"nil map", map[string]int(nil)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Fatalf("expected panic for %s", tc.name)
				}
			}()
			invariant.NotNil(tc.value, "arg")
		})
	}
}

// TestFailureIncludesLocation verifies panics carry a file:line frame
func TestFailureIncludesLocation(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic, got none")
		}
		if !strings.Contains(fmt.Sprint(r), "invariant_test.go") {
			t.Errorf("panic message missing call site: %v", r)
		}
	}()
	invariant.Invariant(false, "location check")
}
