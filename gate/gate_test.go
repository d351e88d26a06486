// SPDX-License-Identifier: EPL-2.0

package gate

import "testing"

func TestGate_FirstTwoAttemptsAlwaysFail(t *testing.T) {
	t.Parallel()

	g := New("2040")

	// Even the correct code fails on attempts one and two.
	if got := g.Submit("2040"); got != Denied {
		t.Errorf("attempt 1 = %v, want Denied", got)
	}

	if got := g.Submit("2040"); got != Denied {
		t.Errorf("attempt 2 = %v, want Denied", got)
	}
}

func TestGate_ThirdAttemptCorrectCodeGranted(t *testing.T) {
	t.Parallel()

	g := New("2040")
	g.Submit("2040")
	g.Submit("2040")

	if got := g.Submit("2040"); got != Granted {
		t.Errorf("attempt 3 with correct code = %v, want Granted", got)
	}

	if !g.Locked() {
		t.Error("Locked() = false after a grant")
	}
}

func TestGate_ThirdAttemptWrongCodeDenied(t *testing.T) {
	t.Parallel()

	g := New("2040")
	g.Submit("wrong")
	g.Submit("wrong")

	if got := g.Submit("still wrong"); got != Denied {
		t.Errorf("attempt 3 with wrong code = %v, want Denied", got)
	}

	// The counter keeps incrementing past the grace attempts.
	if got := g.Attempts(); got != 3 {
		t.Errorf("Attempts() = %d, want 3", got)
	}

	// A later correct code still works.
	if got := g.Submit("2040"); got != Granted {
		t.Errorf("attempt 4 with correct code = %v, want Granted", got)
	}

	if got := g.Attempts(); got != 4 {
		t.Errorf("Attempts() = %d, want 4", got)
	}
}

func TestGate_LockedAfterGrant(t *testing.T) {
	t.Parallel()

	g := New("2040")
	g.Submit("x")
	g.Submit("x")
	g.Submit("2040")

	if got := g.Submit("2040"); got != Locked {
		t.Errorf("submission after grant = %v, want Locked", got)
	}

	if got := g.Attempts(); got != 3 {
		t.Errorf("Attempts() = %d, want 3 (locked submissions don't count)", got)
	}
}

func TestResult_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		r    Result
		want string
	}{
		{Denied, "denied"},
		{Granted, "granted"},
		{Locked, "locked"},
		{Result(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.r.String(); got != tt.want {
			t.Errorf("Result(%d).String() = %q, want %q", tt.r, got, tt.want)
		}
	}
}
