// SPDX-License-Identifier: EPL-2.0

package gate

import (
	"sync"
	"time"
)

// UnlockDelay is how long a consumer waits after a grant before
// switching to the monitor view.
const UnlockDelay = 1500 * time.Millisecond

// Result of a single access-code submission.
type Result int

const (
	// Denied: the code was not accepted. Includes the mandatory
	// failures on the first two attempts.
	Denied Result = iota
	// Granted: the code matched; the gate is now locked against
	// further input and the consumer should transition after
	// UnlockDelay.
	Granted
	// Locked: a submission arrived after a grant.
	Locked
)

func (r Result) String() string {
	switch r {
	case Denied:
		return "denied"
	case Granted:
		return "granted"
	case Locked:
		return "locked"
	default:
		return "unknown"
	}
}

// Gate is the access-code prompt in front of the monitor. It is a
// cosmetic obstacle, not a security boundary: the first two attempts
// always fail no matter what was entered, and only from the third
// attempt on is the code actually compared.
type Gate struct {
	mtx      sync.Mutex
	code     string
	attempts int
	locked   bool
}

// New creates a gate that accepts code from the third attempt onward.
func New(code string) *Gate {
	return &Gate{code: code}
}

// Submit evaluates one attempt. The attempt counter keeps incrementing
// across denials; a grant locks the gate permanently.
func (g *Gate) Submit(code string) Result {
	g.mtx.Lock()
	defer g.mtx.Unlock()

	if g.locked {
		return Locked
	}

	g.attempts++

	// The first two submissions report failure regardless of input.
	if g.attempts <= 2 {
		return Denied
	}

	if code != g.code {
		return Denied
	}

	g.locked = true

	return Granted
}

// Attempts returns how many submissions the gate has seen.
func (g *Gate) Attempts() int {
	g.mtx.Lock()
	defer g.mtx.Unlock()

	return g.attempts
}

// Locked reports whether a grant already happened.
func (g *Gate) Locked() bool {
	g.mtx.Lock()
	defer g.mtx.Unlock()

	return g.locked
}
