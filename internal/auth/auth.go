// Package auth defines the authentication gate guarding lock/unlock actions.
//
// The gate has exactly three outcomes: granted, cancelled by the user, or
// denied with a message. Cancellation is not an error; callers silently drop
// the pending action. A denial message is surfaced to the user verbatim.
package auth

import "context"

// Outcome is the result class of an authentication attempt.
type Outcome int

const (
	// Granted means the user proved their identity; apply the pending action.
	Granted Outcome = iota
	// Cancelled means the user backed out; drop the pending action silently.
	Cancelled
	// Denied means authentication failed; Result.Message explains why.
	Denied
)

// Result is the single value delivered per authentication attempt.
type Result struct {
	Outcome Outcome
	Message string // set when Outcome == Denied
}

// Authenticator asks the user to prove their identity for the given reason.
type Authenticator interface {
	Authenticate(ctx context.Context, reason string) Result
}

// Func adapts a function to the Authenticator interface.
type Func func(ctx context.Context, reason string) Result

func (f Func) Authenticate(ctx context.Context, reason string) Result { return f(ctx, reason) }

// Allow grants every request. Useful in tests and trusted environments.
func Allow() Authenticator {
	return Func(func(context.Context, string) Result { return Result{Outcome: Granted} })
}

// Cancel reports user cancellation for every request.
func Cancel() Authenticator {
	return Func(func(context.Context, string) Result { return Result{Outcome: Cancelled} })
}

// Deny fails every request with the given message.
func Deny(message string) Authenticator {
	return Func(func(context.Context, string) Result { return Result{Outcome: Denied, Message: message} })
}
