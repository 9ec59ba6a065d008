package auth

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// TerminalGate is an interactive stand-in for a platform authentication
// prompt: it prints the reason and reads a yes/no answer. "y"/"yes" grants,
// anything else cancels; a read failure is a denial.
type TerminalGate struct {
	In  io.Reader
	Out io.Writer
}

// Authenticate prompts once and maps the answer to an outcome.
func (g *TerminalGate) Authenticate(_ context.Context, reason string) Result {
	fmt.Fprintf(g.Out, "%s [y/N]: ", reason)

	line, err := bufio.NewReader(g.In).ReadString('\n')
	if err != nil && line == "" {
		return Result{Outcome: Denied, Message: "could not read confirmation: " + err.Error()}
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return Result{Outcome: Granted}
	default:
		return Result{Outcome: Cancelled}
	}
}
