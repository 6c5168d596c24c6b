package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
)

// getStatus renders the prompt fragment describing the current session:
// the subject and role when logged in, empty otherwise.
func (a *App) getStatus() string {
	s, expired := a.auth.Current(context.Background())
	if expired || s == nil {
		return ""
	}
	return fmt.Sprintf("(%s %s)", s.Subject, s.Role)
}

// Root runs the interactive loop until the user exits or stdin closes.
func (a *App) Root(ctx context.Context) {
	printlnFn("Welcome to Smart Bill CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
