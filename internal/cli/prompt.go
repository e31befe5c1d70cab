package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

var errNoTerminal = errors.New("stdin is not a terminal; pass the value as a flag")

// readPassword prompts on stderr and reads a secret without echo.
func (a *App) readPassword(prompt string) (string, error) {
	if a.password != nil {
		return a.password(prompt)
	}
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", errNoTerminal
	}
	fmt.Fprint(a.Stderr, prompt)
	secret, err := term.ReadPassword(fd)
	fmt.Fprintln(a.Stderr)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return strings.TrimSpace(string(secret)), nil
}
