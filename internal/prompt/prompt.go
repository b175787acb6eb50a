// Package prompt reads passwords from an interactive terminal and rates their strength.
package prompt

import (
	"bytes"
	"crypto/subtle"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/nbutton23/zxcvbn-go"
	"golang.org/x/term"
)

var (
	// ErrNotTerminal is returned when a password is needed but input is not interactive.
	ErrNotTerminal = errors.New("no password given and standard input is not a terminal")
	// ErrMismatch is returned when the confirmation differs from the first entry.
	ErrMismatch = errors.New("passwords do not match")
	// ErrEmpty is returned for an empty password.
	ErrEmpty = errors.New("password must not be empty")
)

// WeakScore is the zxcvbn score below which a password is reported as weak.
const WeakScore = 2

// Prompter asks for passwords on a terminal.
type Prompter struct {
	In  *os.File
	Out io.Writer
}

// New returns a Prompter reading from stdin and writing prompts to stderr.
func New() *Prompter {
	return &Prompter{In: os.Stdin, Out: os.Stderr}
}

// Interactive reports whether In is a terminal.
func (p *Prompter) Interactive() bool {
	return term.IsTerminal(int(p.In.Fd())) //nolint:gosec
}

// Password asks for a password once.
func (p *Prompter) Password(label string) (string, error) {
	if !p.Interactive() {
		return "", ErrNotTerminal
	}

	fmt.Fprintf(p.Out, "%s: ", label)

	password, err := term.ReadPassword(int(p.In.Fd())) //nolint:gosec
	fmt.Fprintln(p.Out)

	if err != nil {
		return "", fmt.Errorf("reading password: %w", err)
	}

	if len(bytes.TrimSpace(password)) == 0 {
		return "", ErrEmpty
	}

	return string(password), nil
}

// NewPassword asks for a password and its confirmation.
func (p *Prompter) NewPassword() (string, error) {
	first, err := p.Password("Password")
	if err != nil {
		return "", err
	}

	second, err := p.Password("Confirm password")
	if err != nil {
		return "", err
	}

	if subtle.ConstantTimeCompare([]byte(first), []byte(second)) != 1 {
		return "", ErrMismatch
	}

	return first, nil
}

// Strength is the zxcvbn rating of a password.
type Strength struct {
	// Score ranges from 0 (guessable) to 4 (very strong).
	Score int
	// CrackTime is a human readable estimate of the time to crack.
	CrackTime string
}

// Rate scores password with zxcvbn.
func Rate(password string) Strength {
	result := zxcvbn.PasswordStrength(password, nil)

	return Strength{
		Score:     result.Score,
		CrackTime: result.CrackTimeDisplay,
	}
}

// Weak reports whether the score is below WeakScore.
func (s Strength) Weak() bool {
	return s.Score < WeakScore
}
