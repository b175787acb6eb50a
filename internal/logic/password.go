package logic

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/idelchi/rijndael/internal/config"
	"github.com/idelchi/rijndael/internal/prompt"
)

// ErrEmptyPassword is returned when the resolved password is empty.
var ErrEmptyPassword = errors.New("password must not be empty")

// Password returns the password from --password, --password-file or, failing
// both, an interactive prompt. New passwords are confirmed and rated.
func Password(cfg *config.Config, prompter *prompt.Prompter, confirm bool, log *logrus.Logger) (string, error) {
	var (
		password string
		err      error
	)

	switch {
	case cfg.Password != "":
		password = cfg.Password
	case cfg.PasswordFile != "":
		password, err = readPasswordFile(cfg.PasswordFile)
	case confirm:
		password, err = prompter.NewPassword()
	default:
		password, err = prompter.Password("Password")
	}

	if err != nil {
		return "", err
	}

	if password == "" {
		return "", ErrEmptyPassword
	}

	if confirm {
		if strength := prompt.Rate(password); strength.Weak() {
			log.WithFields(logrus.Fields{
				"score":      strength.Score,
				"crack_time": strength.CrackTime,
			}).Warn("weak password")
		}
	}

	return password, nil
}

// readPasswordFile returns the first line of path.
func readPasswordFile(path string) (string, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return "", fmt.Errorf("reading password file: %w", err)
	}

	line, _, _ := strings.Cut(string(data), "\n")

	return strings.TrimSuffix(line, "\r"), nil
}
