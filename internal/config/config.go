// Package config holds the command line configuration of rijndael.
package config

import (
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/idelchi/rijndael/pkg/rijndael"
)

// ErrSameSuffix is returned when encrypting would write onto the input file.
var ErrSameSuffix = errors.New("encrypt-ext must differ from decrypt-ext")

// Suffixes are the file name extensions used for output paths.
type Suffixes struct {
	// Encrypt is appended to encrypted files and stripped when decrypting.
	Encrypt string `mapstructure:"encrypt-ext" label:"--encrypt-ext" validate:"required"`
	// Decrypt is appended to decrypted files after Encrypt has been stripped.
	Decrypt string `mapstructure:"decrypt-ext" label:"--decrypt-ext"`
}

// Config is the merged result of flags and RIJNDAEL_* environment variables.
type Config struct {
	// Password source, at most one may be set. Neither means prompting.
	Password     string `mapstructure:"password"      label:"--password"      validate:"exclusive=PasswordFile"`
	PasswordFile string `mapstructure:"password-file" label:"--password-file"`

	KeySize       int  `mapstructure:"key-size"      label:"--key-size"   validate:"oneof=128 192 256"`
	Iterations    int  `mapstructure:"iterations"    label:"--iterations" validate:"min=1"`
	Authenticated bool `mapstructure:"authenticated"`

	Parallel           int  `mapstructure:"parallel" label:"--parallel" validate:"min=1"`
	Quiet              bool `mapstructure:"quiet"    label:"--quiet"    validate:"exclusive=Verbose"`
	Verbose            bool `mapstructure:"verbose"  label:"--verbose"`
	Delete             bool `mapstructure:"delete"`
	Stats              bool `mapstructure:"stats"`
	PreserveTimestamps bool `mapstructure:"preserve-timestamps"`

	Suffixes Suffixes `mapstructure:",squash"`

	// Decrypt is set by the decrypt command.
	Decrypt bool `mapstructure:"-"`

	// Files are the positional arguments.
	Files []string `mapstructure:"-"`
}

// Default returns the configuration used when nothing is overridden.
func Default() Config {
	return Config{
		KeySize:    int(rijndael.Aes256),
		Iterations: rijndael.DefaultHashIterations,
		Parallel:   runtime.NumCPU(),
		Suffixes: Suffixes{
			Encrypt: ".aes",
		},
	}
}

// Validate validates the configuration against the struct tags.
func (c Config) Validate() error {
	validate, err := newValidator()
	if err != nil {
		return err
	}

	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("validating configuration: %w", describe(err))
	}

	if c.Suffixes.Encrypt == c.Suffixes.Decrypt {
		return ErrSameSuffix
	}

	return nil
}

// Size returns the configured key size.
func (c Config) Size() rijndael.KeySize {
	return rijndael.KeySize(c.KeySize)
}

// Settings returns the key derivation settings.
func (c Config) Settings() rijndael.Settings {
	return rijndael.Settings{HashIterations: c.Iterations}
}

// describe turns validation errors into a single readable error.
func describe(err error) error {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return err
	}

	messages := make([]string, 0, len(errs))

	for _, e := range errs {
		switch e.Tag() {
		case "exclusive":
			messages = append(messages, fmt.Sprintf("%s is mutually exclusive with %s", e.Field(), label(e.Param())))
		case "oneof":
			messages = append(messages, fmt.Sprintf("%s must be one of [%s], got %v", e.Field(), e.Param(), e.Value()))
		case "min":
			messages = append(messages, fmt.Sprintf("%s must be at least %s, got %v", e.Field(), e.Param(), e.Value()))
		case "required":
			messages = append(messages, e.Field()+" is required")
		default:
			messages = append(messages, e.Error())
		}
	}

	return errors.New(strings.Join(messages, "; "))
}
