package rijndael

import (
	"fmt"
	"sync/atomic"
)

// DefaultHashIterations is the PBKDF2 iteration count used for key derivation unless configured otherwise.
const DefaultHashIterations = 10000

// Settings carries the tunable parameters of key derivation.
type Settings struct {
	// HashIterations is the PBKDF2 iteration count used to derive cipher keys.
	HashIterations int
}

// DefaultSettings returns Settings with DefaultHashIterations.
func DefaultSettings() Settings {
	return Settings{HashIterations: DefaultHashIterations}
}

// Validate checks that the iteration count is usable.
func (s Settings) Validate() error {
	if s.HashIterations < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidIterations, s.HashIterations)
	}

	return nil
}

// hashIterations holds the process-wide iteration count. Zero means DefaultHashIterations.
//
//nolint:gochecknoglobals
var hashIterations atomic.Int64

// HashIterations returns the process-wide iteration count used by calls
// that were not given explicit Settings.
func HashIterations() int {
	if n := hashIterations.Load(); n > 0 {
		return int(n)
	}

	return DefaultHashIterations
}

// SetHashIterations changes the process-wide iteration count.
// Derivations already in flight keep the value they read.
func SetHashIterations(n int) error {
	if err := (Settings{HashIterations: n}).Validate(); err != nil {
		return err
	}

	hashIterations.Store(int64(n))

	return nil
}

// ResetSettings restores the process-wide iteration count to DefaultHashIterations.
func ResetSettings() {
	hashIterations.Store(0)
}

// CurrentSettings returns a snapshot of the process-wide settings.
func CurrentSettings() Settings {
	return Settings{HashIterations: HashIterations()}
}
