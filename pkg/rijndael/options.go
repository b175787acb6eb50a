package rijndael

import "io"

// Option configures a Cipher or EtM.
type Option func(*options)

type options struct {
	settings *Settings
	random   io.Reader
}

// WithSettings pins the key derivation settings instead of reading the
// process-wide values on every call.
func WithSettings(settings Settings) Option {
	return func(o *options) {
		o.settings = &settings
	}
}

// WithIterations is shorthand for WithSettings with only HashIterations set.
func WithIterations(iterations int) Option {
	return WithSettings(Settings{HashIterations: iterations})
}

// WithRandom replaces the source used to generate IVs.
func WithRandom(random io.Reader) Option {
	return func(o *options) {
		o.random = random
	}
}
