// Package commands provides the command-line interface for the rijndael tool.
//
// It implements commands for:
//   - encryption
//   - decryption
//   - key derivation
//   - hashing
//
// The package handles command-line parsing, configuration validation,
// and environment variable binding through cobra and viper.
package commands

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/idelchi/rijndael/internal/config"
	"github.com/idelchi/rijndael/internal/prompt"
	"github.com/idelchi/rijndael/pkg/rijndael"
)

// EnvPrefix is the prefix of environment variables that override flags.
const EnvPrefix = "RIJNDAEL"

// NewRootCommand creates the root command with common configuration.
// It sets up environment variable binding and flag handling.
func NewRootCommand(cfg *config.Config, version string, log *logrus.Logger) *cobra.Command {
	defaults := config.Default()

	root := &cobra.Command{
		Use:   "rijndael [flags] command [flags]",
		Short: "Password-based file encryption",
		Long: `A file encryption utility using AES-CBC with keys derived from a password.
Encrypt-then-MAC mode (--authenticated) appends a MAC that is verified before decrypting.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()

	flags.StringP("password", "p", "", "Password to derive keys from")
	flags.String("password-file", "", "Path to a file whose first line is the password")
	flags.StringP("key-size", "k", fmt.Sprint(defaults.KeySize), "AES key size: 128, 192 or 256")
	flags.IntP("iterations", "i", defaults.Iterations, "PBKDF2 iterations for key derivation")
	flags.BoolP("authenticated", "a", false, "Use Encrypt-then-MAC envelopes")

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	p := prompt.New()

	root.AddCommand(
		NewEncryptCommand(cfg, v, p, log),
		NewDecryptCommand(cfg, v, p, log),
		NewDeriveCommand(cfg, v, p, log),
		NewHashCommand(),
	)

	return root
}

// addFileFlags registers the flags shared by encrypt and decrypt.
func addFileFlags(cmd *cobra.Command) {
	defaults := config.Default()

	cmd.Flags().IntP("parallel", "j", defaults.Parallel, "Number of parallel workers, defaults to number of CPUs")
	cmd.Flags().BoolP("quiet", "q", false, "Suppress non-error output")
	cmd.Flags().BoolP("verbose", "v", false, "Enable debug output")
	cmd.Flags().BoolP("delete", "d", false, "Delete the original file after successful encryption/decryption")
	cmd.Flags().Bool("stats", false, "Print statistics when done")
	cmd.Flags().Bool("preserve-timestamps", false, "Copy the modification time of the input to the output")
	cmd.Flags().String("encrypt-ext", defaults.Suffixes.Encrypt, "Suffix to append to encrypted files")
	cmd.Flags().String("decrypt-ext", "", "Suffix to append to decrypted files, after stripping the encrypted suffix")
}

// preRun returns a PreRunE handler that merges flags and environment into cfg,
// stores positional args in cfg.Files and validates the configuration.
func preRun(cfg *config.Config, v *viper.Viper, log *logrus.Logger) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if err := v.BindPFlags(cmd.Flags()); err != nil {
			return fmt.Errorf("binding flags: %w", err)
		}

		size, err := rijndael.ParseKeySize(v.GetString("key-size"))
		if err != nil {
			return fmt.Errorf("--key-size: %w", err)
		}

		v.Set("key-size", int(size))

		defaults := config.Default()
		defaults.Decrypt = cfg.Decrypt
		*cfg = defaults

		if err := v.Unmarshal(cfg); err != nil {
			return fmt.Errorf("parsing config: %w", err)
		}

		cfg.Files = args

		if err := cfg.Validate(); err != nil {
			return err
		}

		setLevel(log, cfg)

		log.WithFields(logrus.Fields{
			"key_size":      cfg.Size().String(),
			"iterations":    cfg.Iterations,
			"authenticated": cfg.Authenticated,
			"files":         len(cfg.Files),
		}).Debug("configuration")

		return nil
	}
}

func setLevel(log *logrus.Logger, cfg *config.Config) {
	switch {
	case cfg.Quiet:
		log.SetLevel(logrus.WarnLevel)
	case cfg.Verbose:
		log.SetLevel(logrus.DebugLevel)
	default:
		log.SetLevel(logrus.InfoLevel)
	}
}
