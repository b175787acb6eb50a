package commands

import (
	"encoding/hex"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/idelchi/rijndael/internal/config"
	"github.com/idelchi/rijndael/internal/logic"
	"github.com/idelchi/rijndael/internal/prompt"
	"github.com/idelchi/rijndael/pkg/rijndael"
)

// NewDeriveCommand creates a new cobra command that prints the key derived from a password.
// With --authenticated it prints the cipher key derived from the key ring and the MAC key.
func NewDeriveCommand(cfg *config.Config, v *viper.Viper, p *prompt.Prompter, log *logrus.Logger) *cobra.Command {
	return &cobra.Command{
		Use:     "derive [flags]",
		Aliases: []string{"keygen"},
		Short:   "Print the key derived from a password",
		Args:    cobra.NoArgs,
		PreRunE: preRun(cfg, v, log),
		RunE: func(cmd *cobra.Command, _ []string) error {
			password, err := logic.Password(cfg, p, false, log)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			if !cfg.Authenticated {
				key, err := rijndael.DeriveKeyIterations(password, cfg.Size(), cfg.Iterations)
				if err != nil {
					return err
				}

				fmt.Fprintln(out, hex.EncodeToString(key))

				return nil
			}

			keys := rijndael.GenerateKeyRing(password)

			key, err := rijndael.DeriveKeyIterations(keys.CipherKey, cfg.Size(), cfg.Iterations)
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "cipher: %s\n", hex.EncodeToString(key))
			fmt.Fprintf(out, "mac:    %s\n", keys.MacKey)

			return nil
		},
	}
}
