package commands

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/idelchi/rijndael/internal/config"
	"github.com/idelchi/rijndael/internal/logic"
	"github.com/idelchi/rijndael/internal/prompt"
)

// NewEncryptCommand creates a new cobra command for the encrypt subcommand.
func NewEncryptCommand(cfg *config.Config, v *viper.Viper, p *prompt.Prompter, log *logrus.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "encrypt [flags] files...",
		Aliases: []string{"enc"},
		Short:   "Encrypt files",
		Args:    cobra.MinimumNArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.Decrypt = false

			return preRun(cfg, v, log)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			password, err := logic.Password(cfg, p, true, log)
			if err != nil {
				return err
			}

			return logic.Run(cfg, password, log, cmd.ErrOrStderr())
		},
	}

	addFileFlags(cmd)

	return cmd
}
