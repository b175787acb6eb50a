package commands

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/idelchi/rijndael/internal/config"
	"github.com/idelchi/rijndael/internal/logic"
	"github.com/idelchi/rijndael/internal/prompt"
)

// NewDecryptCommand creates a new cobra command for the decrypt subcommand.
func NewDecryptCommand(cfg *config.Config, v *viper.Viper, p *prompt.Prompter, log *logrus.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "decrypt [flags] files...",
		Aliases: []string{"dec"},
		Short:   "Decrypt files",
		Args:    cobra.MinimumNArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.Decrypt = true

			return preRun(cfg, v, log)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			password, err := logic.Password(cfg, p, false, log)
			if err != nil {
				return err
			}

			return logic.Run(cfg, password, log, cmd.ErrOrStderr())
		},
	}

	addFileFlags(cmd)

	return cmd
}
