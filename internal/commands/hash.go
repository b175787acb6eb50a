package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/idelchi/rijndael/pkg/rijndael"
)

// NewHashCommand creates a new cobra command that prints the SHA-512 of its argument,
// or of standard input when no argument is given.
func NewHashCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "hash [text]",
		Short: "Print the uppercase hex SHA-512 of text",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var text string

			if len(args) == 1 {
				text = args[0]
			} else {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("reading input: %w", err)
				}

				text = strings.TrimSuffix(string(data), "\n")
			}

			fmt.Fprintln(cmd.OutOrStdout(), rijndael.Sha512Hex(text))

			return nil
		},
	}
}
