package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/goseal/internal/logic"
	"github.com/idelchi/goseal/internal/password"
)

// NewEncryptCommand creates a new cobra command for the encrypt subcommand.
func NewEncryptCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "encrypt [flags] file",
		Aliases: []string{"enc"},
		Short:   "Encrypt a single file",
		Args:    cobra.ExactArgs(1),
		PreRunE: bindFlags(),
		RunE: func(_ *cobra.Command, args []string) error {
			cfg, err := parse(args)
			if err != nil {
				return err
			}

			return logic.EncryptFile(cfg, password.Terminal)
		},
	}
}
