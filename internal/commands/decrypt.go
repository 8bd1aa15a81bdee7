package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/goseal/internal/logic"
	"github.com/idelchi/goseal/internal/password"
)

// NewDecryptCommand creates a new cobra command for the decrypt subcommand.
func NewDecryptCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "decrypt [flags] file",
		Aliases: []string{"dec"},
		Short:   "Decrypt a single file",
		Args:    cobra.ExactArgs(1),
		PreRunE: bindFlags(),
		RunE: func(_ *cobra.Command, args []string) error {
			cfg, err := parse(args)
			if err != nil {
				return err
			}

			return logic.DecryptFile(cfg, password.Terminal)
		},
	}
}
