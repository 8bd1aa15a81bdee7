package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/goseal/internal/logic"
	"github.com/idelchi/goseal/internal/password"
)

// NewEncryptDirCommand creates a new cobra command for the encrypt-dir subcommand.
func NewEncryptDirCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "encrypt-dir [flags] directory",
		Aliases: []string{"encd"},
		Short:   "Encrypt all files in a directory, preserving its structure",
		Args:    cobra.ExactArgs(1),
		PreRunE: bindFlags(),
		RunE: func(_ *cobra.Command, args []string) error {
			cfg, err := parse(args)
			if err != nil {
				return err
			}

			return logic.EncryptDir(cfg, password.Terminal)
		},
	}

	cmd.Flags().StringSlice("exclude", nil, "Glob patterns for files to skip (relative to the input directory)")
	cmd.Flags().String("exclude-from", "", "Path to a JSONC file with exclude patterns")

	return cmd
}
