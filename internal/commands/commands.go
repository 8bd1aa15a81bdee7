// Package commands provides the command-line interface for the goseal tool.
//
// It implements commands for:
//   - single-file encryption and decryption
//   - directory-tree encryption and decryption
//
// The package handles command-line parsing, configuration validation,
// and environment variable binding through cobra and viper.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/idelchi/goseal/internal/config"
)

// bindFlags returns a PreRunE handler that binds the command's own and
// inherited flags into viper.
func bindFlags() func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		if err := viper.BindPFlags(cmd.Flags()); err != nil {
			return fmt.Errorf("binding flags: %w", err)
		}

		if err := viper.BindPFlags(cmd.InheritedFlags()); err != nil {
			return fmt.Errorf("binding inherited flags: %w", err)
		}

		return nil
	}
}

// parse unmarshals all config (from env vars and flags) into a struct,
// resolves the positional argument and validates the result.
func parse(args []string) (*config.Config, error) {
	var cfg config.Config

	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.Input = args[0]

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
