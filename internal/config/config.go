// Package config holds the runtime configuration shared by all commands.
package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Config carries the settings for one operation, populated from flags and
// environment variables by viper and from positional arguments by the
// commands.
type Config struct {
	// Input is the file or directory to operate on.
	Input string `validate:"required"`

	// Output overrides the default output path.
	Output string

	// Quiet suppresses non-error output.
	Quiet bool

	// Stats prints a summary after the operation.
	Stats bool

	// Exclude lists glob patterns filtering files out of directory operations.
	Exclude []string

	// ExcludeFrom names a JSONC file with additional exclude patterns.
	ExcludeFrom string `mapstructure:"exclude-from"`
}

// Validate validates the configuration against the struct tags.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("validating configuration: %w", err)
	}

	return nil
}
