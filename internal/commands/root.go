package commands

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewRootCommand creates the root command with common configuration.
// It sets up environment variable binding and flag handling.
func NewRootCommand(version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "goseal [flags] command [flags]",
		Short: "Password-based file encryption utility",
		Long: `A password-based file encryption utility.
Files are sealed with AES-256-GCM under a key stretched from the password
with Argon2id, and can be processed one at a time or as whole directory trees.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			viper.SetEnvPrefix("goseal")
			viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
			viper.AutomaticEnv()
		},
	}

	root.PersistentFlags().StringP("output", "o", "", "Output path (defaults per operation)")
	root.PersistentFlags().BoolP("quiet", "q", false, "Suppress non-error output")
	root.PersistentFlags().Bool("stats", false, "Print a summary after the operation")

	root.AddCommand(
		NewEncryptCommand(),
		NewDecryptCommand(),
		NewEncryptDirCommand(),
		NewDecryptDirCommand(),
	)

	return root
}
