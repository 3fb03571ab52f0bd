package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// version is set via build-time ldflags
var version = "dev"

// appRootFlag overrides the application package root for all subcommands
var appRootFlag string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "embroider-bridge",
	Short: "Inspect module resolution metadata for Embroider builds",
	Long: `embroider-bridge inspects the dependency metadata the resolver bridge
consults during a build: which package owns a file, and what name an
app-owned module would carry once externalized out of dependency
pre-bundling.

Use 'embroider-bridge <command> --help' for detailed information about a
specific command.`,
	Version: version,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&appRootFlag, "app-root", "",
		"application package root (defaults to the config file, then the working directory)")

	rootCmd.AddCommand(ownerCmd)
	rootCmd.AddCommand(externCmd)
}
