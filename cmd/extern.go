package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/aklkv/embroider/pkgcache"
	"github.com/spf13/cobra"
)

// externCmd represents the extern command
var externCmd = &cobra.Command{
	Use:   "extern <file> <specifier>",
	Short: "Print the externalized name for a specifier resolved at a file",
	Long: `Computes the name a specifier would carry if the app-boundary rule
externalized it: relative specifiers become package-qualified using the
owning package's manifest, other specifiers pass through unchanged.

Example usage:
  embroider-bridge extern app/main.js ./widgets/button`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		appRoot, err := resolveAppRoot()
		if err != nil {
			return err
		}

		absPath, err := filepath.Abs(args[0])
		if err != nil {
			return fmt.Errorf("failed to resolve path %s: %w", args[0], err)
		}

		cache := pkgcache.NewCache(appRoot)
		pkg, ok := cache.OwnerOfFile(absPath)
		if !ok {
			return fmt.Errorf("no package owns %s", args[0])
		}

		specifier := args[1]
		name := specifier
		if strings.HasPrefix(specifier, ".") {
			if external, ok := pkgcache.ExternalName(pkg.Manifest, specifier); ok {
				name = external
			}
		}

		fmt.Fprintln(cmd.OutOrStdout(), name)
		return nil
	},
}
