package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/aklkv/embroider/pkgcache"
	"github.com/spf13/cobra"
)

// ownerCmd represents the owner command
var ownerCmd = &cobra.Command{
	Use:   "owner <file>",
	Short: "Print the package that owns a file",
	Long: `Walks from the file's directory up to the nearest package.json and
prints the owning package's root and name, the same query the resolver
bridge issues when it applies the app-boundary rule.

Example usage:
  embroider-bridge owner app/components/button.js
  embroider-bridge owner --app-root ~/projects/my-app node_modules/lodash/map.js`,
	Args: cobra.ExactArgs(1),
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

		name := pkg.Manifest.Name
		if name == "" {
			name = "(unnamed)"
		}

		fmt.Fprintf(cmd.OutOrStdout(), "root: %s\n", pkg.Root)
		fmt.Fprintf(cmd.OutOrStdout(), "name: %s\n", name)
		fmt.Fprintf(cmd.OutOrStdout(), "app:  %t\n", pkg.Root == cache.AppRoot())
		return nil
	},
}
