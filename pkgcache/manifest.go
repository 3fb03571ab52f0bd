package pkgcache

import (
	"encoding/json"
	"fmt"
	"os"
	"path"
	"strings"
)

// Manifest holds the subset of package.json this bridge consumes.
type Manifest struct {
	Name    string         `json:"name"`
	Version string         `json:"version"`
	Main    string         `json:"main"`
	Exports map[string]any `json:"-"`
}

// manifestWire tolerates the two shapes "exports" takes in the wild: an
// object of subpath conditions, or a single string shorthand.
type manifestWire struct {
	Name    string          `json:"name"`
	Version string          `json:"version"`
	Main    string          `json:"main"`
	Exports json.RawMessage `json:"exports"`
}

// ReadManifest parses the package.json at manifestPath.
func ReadManifest(manifestPath string) (*Manifest, error) {
	data, err := os.ReadFile(manifestPath)
	if err != nil {
		return nil, err
	}

	var wire manifestWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", manifestPath, err)
	}

	manifest := &Manifest{
		Name:    wire.Name,
		Version: wire.Version,
		Main:    wire.Main,
	}

	if len(wire.Exports) > 0 {
		var exportsMap map[string]any
		if err := json.Unmarshal(wire.Exports, &exportsMap); err == nil {
			manifest.Exports = exportsMap
		} else {
			var exportsString string
			if err := json.Unmarshal(wire.Exports, &exportsString); err == nil {
				manifest.Exports = map[string]any{".": exportsString}
			}
		}
	}

	return manifest, nil
}

// ExternalName rewrites a relative specifier resolved inside a package into
// the package-qualified name it must carry once hoisted out of its original
// resolution context. It yields nothing when the manifest has no name or the
// specifier escapes the package directory.
func ExternalName(manifest *Manifest, specifier string) (string, bool) {
	if manifest == nil || manifest.Name == "" {
		return "", false
	}

	cleaned := path.Clean(specifier)
	if cleaned == "." {
		return manifest.Name, true
	}
	if strings.HasPrefix(cleaned, "../") || cleaned == ".." {
		return "", false
	}

	return manifest.Name + "/" + strings.TrimPrefix(cleaned, "./"), true
}
