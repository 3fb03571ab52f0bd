package pkgcache

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadManifest_ObjectExports(t *testing.T) {
	tmpDir := t.TempDir()
	manifestPath := filepath.Join(tmpDir, "package.json")
	content := `{
		"name": "my-app",
		"version": "1.2.3",
		"main": "dist/index.js",
		"exports": {
			".": "./dist/index.js",
			"./widgets/*": "./dist/widgets/*.js"
		}
	}`
	require.NoError(t, os.WriteFile(manifestPath, []byte(content), 0644))

	manifest, err := ReadManifest(manifestPath)

	require.NoError(t, err)
	assert.Equal(t, "my-app", manifest.Name)
	assert.Equal(t, "1.2.3", manifest.Version)
	assert.Equal(t, "dist/index.js", manifest.Main)
	assert.Equal(t, "./dist/index.js", manifest.Exports["."])
	assert.Equal(t, "./dist/widgets/*.js", manifest.Exports["./widgets/*"])
}

func TestReadManifest_StringExportsShorthand(t *testing.T) {
	tmpDir := t.TempDir()
	manifestPath := filepath.Join(tmpDir, "package.json")
	require.NoError(t, os.WriteFile(manifestPath, []byte(`{"name": "tiny", "exports": "./index.js"}`), 0644))

	manifest, err := ReadManifest(manifestPath)

	require.NoError(t, err)
	assert.Equal(t, "./index.js", manifest.Exports["."])
}

func TestReadManifest_Malformed(t *testing.T) {
	tmpDir := t.TempDir()
	manifestPath := filepath.Join(tmpDir, "package.json")
	require.NoError(t, os.WriteFile(manifestPath, []byte(`{`), 0644))

	_, err := ReadManifest(manifestPath)

	assert.Error(t, err)
}

func TestExternalName(t *testing.T) {
	named := &Manifest{Name: "my-app"}

	tests := []struct {
		name      string
		manifest  *Manifest
		specifier string
		want      string
		wantOK    bool
	}{
		{
			name:      "relative subpath",
			manifest:  named,
			specifier: "./widgets/button",
			want:      "my-app/widgets/button",
			wantOK:    true,
		},
		{
			name:      "package root",
			manifest:  named,
			specifier: ".",
			want:      "my-app",
			wantOK:    true,
		},
		{
			name:      "redundant segments collapse",
			manifest:  named,
			specifier: "./widgets/../widgets/button",
			want:      "my-app/widgets/button",
			wantOK:    true,
		},
		{
			name:      "escapes the package",
			manifest:  named,
			specifier: "../sibling/button",
			wantOK:    false,
		},
		{
			name:      "unnamed manifest",
			manifest:  &Manifest{},
			specifier: "./widgets/button",
			wantOK:    false,
		},
		{
			name:      "nil manifest",
			manifest:  nil,
			specifier: "./widgets/button",
			wantOK:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExternalName(tt.manifest, tt.specifier)
			require.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
