package pkgcache

import (
	"os"
	"path/filepath"
	"sync"
)

const manifestFileName = "package.json"

// Package is a resolved dependency package: the directory that owns a
// package.json plus its parsed manifest.
type Package struct {
	Root     string
	Manifest *Manifest
}

// Cache maps file paths to their owning package. Lookups walk from the
// file's directory upward to the nearest package.json and are memoized per
// directory, so repeated queries inside one package hit the map.
type Cache struct {
	appRoot string

	mu       sync.Mutex
	dirOwner map[string]*Package // directory -> owning package, nil when none
	packages map[string]*Package // package root -> package

	watcher *manifestWatcher
}

// NewCache creates a cache rooted at the application package. appRoot should
// be the app's package directory, not its package.json.
func NewCache(appRoot string) *Cache {
	return &Cache{
		appRoot:  filepath.Clean(appRoot),
		dirOwner: make(map[string]*Package),
		packages: make(map[string]*Package),
	}
}

// AppRoot returns the application package root this cache was created with.
func (c *Cache) AppRoot() string {
	return c.appRoot
}

// OwnerOfFile returns the package owning path, walking up to the nearest
// package.json. The second return is false when no enclosing package exists.
func (c *Cache) OwnerOfFile(path string) (*Package, bool) {
	dir := filepath.Dir(filepath.Clean(path))

	c.mu.Lock()
	defer c.mu.Unlock()

	pkg := c.ownerOfDirLocked(dir)
	return pkg, pkg != nil
}

func (c *Cache) ownerOfDirLocked(dir string) *Package {
	var misses []string

	for {
		if pkg, ok := c.dirOwner[dir]; ok {
			c.recordOwnerLocked(misses, pkg)
			return pkg
		}

		if pkg := c.loadPackageLocked(dir); pkg != nil {
			c.recordOwnerLocked(append(misses, dir), pkg)
			return pkg
		}

		misses = append(misses, dir)
		parent := filepath.Dir(dir)
		if parent == dir {
			c.recordOwnerLocked(misses, nil)
			return nil
		}
		dir = parent
	}
}

func (c *Cache) recordOwnerLocked(dirs []string, pkg *Package) {
	for _, dir := range dirs {
		c.dirOwner[dir] = pkg
	}
}

func (c *Cache) loadPackageLocked(dir string) *Package {
	if pkg, ok := c.packages[dir]; ok {
		return pkg
	}

	manifestPath := filepath.Join(dir, manifestFileName)
	if info, err := os.Stat(manifestPath); err != nil || info.IsDir() {
		return nil
	}

	manifest, err := ReadManifest(manifestPath)
	if err != nil {
		// An unreadable manifest still marks a package boundary.
		manifest = &Manifest{}
	}

	pkg := &Package{Root: dir, Manifest: manifest}
	c.packages[dir] = pkg
	if c.watcher != nil {
		c.watcher.addRoot(dir)
	}
	return pkg
}

// Invalidate drops the package rooted at root together with every memoized
// directory that resolved to it, forcing the next query to re-read disk.
func (c *Cache) Invalidate(root string) {
	root = filepath.Clean(root)

	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.packages, root)
	for dir, pkg := range c.dirOwner {
		if pkg == nil || pkg.Root == root {
			delete(c.dirOwner, dir)
		}
	}
}
