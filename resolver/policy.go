package resolver

import (
	"strings"

	"github.com/aklkv/embroider/pkgcache"
)

// externalizeAppBoundary applies the pre-bundling boundary rule: a dependency
// package must never pull the application's own files into the pre-bundled
// output, because the app is not a stable, cacheable dependency. When the
// host resolved into the app package, the resolution is rewritten to a
// synthetic external reference and the true on-disk resolution is discarded.
func (b *Bridge) externalizeAppBoundary(specifier string, result HostResult) (Resolution, bool) {
	if b.Packages == nil {
		return Resolution{}, false
	}

	pkg, ok := b.Packages.OwnerOfFile(result.Path)
	if !ok || pkg.Root != b.Packages.AppRoot() {
		return Resolution{}, false
	}

	if !prebundleGuardedNamespace(result.Namespace) {
		return Resolution{}, false
	}

	// A relative specifier loses its meaning once hoisted out of its
	// resolution context, so it must become package-qualified. Non-relative
	// specifiers already travel under a stable name.
	name := specifier
	if isRelativeSpecifier(specifier) {
		externalName := b.ExternalName
		if externalName == nil {
			externalName = pkgcache.ExternalName
		}
		if external, ok := externalName(pkg.Manifest, specifier); ok {
			name = external
		}
	}

	return Resolution{
		Found:    true,
		Filename: name,
		Result:   HostResult{Path: name, External: true},
	}, true
}

// prebundleGuardedNamespace reports whether the boundary rule covers results
// in the given host namespace. The polyfill namespace is carved out: its
// files pre-bundle normally even under the app root.
func prebundleGuardedNamespace(namespace string) bool {
	if namespace == "" || namespace == NamespaceFile {
		return true
	}
	return strings.HasPrefix(namespace, reservedNamespacePrefix) && namespace != NamespacePolyfill
}

func isRelativeSpecifier(specifier string) bool {
	return specifier == "." || specifier == ".." ||
		strings.HasPrefix(specifier, "./") || strings.HasPrefix(specifier, "../")
}
