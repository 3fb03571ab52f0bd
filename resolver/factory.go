package resolver

import (
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ResolveCall is one incoming resolution call as the host reports it.
type ResolveCall struct {
	Path     string
	Importer string
	Kind     ImportKind
	Metadata Metadata
}

// Intercept decides whether the bridge handles call. It declines calls whose
// metadata disables interception, calls missing a path or importer, paths
// other plugins have claimed with the null sentinel, and virtual-module
// specifiers, leaving the host's default behavior to proceed. Otherwise it
// returns an adapter carrying the initial request state.
func (b *Bridge) Intercept(call ResolveCall) (*Adapter, bool) {
	if call.Metadata.DisableIntercept {
		return nil, false
	}
	if call.Path == "" || call.Importer == "" {
		return nil, false
	}
	if strings.HasPrefix(call.Path, nullSentinel) {
		return nil, false
	}
	if strings.HasPrefix(call.Path, VirtualPrefix) {
		return nil, false
	}

	// Importers arrive in the host's own path convention; normalize to the
	// platform's separators before any cache lookups.
	fromFile := filepath.Clean(filepath.FromSlash(call.Importer))

	return &Adapter{
		bridge: b,
		kind:   call.Kind,
		request: ModuleRequest{
			ID:        uuid.NewString(),
			Specifier: call.Path,
			FromFile:  fromFile,
			Meta:      call.Metadata.Meta,
		},
	}, true
}
