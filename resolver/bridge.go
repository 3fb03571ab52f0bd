// Package resolver bridges the two resolution passes of an Embroider build:
// the dependency pre-bundling pass and the main module-graph pass. Both
// delegate to the host resolver; this package wraps one host invocation with
// the cross-pass status ledger and the app-boundary externalization policy so
// callers can tell "not found" apart from "intentionally external".
package resolver

import (
	"context"

	"github.com/aklkv/embroider/pkgcache"
	"github.com/aklkv/embroider/trace"
)

// Phase identifies which build pass a bridge serves.
type Phase int

const (
	// PhaseBundling is the dependency pre-bundling pass.
	PhaseBundling Phase = iota
	// PhaseMain is the main module-graph build pass.
	PhaseMain
)

func (p Phase) String() string {
	switch p {
	case PhaseBundling:
		return "bundling"
	case PhaseMain:
		return "main"
	default:
		return "unknown"
	}
}

// Metadata is the per-call metadata convention shared with the host.
// DisableIntercept tells the factory to decline a call; Meta is forwarded
// opaquely through requests.
type Metadata struct {
	DisableIntercept bool
	Meta             any
}

// ResolveOptions carries the request attributes a host resolution needs
// beyond the specifier itself.
type ResolveOptions struct {
	Importer   string
	ResolveDir string
	Kind       ImportKind
	Metadata   Metadata
}

// HostResolver is the build host's resolution algorithm. A returned error
// means the host itself failed; resolution problems the host can describe
// travel inside HostResult.Errors instead.
type HostResolver interface {
	Resolve(ctx context.Context, specifier string, opts ResolveOptions) (HostResult, error)
}

// PackageOwner is the slice of the dependency metadata cache the bridge
// consumes.
type PackageOwner interface {
	OwnerOfFile(path string) (*pkgcache.Package, bool)
	AppRoot() string
}

// ExternalNameFunc computes the package-qualified name a relative specifier
// must carry once externalized out of its resolution context.
type ExternalNameFunc func(manifest *pkgcache.Manifest, specifier string) (string, bool)

// Bridge binds the pieces one build pass shares across all of its resolution
// requests: the host resolver, the dependency metadata cache, the status
// ledger, and the pass identity.
type Bridge struct {
	Host     HostResolver
	Packages PackageOwner
	Ledger   *Ledger
	Phase    Phase

	// ExternalName overrides the externalized-name lookup. Defaults to
	// pkgcache.ExternalName.
	ExternalName ExternalNameFunc

	// Trace, when set, records every found resolution as an importer edge.
	Trace *trace.Recorder
}

// NewBridge creates a bridge for one build pass. Both passes of a build must
// share one ledger; pass nil to create a fresh one for single-pass use.
func NewBridge(host HostResolver, packages PackageOwner, ledger *Ledger, phase Phase) *Bridge {
	if ledger == nil {
		ledger = NewLedger()
	}
	return &Bridge{
		Host:         host,
		Packages:     packages,
		Ledger:       ledger,
		Phase:        phase,
		ExternalName: pkgcache.ExternalName,
	}
}
