package resolver

import (
	"context"
	"log/slog"
	"path/filepath"
)

// Adapter executes one intercepted resolution request against the host
// resolver and disambiguates the outcome through the status ledger.
type Adapter struct {
	bridge  *Bridge
	kind    ImportKind
	request ModuleRequest
}

// Request returns the initial request state the factory built for this call.
func (a *Adapter) Request() ModuleRequest {
	return a.request
}

// Resolve runs req to a terminal Resolution. A non-nil error reports a host
// resolver failure and nothing else; every resolution outcome the host can
// describe, including not-found, comes back as a Resolution value.
func (a *Adapter) Resolve(ctx context.Context, req ModuleRequest) (Resolution, error) {
	b := a.bridge

	b.Ledger.MarkPending(req.Specifier)

	result, err := b.Host.Resolve(ctx, req.Specifier, ResolveOptions{
		Importer:   req.FromFile,
		ResolveDir: filepath.Dir(req.FromFile),
		Kind:       a.kind,
		// Interception must stay off for the delegated call or the bridge
		// would re-enter itself.
		Metadata: Metadata{DisableIntercept: true, Meta: req.Meta},
	})

	// Consume the ledger entry even when the host failed, so no entry
	// outlives this call.
	status := b.Ledger.ReadStatus(req.Specifier)

	if err != nil {
		return Resolution{}, err
	}

	if len(result.Errors) > 0 || status.State == StatusNotFound {
		return Resolution{Diagnostics: result.Errors}, nil
	}

	if b.Phase == PhaseBundling {
		if resolution, ok := b.externalizeAppBoundary(req.Specifier, result); ok {
			slog.Debug("externalized app-boundary import",
				"request", req.ID,
				"specifier", req.Specifier,
				"external", resolution.Filename)
			return resolution, nil
		}
	}

	filename := result.Path
	if status.State == StatusFound && result.External {
		// The host reports the externalized specifier string; the
		// cooperating resolver recorded the true on-disk path.
		filename = status.Filename
	}

	if b.Trace != nil {
		if err := b.Trace.RecordEdge(req.FromFile, filename); err != nil {
			slog.Debug("failed to record resolution edge", "request", req.ID, "error", err)
		}
	}

	return Resolution{Found: true, Filename: filename, Result: result}, nil
}
