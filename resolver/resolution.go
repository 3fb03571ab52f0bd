package resolver

// Namespaces and specifier markers shared with the build host.
const (
	// NamespaceFile is the host's default on-disk namespace.
	NamespaceFile = "file"

	// NamespaceVirtual tags results whose content is produced in memory.
	NamespaceVirtual = "embroider-virtual"

	// NamespacePolyfill is the host's built-in polyfill namespace. Files in
	// it are allowed to pre-bundle normally even when they live under the
	// app root.
	NamespacePolyfill = "embroider-polyfill"

	// VirtualPrefix marks specifiers that name virtual modules.
	VirtualPrefix = "embroider-virtual:"

	// reservedNamespacePrefix covers every namespace this bridge owns.
	reservedNamespacePrefix = "embroider-"

	// nullSentinel prefixes specifiers other plugins have already claimed.
	nullSentinel = "\x00"
)

// ImportKind describes how a specifier was imported (import statement,
// require call, dynamic import). Passed through to the host unchanged.
type ImportKind string

// HostResult is the narrow slice of the host resolver's native result this
// bridge consumes. Payload carries opaque host data, such as the
// back-reference a virtual module's load step needs.
type HostResult struct {
	Path      string
	External  bool
	Namespace string
	Errors    []string
	Payload   any
}

// ModuleRequest identifies one resolution attempt. Immutable for the
// lifetime of a single Resolve call.
type ModuleRequest struct {
	// ID correlates log entries for one intercepted call. It plays no part
	// in ledger keying.
	ID        string
	Specifier string
	FromFile  string
	Meta      any
}

// VirtualModule identifies an in-memory module with no backing file.
type VirtualModule struct {
	Specifier string
}

// Resolution is the terminal outcome of one resolution request. Found
// distinguishes the two variants: when false, Diagnostics carries the host's
// error messages and the remaining fields are zero.
type Resolution struct {
	Found       bool
	Filename    string
	Result      HostResult
	Virtual     *VirtualModule
	Diagnostics []string
}

// NotFoundResponse synthesizes a terminal not-found resolution without
// consulting the host resolver.
func NotFoundResponse(req ModuleRequest) Resolution {
	return Resolution{
		Diagnostics: []string{"module not found " + req.Specifier},
	}
}

// VirtualResponse synthesizes a terminal resolution for a virtual module.
// The result's payload carries the virtual module back to the load step.
func VirtualResponse(virtual VirtualModule) Resolution {
	return Resolution{
		Found:    true,
		Filename: virtual.Specifier,
		Result: HostResult{
			Path:      virtual.Specifier,
			Namespace: NamespaceVirtual,
			Payload:   virtual,
		},
		Virtual: &virtual,
	}
}
