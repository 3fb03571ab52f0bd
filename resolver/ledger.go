package resolver

import "sync"

// StatusState enumerates the ledger states for one in-flight specifier.
type StatusState int

const (
	// StatusPending is the zero value: a request was issued and nobody has
	// written an outcome yet. Absent ledger entries read as pending too.
	StatusPending StatusState = iota
	StatusNotFound
	StatusFound
)

// Status is a ledger value. Filename is set only for StatusFound and holds
// the true on-disk path the cooperating resolver saw before the host
// externalized it.
type Status struct {
	State    StatusState
	Filename string
}

// FoundStatus builds a found status for the given on-disk path.
func FoundStatus(filename string) Status {
	return Status{State: StatusFound, Filename: filename}
}

// NotFoundStatus builds a not-found status.
func NotFoundStatus() Status {
	return Status{State: StatusNotFound}
}

// Ledger coordinates the two resolution passes. The adapter marks a
// specifier pending immediately before delegating to the host; the
// cooperating resolver, invoked zero or more times while the host call is in
// flight, writes the outcome it actually decided; the adapter reads the entry
// back once the host returns.
//
// Entries are keyed by specifier only, not by request identity, so two
// concurrent resolutions of the identical specifier share one slot. The host
// is assumed not to interleave two resolutions of the same specifier+importer
// pair mid-flight; if it does, entries can be misattributed. That is a
// documented limitation of the design, not something the ledger detects.
type Ledger struct {
	mu      sync.Mutex
	entries map[string]Status
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{entries: make(map[string]Status)}
}

// MarkPending unconditionally sets the entry for id to pending. Called once
// per request, immediately before the host resolver is invoked.
func (l *Ledger) MarkPending(id string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries[id] = Status{}
}

// WriteStatus records the cooperating resolver's outcome for id. The write
// takes effect only while the current entry is pending: a slot whose value
// was already written, or that no request is currently pending on, is left
// untouched.
func (l *Ledger) WriteStatus(id string, status Status) {
	l.mu.Lock()
	defer l.mu.Unlock()
	current, ok := l.entries[id]
	if !ok || current.State != StatusPending {
		return
	}
	l.entries[id] = status
}

// ReadStatus consumes the entry for id: it returns the current value,
// defaulting to pending when absent, and deletes the entry. A second read
// without an intervening MarkPending reports pending.
func (l *Ledger) ReadStatus(id string) Status {
	l.mu.Lock()
	defer l.mu.Unlock()
	status := l.entries[id]
	delete(l.entries, id)
	return status
}
