package notify

import "time"

// EventKind distinguishes the three independent status surfaces.
type EventKind string

const (
	// KindLoading toggles the busy spinner. Exactly one evaluation can be
	// outstanding, so Active is a plain flag, not a counter.
	KindLoading EventKind = "loading"
	// KindError sets or clears the persistent error banner. It never
	// auto-dismisses; an empty message clears it.
	KindError EventKind = "error"
	// KindToast appends a transient notice. Toasts stack and auto-dismiss
	// client-side after the configured interval.
	KindToast EventKind = "toast"
)

// Event is one status update pushed to every connected page.
type Event struct {
	Kind      EventKind `json:"kind"`
	Message   string    `json:"message,omitempty"`
	Active    bool      `json:"active,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
