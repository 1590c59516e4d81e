package model

import "fmt"

// Kind identifies which variant a LoadState represents
type Kind string

const (
	// KindIdle means no load is underway
	KindIdle Kind = "Idle"

	// KindProgress means a load is underway with a known percent
	KindProgress Kind = "Progress"

	// KindSuccess means the last load finished successfully
	KindSuccess Kind = "Success"

	// KindError means the last load failed with a message
	KindError Kind = "Error"

	// KindOffline means no network is available
	KindOffline Kind = "Offline"
)

// String returns the string representation of Kind
func (k Kind) String() string {
	return string(k)
}

// LoadState is the loading state of a web-content view. Values are
// immutable; a state transition is a new value, never a mutation.
// percent is carried only by the Progress variant and message only by
// the Error variant.
type LoadState struct {
	kind    Kind
	percent float64
	message string
}

// Idle returns the state with no load underway
func Idle() LoadState {
	return LoadState{kind: KindIdle}
}

// Progress returns an in-progress state at the given percent. The range
// of percent (0–100 or 0–1) is the caller's convention and is not
// validated.
func Progress(percent float64) LoadState {
	return LoadState{kind: KindProgress, percent: percent}
}

// Success returns the state of a completed load
func Success() LoadState {
	return LoadState{kind: KindSuccess}
}

// Error returns a failed state carrying a human-readable message
func Error(message string) LoadState {
	return LoadState{kind: KindError, message: message}
}

// Offline returns the state used when no network is available
func Offline() LoadState {
	return LoadState{kind: KindOffline}
}

// Kind returns the variant discriminant
func (s LoadState) Kind() Kind {
	return s.kind
}

// Percent returns the load percent and true for the Progress variant,
// and 0, false for every other variant
func (s LoadState) Percent() (float64, bool) {
	if s.kind != KindProgress {
		return 0, false
	}
	return s.percent, true
}

// Message returns the failure message and true for the Error variant,
// and "", false for every other variant
func (s LoadState) Message() (string, bool) {
	if s.kind != KindError {
		return "", false
	}
	return s.message, true
}

// IsLoading returns true if a load is underway
func (s LoadState) IsLoading() bool {
	return s.kind == KindProgress
}

// IsSuccessful returns true if the last load completed
func (s LoadState) IsSuccessful() bool {
	return s.kind == KindSuccess
}

// HasError returns true if the last load failed
func (s LoadState) HasError() bool {
	return s.kind == KindError
}

// Equal reports whether two states are the same variant with the same
// variant payload. Progress compares percent, Error compares message;
// the remaining variants compare by discriminant alone.
func (s LoadState) Equal(other LoadState) bool {
	if s.kind != other.kind {
		return false
	}
	switch s.kind {
	case KindProgress:
		return s.percent == other.percent
	case KindError:
		return s.message == other.message
	default:
		return true
	}
}

// Describe returns a human-readable rendering of the state for display
// and logging. Not a stable machine-readable format.
func (s LoadState) Describe() string {
	switch s.kind {
	case KindIdle:
		return "Waiting to load"
	case KindProgress:
		return fmt.Sprintf("Loading: %g%%", s.percent)
	case KindSuccess:
		return "Loaded successfully"
	case KindError:
		return fmt.Sprintf("Load failed: %s", s.message)
	case KindOffline:
		return "Offline"
	default:
		return "Unknown state"
	}
}

// String implements fmt.Stringer via Describe
func (s LoadState) String() string {
	return s.Describe()
}
