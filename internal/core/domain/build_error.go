package domain

import (
	"errors"
	"fmt"
)

// BuildError is a reportable build failure. It carries idempotency state so
// that the same error object, bubbling through multiple logging layers, is
// only printed to the user once.
type BuildError struct {
	// Message is the human-readable failure description.
	Message string
	// Name classifies the error ("BuildError" unless copied from a source).
	Name string
	// Stack is an optional stack trace copied from the source failure.
	Stack string
	// HasBeenLogged is set once the message has been printed to the user.
	// Logger.Fail owns this field; see its contract.
	HasBeenLogged bool
	// UpdatedDiagnostics is set once structured diagnostics derived from
	// this error have been refreshed. It is reserved state managed by the
	// external diagnostics collaborator; the logging core never writes it.
	UpdatedDiagnostics bool

	cause error
}

// BuildErrorJSON is the stable serialization of a BuildError for
// cross-process transport.
type BuildErrorJSON struct {
	Message            string `json:"message"`
	Name               string `json:"name"`
	Stack              string `json:"stack,omitempty"`
	HasBeenLogged      bool   `json:"hasBeenLogged"`
	UpdatedDiagnostics bool   `json:"updatedDiagnostics"`
}

// NewBuildError converts an arbitrary failure value into a BuildError.
// This is the single boundary where loosely-typed failures are probed:
// known shapes contribute their message, name, stack and logging-state
// flags; everything else is rendered with %v. Already-reported state is
// always preserved, never reset.
func NewBuildError(v any) *BuildError {
	be := &BuildError{Name: "BuildError"}

	switch src := v.(type) {
	case nil:
	case *BuildError:
		if src != nil {
			*be = *src
		}
	case BuildError:
		*be = src
	case BuildErrorJSON:
		be.Message = src.Message
		be.Stack = src.Stack
		be.HasBeenLogged = src.HasBeenLogged
		be.UpdatedDiagnostics = src.UpdatedDiagnostics
		if src.Name != "" {
			be.Name = src.Name
		}
	case map[string]any:
		if s, ok := src["message"].(string); ok {
			be.Message = s
		}
		if s, ok := src["name"].(string); ok && s != "" {
			be.Name = s
		}
		if s, ok := src["stack"].(string); ok {
			be.Stack = s
		}
		if b, ok := src["hasBeenLogged"].(bool); ok {
			be.HasBeenLogged = b
		}
		if b, ok := src["updatedDiagnostics"].(bool); ok {
			be.UpdatedDiagnostics = b
		}
	case error:
		var nested *BuildError
		if errors.As(src, &nested) {
			*be = *nested
			break
		}
		be.Message = src.Error()
		be.cause = src
	case string:
		be.Message = src
	default:
		be.Message = fmt.Sprintf("%v", src)
	}

	return be
}

// Error implements the error interface.
func (e *BuildError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Name
}

// Unwrap returns the source failure this error was converted from, if any.
func (e *BuildError) Unwrap() error {
	return e.cause
}

// ToJSON returns the stable serialization of the error, including its
// logging-state flags.
func (e *BuildError) ToJSON() BuildErrorJSON {
	return BuildErrorJSON{
		Message:            e.Message,
		Name:               e.Name,
		Stack:              e.Stack,
		HasBeenLogged:      e.HasBeenLogged,
		UpdatedDiagnostics: e.UpdatedDiagnostics,
	}
}

// IgnorableError signals that a failure must be suppressed entirely: no
// console output, no event emission. Logger.Fail treats it as a no-op.
type IgnorableError struct {
	Message string
}

// NewIgnorableError creates a new IgnorableError with the given message.
func NewIgnorableError(msg string) *IgnorableError {
	return &IgnorableError{Message: msg}
}

// Error implements the error interface.
func (e *IgnorableError) Error() string {
	return e.Message
}
