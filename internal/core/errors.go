package core

import "fmt"

// InvalidInputError indicates an empty or whitespace-only description.
// It is fatal and surfaced to the caller immediately.
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s", e.Reason)
}

// CompositionInvariantError indicates the composer produced a story that
// violates its own structural guarantees. This points at a template
// authoring bug and is fatal, since there is no further fallback.
type CompositionInvariantError struct {
	Field   string
	Message string
}

func (e *CompositionInvariantError) Error() string {
	return fmt.Sprintf("composition invariant violated: %s - %s", e.Field, e.Message)
}
