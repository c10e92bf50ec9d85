package core

import (
	"context"
	"fmt"
	"strings"
)

// Refine re-runs the pipeline with the original story's action/benefit
// context merged with free-text feedback. The returned story is
// structurally independent of the original: it gets a fresh identifier
// and shares no mutable state. Identity continuity across refinements
// is the storage collaborator's concern.
func (g *Generator) Refine(ctx context.Context, original *StoryResult, feedback string) (*StoryResult, error) {
	if strings.TrimSpace(feedback) == "" {
		return nil, &InvalidInputError{Reason: "refinement feedback cannot be empty"}
	}
	if original == nil {
		return nil, &InvalidInputError{Reason: "no story to refine"}
	}

	// Re-classification may shift the tag if the feedback changes the
	// keyword density of the combined description.
	combined := fmt.Sprintf("%s so that %s. %s", original.Action, original.Benefit, feedback)

	return g.Generate(ctx, GenerateRequest{
		Description: combined,
		StoryType:   original.StoryType,
		Priority:    original.Priority,
		UseAI:       true,
	})
}
