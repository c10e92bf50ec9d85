package llm

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/autodevhub/storygen/internal/core"
)

// StoryPayload is the provider response shape. It mirrors the structure
// the template composer produces so both paths feed the same pipeline.
type StoryPayload struct {
	Title              string          `json:"title"`
	Role               string          `json:"role"`
	Action             string          `json:"action"`
	Benefit            string          `json:"benefit"`
	Scenarios          []core.Scenario `json:"scenarios"`
	AcceptanceCriteria []string        `json:"acceptance_criteria"`
}

// Validate checks the payload satisfies the same structural floor as a
// composed story. A payload failing this check is treated identically
// to a provider failure.
func (p *StoryPayload) Validate() error {
	if strings.TrimSpace(p.Title) == "" {
		return fmt.Errorf("missing title")
	}
	if len(p.Scenarios) == 0 {
		return fmt.Errorf("no scenarios")
	}
	for i, sc := range p.Scenarios {
		if len(sc.Given) == 0 || len(sc.When) == 0 || len(sc.Then) == 0 {
			return fmt.Errorf("scenario %d missing given/when/then steps", i)
		}
	}
	if len(p.AcceptanceCriteria) == 0 {
		return fmt.Errorf("no acceptance criteria")
	}
	return nil
}

// ToStory converts the payload into a ComposedStory, inheriting the
// classification and request metadata from the deterministic draft.
func (p *StoryPayload) ToStory(draft *core.ComposedStory) *core.ComposedStory {
	role := p.Role
	if role == "" {
		role = draft.Role
	}
	action := p.Action
	if action == "" {
		action = draft.Action
	}
	benefit := p.Benefit
	if benefit == "" {
		benefit = draft.Benefit
	}

	return &core.ComposedStory{
		ID:                 core.NewStoryID(),
		Title:              p.Title,
		Role:               role,
		Action:             action,
		Benefit:            benefit,
		Scenarios:          p.Scenarios,
		AcceptanceCriteria: p.AcceptanceCriteria,
		StoryType:          draft.StoryType,
		Priority:           draft.Priority,
		Tag:                draft.Tag,
		Source:             core.SourceAI,
		CreatedAt:          time.Now().UTC(),
	}
}

// ParseStoryJSON extracts and validates the JSON story payload from raw
// model output. Output may be wrapped in markdown fences or surrounded
// by commentary.
func ParseStoryJSON(output string) (*StoryPayload, error) {
	output = strings.TrimSpace(output)

	// Remove markdown fences if present
	if strings.HasPrefix(output, "```json") {
		output = strings.TrimPrefix(output, "```json")
		output = strings.TrimSuffix(output, "```")
		output = strings.TrimSpace(output)
	} else if strings.HasPrefix(output, "```") {
		output = strings.TrimPrefix(output, "```")
		output = strings.TrimSuffix(output, "```")
		output = strings.TrimSpace(output)
	}

	// Find JSON object
	start := strings.Index(output, "{")
	end := strings.LastIndex(output, "}")
	if start == -1 || end == -1 || end < start {
		return nil, fmt.Errorf("no valid JSON found in response")
	}

	var payload StoryPayload
	if err := json.Unmarshal([]byte(output[start:end+1]), &payload); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}

	if err := payload.Validate(); err != nil {
		return nil, fmt.Errorf("response shape invalid: %w", err)
	}

	return &payload, nil
}
