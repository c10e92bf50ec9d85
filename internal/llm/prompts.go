package llm

import (
	"fmt"

	"github.com/autodevhub/storygen/internal/core"
)

// Prompt is one generation request rendered for a provider.
type Prompt struct {
	System string
	User   string
}

// SystemPrompt instructs the model to return the story as strict JSON
// so the response parser can map it onto the same structures the
// template composer produces.
const SystemPrompt = `You are an expert Agile coach and product manager. You convert feature descriptions into well-formed user stories in Gherkin style.

Return ONLY a JSON object with this exact structure, no markdown fences and no commentary:

{
  "title": "Feature title",
  "role": "user role for the As a clause",
  "action": "what the role wants to do",
  "benefit": "why they want it",
  "scenarios": [
    {
      "name": "Scenario name",
      "given": ["precondition"],
      "when": ["action taken"],
      "then": ["expected outcome"]
    }
  ],
  "acceptance_criteria": ["testable statement"]
}

Rules:
- Include at least a happy-path scenario and an error/edge-case scenario.
- Every scenario needs at least one given, one when, and one then step.
- Acceptance criteria must be standalone testable statements.
- Steps are plain sentences without Given/When/Then keywords.`

// BuildUserPrompt renders the feature description for the model.
func BuildUserPrompt(desc core.FeatureDescription) string {
	prompt := fmt.Sprintf(`Generate a user story for this feature.

FEATURE DESCRIPTION:
%s

STORY TYPE: %s
PRIORITY: %s`, desc.Text, desc.StoryType, desc.Priority)

	if desc.ProjectContext != "" {
		prompt += fmt.Sprintf("\n\nPROJECT CONTEXT:\n%s", desc.ProjectContext)
	}

	prompt += "\n\nReturn the JSON object only."
	return prompt
}
