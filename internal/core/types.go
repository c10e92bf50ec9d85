package core

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// StoryType categorizes the scope of a generated story.
type StoryType string

const (
	StoryTypeEpic    StoryType = "epic"
	StoryTypeFeature StoryType = "feature"
	StoryTypeStory   StoryType = "story"
	StoryTypeTask    StoryType = "task"
)

// ParseStoryType converts a string into a StoryType, defaulting to "story".
func ParseStoryType(s string) (StoryType, error) {
	switch StoryType(strings.ToLower(strings.TrimSpace(s))) {
	case StoryTypeEpic:
		return StoryTypeEpic, nil
	case StoryTypeFeature:
		return StoryTypeFeature, nil
	case StoryTypeStory, "":
		return StoryTypeStory, nil
	case StoryTypeTask:
		return StoryTypeTask, nil
	}
	return "", fmt.Errorf("unknown story type: %q", s)
}

// Priority levels for stories.
type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

// ParsePriority converts a string into a Priority, defaulting to "medium".
func ParsePriority(s string) (Priority, error) {
	switch Priority(strings.ToLower(strings.TrimSpace(s))) {
	case PriorityLow:
		return PriorityLow, nil
	case PriorityMedium, "":
		return PriorityMedium, nil
	case PriorityHigh:
		return PriorityHigh, nil
	case PriorityCritical:
		return PriorityCritical, nil
	}
	return "", fmt.Errorf("unknown priority: %q", s)
}

// FeatureTag is the closed-set classification of a feature description.
type FeatureTag string

const (
	TagAuthentication FeatureTag = "authentication"
	TagCRUD           FeatureTag = "crud"
	TagAPIIntegration FeatureTag = "api_integration"
	TagSearch         FeatureTag = "search"
	TagFileManagement FeatureTag = "file_management"
	TagNotification   FeatureTag = "notification"
	TagGeneric        FeatureTag = "generic"
)

// tagPrecedence is the fixed tie-break order for classification.
// When two tags score equally, the one listed first wins.
var tagPrecedence = []FeatureTag{
	TagAuthentication,
	TagCRUD,
	TagAPIIntegration,
	TagSearch,
	TagFileManagement,
	TagNotification,
}

// FeatureDescription is the immutable input to a generation call.
type FeatureDescription struct {
	Text           string    `json:"text"`
	StoryType      StoryType `json:"story_type"`
	Priority       Priority  `json:"priority"`
	ProjectContext string    `json:"project_context,omitempty"`
}

// Source identifies which generation path produced a story.
type Source string

const (
	SourceTemplate Source = "template"
	SourceAI       Source = "ai"
)

// Scenario is one Gherkin scenario with ordered step lists.
type Scenario struct {
	Name  string   `json:"name"`
	Given []string `json:"given"`
	When  []string `json:"when"`
	Then  []string `json:"then"`
}

// StepCount returns the total number of steps in the scenario.
func (s Scenario) StepCount() int {
	return len(s.Given) + len(s.When) + len(s.Then)
}

// ComposedStory is a fully synthesized user story. Instances are
// created fresh per call and never mutated after construction.
type ComposedStory struct {
	ID                 string     `json:"id"`
	Title              string     `json:"title"`
	Role               string     `json:"role"`
	Action             string     `json:"action"`
	Benefit            string     `json:"benefit"`
	Scenarios          []Scenario `json:"scenarios"`
	AcceptanceCriteria []string   `json:"acceptance_criteria"`
	StoryType          StoryType  `json:"story_type"`
	Priority           Priority   `json:"priority"`
	Tag                FeatureTag `json:"feature_tag"`
	Source             Source     `json:"source"`
	CreatedAt          time.Time  `json:"created_at"`
}

// NewStoryID mints a unique story identifier. IDs are assigned here,
// not by the storage collaborator.
func NewStoryID() string {
	return "story-" + uuid.NewString()
}

// Validate checks the story against the structural invariants every
// returned story must satisfy: at least one scenario, at least one
// acceptance criterion, and a non-empty title.
func (s *ComposedStory) Validate() error {
	if s.Title == "" {
		return &CompositionInvariantError{Field: "title", Message: "required"}
	}
	if len(s.Scenarios) == 0 {
		return &CompositionInvariantError{Field: "scenarios", Message: "at least one scenario required"}
	}
	for i, sc := range s.Scenarios {
		if len(sc.Given) == 0 || len(sc.When) == 0 || len(sc.Then) == 0 {
			return &CompositionInvariantError{
				Field:   fmt.Sprintf("scenarios[%d]", i),
				Message: "scenario must have given, when, and then steps",
			}
		}
	}
	if len(s.AcceptanceCriteria) == 0 {
		return &CompositionInvariantError{Field: "acceptance_criteria", Message: "at least one criterion required"}
	}
	return nil
}

// Gherkin renders the story as multi-line Gherkin text.
func (s *ComposedStory) Gherkin() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Feature: %s\n", s.Title)
	fmt.Fprintf(&b, "  As a %s\n", s.Role)
	fmt.Fprintf(&b, "  I want to %s\n", s.Action)
	fmt.Fprintf(&b, "  So that I can %s\n", s.Benefit)

	for _, sc := range s.Scenarios {
		fmt.Fprintf(&b, "\n  Scenario: %s\n", sc.Name)
		writeSteps(&b, "Given", sc.Given)
		writeSteps(&b, "When", sc.When)
		writeSteps(&b, "Then", sc.Then)
	}
	return strings.TrimRight(b.String(), "\n")
}

// writeSteps writes a step group, using "And" for continuation lines.
func writeSteps(b *strings.Builder, keyword string, steps []string) {
	for i, step := range steps {
		kw := keyword
		if i > 0 {
			kw = "And"
		}
		fmt.Fprintf(b, "    %s %s\n", kw, step)
	}
}

// QualityMetrics is the advisory quality report attached to a story.
type QualityMetrics struct {
	QualityScore   float64      `json:"quality_score"`
	IsValidGherkin bool         `json:"is_valid_gherkin"`
	Defects        []string     `json:"defects,omitempty"`
	Suggestions    []string     `json:"suggestions,omitempty"`
	Completeness   Completeness `json:"completeness"`
}

// Completeness summarizes which structural elements are present.
type Completeness struct {
	HasFeature       bool `json:"has_feature"`
	HasUserStory     bool `json:"has_user_story"`
	HasScenarios     bool `json:"has_scenarios"`
	HasGivenWhenThen bool `json:"has_given_when_then"`
}

// StoryResult is the flat record returned to callers: the composed
// story plus its attached quality metrics and effort estimate.
type StoryResult struct {
	StoryID            string     `json:"story_id"`
	Title              string     `json:"title"`
	FeatureDescription string     `json:"feature_description"`
	GherkinContent     string     `json:"gherkin_content"`
	Role               string     `json:"role"`
	Action             string     `json:"action"`
	Benefit            string     `json:"benefit"`
	AcceptanceCriteria []string   `json:"acceptance_criteria"`
	EstimatedEffort    int        `json:"estimated_effort"`
	QualityScore       float64    `json:"quality_score"`
	IsValidGherkin     bool       `json:"is_valid_gherkin"`
	Defects            []string   `json:"defects,omitempty"`
	Suggestions        []string   `json:"suggestions,omitempty"`
	Source             Source     `json:"source"`
	FeatureTag         FeatureTag `json:"feature_tag"`
	StoryType          StoryType  `json:"story_type"`
	Priority           Priority   `json:"priority"`
	CreatedAt          time.Time  `json:"created_at"`
}
