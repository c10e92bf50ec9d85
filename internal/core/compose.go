package core

import (
	"strings"
	"time"
)

// rolePhrase maps a detected keyword to a user role. Kept as an ordered
// slice so extraction is deterministic.
type rolePhrase struct {
	keyword string
	role    string
}

var rolePhrases = []rolePhrase{
	{"admin", "administrator"},
	{"manage", "administrator"},
	{"api", "developer"},
	{"developer", "developer"},
	{"report", "manager"},
	{"analytics", "analyst"},
	{"data", "analyst"},
	{"payment", "customer"},
	{"order", "customer"},
	{"customer", "customer"},
}

// actionVerbs are the verbs an action phrase may start with.
var actionVerbs = []string{
	"create", "add", "update", "edit", "delete", "remove", "view", "see",
	"manage", "search", "find", "upload", "download", "send", "receive",
	"login", "register", "authenticate", "access", "configure", "setup",
	"enable", "disable", "share", "track", "export", "import",
}

// benefitPhrase maps a detected keyword to a default benefit sentence.
type benefitPhrase struct {
	keyword string
	benefit string
}

var benefitPhrases = []benefitPhrase{
	{"auth", "securely access my account"},
	{"login", "access the system securely"},
	{"search", "quickly find the information I need"},
	{"upload", "share and store my files"},
	{"manage", "efficiently organize my data"},
	{"notification", "stay informed about important updates"},
	{"api", "integrate with external systems"},
	{"dashboard", "have an overview of my information"},
	{"profile", "maintain my personal information"},
}

// Composer renders feature descriptions into Gherkin stories using the
// injected template library. This is the deterministic fallback floor
// for the whole pipeline: for any non-empty description it produces a
// story satisfying the ComposedStory invariants.
type Composer struct {
	lib *TemplateLibrary
}

// NewComposer creates a composer backed by the given library.
func NewComposer(lib *TemplateLibrary) *Composer {
	return &Composer{lib: lib}
}

// Compose fills the tag's template with role/action/benefit phrases
// extracted from the description and derives acceptance criteria from
// the rendered Then steps.
func (c *Composer) Compose(desc FeatureDescription, tag FeatureTag) (*ComposedStory, error) {
	normalized := NormalizeDescription(desc.Text)
	if normalized == "" {
		return nil, &InvalidInputError{Reason: "feature description cannot be empty"}
	}

	tmpl := c.lib.Template(tag)
	rawLower := strings.ToLower(strings.TrimSpace(desc.Text))

	benefit, benefitClause := extractBenefit(rawLower, tmpl)
	role := extractRole(normalized, tmpl)
	action := extractAction(stripClause(normalized, benefitClause))

	title := tmpl.Title
	if title == "" {
		title = deriveTitle(normalized)
	}

	scenarios := renderScenarios(tmpl.Scenarios, role, action, benefit)
	criteria := deriveCriteria(scenarios, role, action)

	storyType := desc.StoryType
	if storyType == "" {
		storyType = StoryTypeStory
	}
	priority := desc.Priority
	if priority == "" {
		priority = PriorityMedium
	}

	story := &ComposedStory{
		ID:                 NewStoryID(),
		Title:              title,
		Role:               role,
		Action:             action,
		Benefit:            benefit,
		Scenarios:          scenarios,
		AcceptanceCriteria: criteria,
		StoryType:          storyType,
		Priority:           priority,
		Tag:                tag,
		Source:             SourceTemplate,
		CreatedAt:          time.Now().UTC(),
	}
	if err := story.Validate(); err != nil {
		return nil, err
	}
	return story, nil
}

// extractRole finds a persona phrase in the description, falling back
// to the template's default role.
func extractRole(normalized string, tmpl StoryTemplate) string {
	for _, rp := range rolePhrases {
		if strings.Contains(normalized, rp.keyword) {
			return rp.role
		}
	}
	if tmpl.DefaultRole != "" {
		return tmpl.DefaultRole
	}
	return "user"
}

// extractAction isolates the verb phrase of the description: the first
// action verb plus up to two following words. When no verb is found the
// cleaned description itself (capped at eight words) becomes the action.
func extractAction(normalized string) string {
	words := strings.Fields(normalized)
	for i, w := range words {
		for _, verb := range actionVerbs {
			if w != verb {
				continue
			}
			end := i + 3
			if end > len(words) {
				end = len(words)
			}
			return strings.Join(words[i:end], " ")
		}
	}
	if len(words) > 8 {
		words = words[:8]
	}
	return "use " + strings.Join(words, " ")
}

// extractBenefit looks for an explicit "so that" / "in order to" clause
// in the raw text, then for a keyword-matched default, then falls back
// to the template's default benefit. It returns the benefit and the raw
// clause (including the marker) so callers can exclude it from action
// extraction.
func extractBenefit(rawLower string, tmpl StoryTemplate) (benefit, clause string) {
	for _, marker := range []string{"so that", "in order to"} {
		idx := strings.Index(rawLower, marker)
		if idx == -1 {
			continue
		}
		phrase := strings.TrimSpace(rawLower[idx+len(marker):])
		phrase = strings.TrimPrefix(phrase, "i can ")
		phrase = strings.TrimPrefix(phrase, "i ")
		phrase = strings.TrimRight(phrase, ".!? ")
		if phrase != "" {
			return phrase, rawLower[idx:]
		}
	}
	for _, bp := range benefitPhrases {
		if strings.Contains(rawLower, bp.keyword) {
			return bp.benefit, ""
		}
	}
	if tmpl.DefaultBenefit != "" {
		return tmpl.DefaultBenefit, ""
	}
	return "accomplish my goals efficiently", ""
}

// stripClause removes the benefit clause words from the normalized text
// so the action phrase does not duplicate them.
func stripClause(normalized, clause string) string {
	if clause == "" {
		return normalized
	}
	remove := NormalizeDescription(clause)
	if remove == "" {
		return normalized
	}
	stripped := strings.TrimSpace(strings.Replace(normalized, remove, "", 1))
	if stripped == "" {
		return normalized
	}
	return stripped
}

// deriveTitle builds a feature title from the first words of the
// normalized description.
func deriveTitle(normalized string) string {
	words := strings.Fields(normalized)
	if len(words) > 3 {
		words = words[:3]
	}
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// renderScenarios substitutes role/action/benefit into the scenario
// skeletons. Every placeholder is resolved here; the quality validator
// treats a leftover placeholder as a structural defect.
func renderScenarios(skeletons []ScenarioTemplate, role, action, benefit string) []Scenario {
	r := strings.NewReplacer("{role}", role, "{action}", action, "{benefit}", benefit)
	scenarios := make([]Scenario, 0, len(skeletons))
	for _, sk := range skeletons {
		scenarios = append(scenarios, Scenario{
			Name:  r.Replace(sk.Name),
			Given: renderSteps(r, sk.Given),
			When:  renderSteps(r, sk.When),
			Then:  renderSteps(r, sk.Then),
		})
	}
	return scenarios
}

func renderSteps(r *strings.Replacer, steps []string) []string {
	out := make([]string, len(steps))
	for i, s := range steps {
		out[i] = r.Replace(s)
	}
	return out
}

// deriveCriteria rewrites every Then step as a standalone testable
// statement and appends the baseline criteria every story carries.
func deriveCriteria(scenarios []Scenario, role, action string) []string {
	var criteria []string
	for _, sc := range scenarios {
		for _, then := range sc.Then {
			criteria = append(criteria,
				"Given "+sc.Given[0]+", when "+sc.When[0]+", then "+then)
		}
	}
	criteria = append(criteria,
		"The "+role+" can "+action+" successfully",
		"Clear error messages are shown for invalid input",
	)
	return criteria
}
