package core

import (
	"fmt"
	"strings"
)

// Structural check weights. They sum to 1.0; density bonuses on top are
// capped so the final score never exceeds 1.0.
const (
	weightTitle        = 0.20
	weightSteps        = 0.30
	weightCriteria     = 0.20
	weightPlaceholders = 0.20
	weightUserStory    = 0.10

	bonusExtraScenario = 0.05
	bonusExtraCriteria = 0.05
)

// ValidateStory checks a composed story for structural validity and
// returns advisory quality metrics. Validation never rejects or retries
// generation; it only reports.
func ValidateStory(story *ComposedStory) QualityMetrics {
	var defects []string
	score := 0.0

	hasTitle := strings.TrimSpace(story.Title) != ""
	if hasTitle {
		score += weightTitle
	} else {
		defects = append(defects, "story title is empty")
	}

	stepsOK := len(story.Scenarios) > 0
	if len(story.Scenarios) == 0 {
		defects = append(defects, "story has no scenarios")
	}
	for i, sc := range story.Scenarios {
		var missing []string
		if len(sc.Given) == 0 || allBlank(sc.Given) {
			missing = append(missing, "Given")
		}
		if len(sc.When) == 0 || allBlank(sc.When) {
			missing = append(missing, "When")
		}
		if len(sc.Then) == 0 || allBlank(sc.Then) {
			missing = append(missing, "Then")
		}
		if len(missing) > 0 {
			stepsOK = false
			defects = append(defects, fmt.Sprintf(
				"scenario %d (%s) is missing step(s): %s", i+1, sc.Name, strings.Join(missing, ", ")))
		}
	}
	if stepsOK {
		score += weightSteps
	}

	criteriaOK := len(story.AcceptanceCriteria) > 0
	if criteriaOK {
		score += weightCriteria
	} else {
		defects = append(defects, "story has no acceptance criteria")
	}

	placeholdersOK := true
	for _, sc := range story.Scenarios {
		for _, step := range append(append(append([]string{}, sc.Given...), sc.When...), sc.Then...) {
			if strings.Contains(step, "{") && strings.Contains(step, "}") {
				placeholdersOK = false
				defects = append(defects, fmt.Sprintf(
					"scenario %q contains an unresolved template placeholder", sc.Name))
				break
			}
		}
		if !placeholdersOK {
			break
		}
	}
	if placeholdersOK {
		score += weightPlaceholders
	}

	userStoryOK := story.Role != "" && story.Action != "" && story.Benefit != ""
	if userStoryOK {
		score += weightUserStory
	} else {
		defects = append(defects, "user story narrative (role/action/benefit) is incomplete")
	}

	var suggestions []string
	if len(story.Scenarios) >= 2 {
		score += bonusExtraScenario
	} else {
		suggestions = append(suggestions, "consider adding an error-path scenario")
	}
	if len(story.AcceptanceCriteria) >= 3 {
		score += bonusExtraCriteria
	} else {
		suggestions = append(suggestions, "consider adding more acceptance criteria")
	}
	if score > 1.0 {
		score = 1.0
	}

	hasGWT := stepsOK && len(story.Scenarios) > 0

	return QualityMetrics{
		QualityScore:   score,
		IsValidGherkin: hasTitle && stepsOK && criteriaOK && placeholdersOK && userStoryOK,
		Defects:        defects,
		Suggestions:    suggestions,
		Completeness: Completeness{
			HasFeature:       hasTitle,
			HasUserStory:     userStoryOK,
			HasScenarios:     len(story.Scenarios) > 0,
			HasGivenWhenThen: hasGWT,
		},
	}
}

func allBlank(steps []string) bool {
	for _, s := range steps {
		if strings.TrimSpace(s) != "" {
			return false
		}
	}
	return true
}
