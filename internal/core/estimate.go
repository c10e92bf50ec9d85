package core

import "strings"

// effortScale is the fixed set of story point values.
var effortScale = []int{1, 2, 3, 5, 8, 13}

// ValidEffort reports whether n is a value on the effort scale.
func ValidEffort(n int) bool {
	for _, v := range effortScale {
		if n == v {
			return true
		}
	}
	return false
}

// tagBaseEffort carries the per-tag complexity baseline. Authentication
// and file management tend to hide the most edge cases.
var tagBaseEffort = map[FeatureTag]int{
	TagAuthentication: 6,
	TagCRUD:           4,
	TagAPIIntegration: 5,
	TagSearch:         3,
	TagFileManagement: 6,
	TagNotification:   3,
	TagGeneric:        2,
}

// complexityMarker adds a bonus when found in the story's title, action,
// or benefit text.
type complexityMarker struct {
	keyword string
	bonus   int
}

var complexityMarkers = []complexityMarker{
	{"integration", 2},
	{"security", 2},
	{"authentication", 2},
	{"payment", 3},
	{"real-time", 2},
	{"dashboard", 2},
	{"admin", 2},
	{"report", 2},
	{"analytics", 2},
	{"machine learning", 3},
	{"complex", 2},
	{"multiple", 1},
}

// EstimateEffort scores a story's complexity on the Fibonacci-like
// scale {1,2,3,5,8,13} from structural signals: scenario count, total
// step count, acceptance criteria count, and tag/keyword complexity
// markers. The signal weights are all positive, so the estimate never
// decreases when scenarios or criteria are added. Pure function, no I/O.
func EstimateEffort(story *ComposedStory) int {
	score := tagBaseEffort[story.Tag]

	score += len(story.Scenarios) * 2
	score += len(story.AcceptanceCriteria)

	steps := 0
	for _, sc := range story.Scenarios {
		steps += sc.StepCount()
	}
	score += steps / 2

	text := strings.ToLower(story.Title + " " + story.Action + " " + story.Benefit)
	for _, m := range complexityMarkers {
		if strings.Contains(text, m.keyword) {
			score += m.bonus
		}
	}

	return toScale(score)
}

// toScale maps a raw score onto the nearest story point band.
func toScale(score int) int {
	switch {
	case score <= 4:
		return 1
	case score <= 7:
		return 2
	case score <= 10:
		return 3
	case score <= 14:
		return 5
	case score <= 19:
		return 8
	default:
		return 13
	}
}
