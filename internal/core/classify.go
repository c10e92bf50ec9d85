package core

import "strings"

// fillerWords are dropped during normalization so keyword scoring works
// on the meaningful tokens. Very short descriptions keep everything.
var fillerWords = map[string]bool{
	"the": true, "a": true, "an": true, "and": true, "or": true,
	"but": true, "in": true, "on": true, "at": true, "to": true,
	"for": true, "of": true, "with": true, "by": true,
}

// NormalizeDescription lowercases the text, collapses whitespace, and
// strips filler words (unless the description is three words or fewer).
func NormalizeDescription(text string) string {
	words := strings.Fields(strings.ToLower(text))
	if len(words) <= 3 {
		return strings.Join(words, " ")
	}
	kept := words[:0]
	for _, w := range words {
		if !fillerWords[w] {
			kept = append(kept, w)
		}
	}
	return strings.Join(kept, " ")
}

// Classifier maps a feature description onto a FeatureTag using the
// template library's keyword vocabulary. Classification is a pure
// function: identical input always yields the identical tag.
type Classifier struct {
	lib *TemplateLibrary
}

// NewClassifier creates a classifier backed by the given library.
func NewClassifier(lib *TemplateLibrary) *Classifier {
	return &Classifier{lib: lib}
}

// Classify scores every tag by keyword matches against the normalized
// description. The highest score wins; ties break in the library's
// fixed precedence order. Zero matches across all tags yields generic.
func (c *Classifier) Classify(text string) (FeatureTag, error) {
	normalized := NormalizeDescription(text)
	if normalized == "" {
		return "", &InvalidInputError{Reason: "feature description cannot be empty"}
	}

	best := TagGeneric
	bestScore := 0
	for _, tag := range c.lib.Tags() {
		score := 0
		for _, kw := range c.lib.Keywords(tag) {
			if strings.Contains(normalized, kw) {
				score++
			}
		}
		// Strictly greater: earlier tags win ties by precedence order.
		if score > bestScore {
			best = tag
			bestScore = score
		}
	}
	return best, nil
}
