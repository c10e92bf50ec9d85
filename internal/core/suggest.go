package core

import "strings"

// AnalyzeDescription returns advisory hints for improving a feature
// description before generation. Purely informational; a sparse
// description still generates a story.
func AnalyzeDescription(text string) []string {
	var suggestions []string
	lower := strings.ToLower(text)
	words := strings.Fields(lower)

	if len(words) < 5 {
		suggestions = append(suggestions, "consider providing more detail about the feature requirements")
	}
	if !containsAny(lower, "user", "admin", "customer", "developer", "manager") {
		suggestions = append(suggestions, "specify who will be using this feature (user role)")
	}
	if !containsAny(lower, "should", "must", "need", "want", "require") {
		suggestions = append(suggestions, "include what the feature should accomplish or enable")
	}
	if strings.Contains(lower, "auth") && !strings.Contains(lower, "secur") {
		suggestions = append(suggestions, "consider mentioning security requirements for authentication features")
	}
	if containsAny(lower, "file", "upload", "download") && !strings.Contains(lower, "format") {
		suggestions = append(suggestions, "specify supported file formats and size limits")
	}
	if containsAny(lower, "search", "find") && !strings.Contains(lower, "result") {
		suggestions = append(suggestions, "describe how search results should be displayed or filtered")
	}

	if len(suggestions) == 0 {
		suggestions = append(suggestions,
			"think about error scenarios and edge cases",
			"specify any integration requirements with existing systems",
		)
	}
	return suggestions
}

func containsAny(s string, substrs ...string) bool {
	for _, sub := range substrs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
