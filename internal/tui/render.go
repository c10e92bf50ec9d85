package tui

import (
	"fmt"
	"strings"

	"github.com/autodevhub/storygen/internal/core"
)

// RenderStory formats a story result for terminal display.
func RenderStory(result *core.StoryResult) string {
	var b strings.Builder

	b.WriteString(BoxStyle.Render(renderGherkin(result.GherkinContent)))
	b.WriteString("\n\n")

	b.WriteString(SubtitleStyle.Render("Acceptance Criteria") + "\n")
	for _, c := range result.AcceptanceCriteria {
		fmt.Fprintf(&b, "  %s %s\n", SuccessStyle.Render("•"), c)
	}

	b.WriteString("\n" + SubtitleStyle.Render("Metrics") + "\n")
	fmt.Fprintf(&b, "  Story ID:  %s\n", result.StoryID)
	fmt.Fprintf(&b, "  Tag:       %s\n", result.FeatureTag)
	fmt.Fprintf(&b, "  Effort:    %d story points\n", result.EstimatedEffort)
	fmt.Fprintf(&b, "  Quality:   %.2f  (valid gherkin: %v)\n", result.QualityScore, result.IsValidGherkin)
	fmt.Fprintf(&b, "  Source:    %s\n", SourceStyle.Render(string(result.Source)))

	if len(result.Defects) > 0 {
		b.WriteString("\n" + WarningStyle.Render("Defects") + "\n")
		for _, d := range result.Defects {
			fmt.Fprintf(&b, "  %s %s\n", ErrorStyle.Render("✗"), d)
		}
	}
	if len(result.Suggestions) > 0 {
		b.WriteString("\n" + SubtitleStyle.Render("Suggestions") + "\n")
		for _, s := range result.Suggestions {
			fmt.Fprintf(&b, "  %s %s\n", HelpStyle.Render("→"), s)
		}
	}

	return b.String()
}

// renderGherkin highlights Gherkin keywords.
func renderGherkin(content string) string {
	keywords := []string{"Feature:", "Scenario:", "Given", "When", "Then", "And"}
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		trimmed := strings.TrimLeft(line, " ")
		for _, kw := range keywords {
			if strings.HasPrefix(trimmed, kw) {
				indent := line[:len(line)-len(trimmed)]
				rest := strings.TrimPrefix(trimmed, kw)
				lines[i] = indent + KeywordStyle.Render(kw) + rest
				break
			}
		}
	}
	return strings.Join(lines, "\n")
}
