// Package output writes generated stories to their destination. The
// data store that persists stories is an external collaborator; this
// package only serializes what the pipeline returns.
package output

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/autodevhub/storygen/internal/core"
)

// JSONWriter serializes story results as indented JSON.
type JSONWriter struct {
	path string
}

// NewJSONWriter creates a writer. An empty path writes to stdout.
func NewJSONWriter(path string) *JSONWriter {
	return &JSONWriter{path: path}
}

// Write serializes the result to the configured destination.
func (w *JSONWriter) Write(result *core.StoryResult) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal story: %w", err)
	}

	if w.path == "" {
		fmt.Println(string(data))
		return nil
	}
	if err := os.WriteFile(w.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write story: %w", err)
	}
	return nil
}

// ReadStory loads a previously written story result, used by the refine
// command to pick up where generation left off.
func ReadStory(path string) (*core.StoryResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read story file: %w", err)
	}
	var result core.StoryResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("failed to parse story JSON: %w", err)
	}
	return &result, nil
}
