package core

import "context"

// Enhancer is the optional AI enhancement path. It receives the
// deterministic draft and returns either a richer story or the draft
// itself; it never surfaces provider failures. This matches llm.Chain
// but is defined here to avoid import cycles.
type Enhancer interface {
	Enhance(ctx context.Context, desc FeatureDescription, draft *ComposedStory) (*ComposedStory, error)
}

// GenerateRequest carries one generation call's inputs.
type GenerateRequest struct {
	Description    string
	StoryType      StoryType
	Priority       Priority
	ProjectContext string
	UseAI          bool
}

// Generator runs the full pipeline: classify, compose, optionally
// enhance, then annotate with quality metrics and an effort estimate.
// It is stateless per call and safe for concurrent use.
type Generator struct {
	classifier *Classifier
	composer   *Composer
	enhancer   Enhancer
}

// NewGenerator wires the pipeline. A nil enhancer disables the AI path
// entirely; every story then comes from the template composer.
func NewGenerator(lib *TemplateLibrary, enhancer Enhancer) *Generator {
	return &Generator{
		classifier: NewClassifier(lib),
		composer:   NewComposer(lib),
		enhancer:   enhancer,
	}
}

// Generate produces a StoryResult for the request. The only errors a
// caller can observe are InvalidInputError for an empty description and
// CompositionInvariantError for a template-authoring bug; AI failures
// are absorbed by the enhancement chain.
func (g *Generator) Generate(ctx context.Context, req GenerateRequest) (*StoryResult, error) {
	tag, err := g.classifier.Classify(req.Description)
	if err != nil {
		return nil, err
	}

	desc := FeatureDescription{
		Text:           req.Description,
		StoryType:      req.StoryType,
		Priority:       req.Priority,
		ProjectContext: req.ProjectContext,
	}

	draft, err := g.composer.Compose(desc, tag)
	if err != nil {
		return nil, err
	}

	story := draft
	if req.UseAI && g.enhancer != nil {
		enhanced, err := g.enhancer.Enhance(ctx, desc, draft)
		switch {
		case err != nil && ctx.Err() != nil:
			// Caller-initiated cancellation aborts the pipeline.
			return nil, err
		case err == nil && enhanced != nil:
			story = enhanced
		}
	}

	return buildResult(desc, story), nil
}

// buildResult attaches quality metrics and the effort estimate to a
// composed story, producing the flat caller-facing record.
func buildResult(desc FeatureDescription, story *ComposedStory) *StoryResult {
	metrics := ValidateStory(story)
	effort := EstimateEffort(story)

	criteria := make([]string, len(story.AcceptanceCriteria))
	copy(criteria, story.AcceptanceCriteria)

	return &StoryResult{
		StoryID:            story.ID,
		Title:              story.Title,
		FeatureDescription: desc.Text,
		GherkinContent:     story.Gherkin(),
		Role:               story.Role,
		Action:             story.Action,
		Benefit:            story.Benefit,
		AcceptanceCriteria: criteria,
		EstimatedEffort:    effort,
		QualityScore:       metrics.QualityScore,
		IsValidGherkin:     metrics.IsValidGherkin,
		Defects:            metrics.Defects,
		Suggestions:        metrics.Suggestions,
		Source:             story.Source,
		FeatureTag:         story.Tag,
		StoryType:          story.StoryType,
		Priority:           story.Priority,
		CreatedAt:          story.CreatedAt,
	}
}
