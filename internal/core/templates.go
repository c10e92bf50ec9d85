package core

// ScenarioTemplate is a scenario skeleton. Steps may contain {role},
// {action}, and {benefit} placeholders resolved at composition time.
type ScenarioTemplate struct {
	Name  string
	Given []string
	When  []string
	Then  []string
}

// StoryTemplate is the static skeleton for one feature tag.
type StoryTemplate struct {
	Tag            FeatureTag
	Title          string
	Keywords       []string
	DefaultRole    string
	DefaultBenefit string
	Scenarios      []ScenarioTemplate
}

// TemplateLibrary is the read-only catalog of story templates. It is
// constructed once and injected into the classifier and composer;
// nothing mutates it after construction.
type TemplateLibrary struct {
	templates map[FeatureTag]StoryTemplate
}

// NewTemplateLibrary builds a library from the given templates. Every
// template must carry at least one scenario with a Then step, since the
// composer relies on Then steps to derive acceptance criteria.
func NewTemplateLibrary(templates ...StoryTemplate) (*TemplateLibrary, error) {
	byTag := make(map[FeatureTag]StoryTemplate, len(templates))
	for _, t := range templates {
		if len(t.Scenarios) == 0 {
			return nil, &CompositionInvariantError{Field: string(t.Tag), Message: "template has no scenarios"}
		}
		for _, sc := range t.Scenarios {
			if len(sc.Given) == 0 || len(sc.When) == 0 || len(sc.Then) == 0 {
				return nil, &CompositionInvariantError{
					Field:   string(t.Tag),
					Message: "scenario skeleton missing given/when/then",
				}
			}
		}
		byTag[t.Tag] = t
	}
	if _, ok := byTag[TagGeneric]; !ok {
		return nil, &CompositionInvariantError{Field: string(TagGeneric), Message: "generic template is required"}
	}
	return &TemplateLibrary{templates: byTag}, nil
}

// Template returns the template for a tag, falling back to the generic
// template for unknown tags.
func (l *TemplateLibrary) Template(tag FeatureTag) StoryTemplate {
	if t, ok := l.templates[tag]; ok {
		return t
	}
	return l.templates[TagGeneric]
}

// Keywords returns the classification vocabulary for a tag.
func (l *TemplateLibrary) Keywords(tag FeatureTag) []string {
	return l.templates[tag].Keywords
}

// Tags returns the classifiable tags in tie-break precedence order.
// The generic tag is excluded: it is the zero-match fallback, never a
// scored candidate.
func (l *TemplateLibrary) Tags() []FeatureTag {
	tags := make([]FeatureTag, 0, len(tagPrecedence))
	for _, tag := range tagPrecedence {
		if _, ok := l.templates[tag]; ok {
			tags = append(tags, tag)
		}
	}
	return tags
}

// DefaultTemplateLibrary returns the built-in story template catalog.
func DefaultTemplateLibrary() *TemplateLibrary {
	lib, err := NewTemplateLibrary(defaultTemplates()...)
	if err != nil {
		// The built-in catalog is validated by tests; a failure here is
		// a programming error.
		panic(err)
	}
	return lib
}

func defaultTemplates() []StoryTemplate {
	return []StoryTemplate{
		{
			Tag:            TagAuthentication,
			Title:          "User Authentication",
			Keywords:       []string{"auth", "login", "register", "sign", "password", "token", "oauth", "credential"},
			DefaultRole:    "user",
			DefaultBenefit: "securely access my account",
			Scenarios: []ScenarioTemplate{
				{
					Name:  "Successful authentication",
					Given: []string{"I am on the login page"},
					When:  []string{"I enter valid credentials"},
					Then:  []string{"I should be logged in successfully"},
				},
				{
					Name:  "Invalid credentials",
					Given: []string{"I am on the login page"},
					When:  []string{"I enter invalid credentials"},
					Then:  []string{"I should see an error message", "I should remain logged out"},
				},
			},
		},
		{
			Tag:            TagCRUD,
			Title:          "Data Management",
			Keywords:       []string{"create", "add", "edit", "update", "delete", "remove", "manage", "record"},
			DefaultRole:    "user",
			DefaultBenefit: "efficiently organize my data",
			Scenarios: []ScenarioTemplate{
				{
					Name:  "Create new item",
					Given: []string{"I am on the management page"},
					When:  []string{"I {action} with valid information"},
					Then:  []string{"the item should be saved successfully"},
				},
				{
					Name:  "Update existing item",
					Given: []string{"I have an existing item"},
					When:  []string{"I update the item information"},
					Then:  []string{"the changes should be saved"},
				},
				{
					Name:  "Reject invalid data",
					Given: []string{"I am on the management page"},
					When:  []string{"I submit incomplete information"},
					Then:  []string{"I should see a validation error"},
				},
			},
		},
		{
			Tag:            TagAPIIntegration,
			Title:          "API Integration",
			Keywords:       []string{"api", "endpoint", "service", "rest", "graphql", "webhook", "integration"},
			DefaultRole:    "developer",
			DefaultBenefit: "integrate with external systems",
			Scenarios: []ScenarioTemplate{
				{
					Name:  "Successful API call",
					Given: []string{"the API is available"},
					When:  []string{"I make a valid API request"},
					Then:  []string{"I should receive the correct response"},
				},
				{
					Name:  "Handle API errors",
					Given: []string{"the API is unavailable"},
					When:  []string{"I make an API request"},
					Then:  []string{"I should receive an appropriate error message"},
				},
			},
		},
		{
			Tag:            TagSearch,
			Title:          "Search Functionality",
			Keywords:       []string{"search", "find", "filter", "query", "lookup"},
			DefaultRole:    "user",
			DefaultBenefit: "quickly find the information I need",
			Scenarios: []ScenarioTemplate{
				{
					Name:  "Successful search",
					Given: []string{"I am on the search page"},
					When:  []string{"I enter a search term and submit"},
					Then:  []string{"I should see relevant results"},
				},
				{
					Name:  "No search results",
					Given: []string{"I am on the search page"},
					When:  []string{"I search for a term with no matches"},
					Then:  []string{"I should see a no results message"},
				},
			},
		},
		{
			Tag:            TagFileManagement,
			Title:          "File Management",
			Keywords:       []string{"file", "upload", "download", "attach", "attachment", "document"},
			DefaultRole:    "user",
			DefaultBenefit: "share and store my files",
			Scenarios: []ScenarioTemplate{
				{
					Name:  "Upload file successfully",
					Given: []string{"I am on the file upload page"},
					When:  []string{"I select and upload a valid file"},
					Then:  []string{"the file should be uploaded successfully"},
				},
				{
					Name:  "Invalid file type",
					Given: []string{"I am on the file upload page"},
					When:  []string{"I try to upload an invalid file type"},
					Then:  []string{"I should see an error message"},
				},
			},
		},
		{
			Tag:            TagNotification,
			Title:          "Notification System",
			Keywords:       []string{"notification", "alert", "notify", "email", "remind", "message"},
			DefaultRole:    "user",
			DefaultBenefit: "stay informed about important updates",
			Scenarios: []ScenarioTemplate{
				{
					Name:  "Receive notification",
					Given: []string{"I have notifications enabled"},
					When:  []string{"an event occurs that requires notification"},
					Then:  []string{"I should receive a notification"},
				},
				{
					Name:  "Mark notification as read",
					Given: []string{"I have unread notifications"},
					When:  []string{"I open a notification"},
					Then:  []string{"it should be marked as read"},
				},
			},
		},
		{
			Tag:            TagGeneric,
			Title:          "",
			DefaultRole:    "user",
			DefaultBenefit: "accomplish my goals efficiently",
			Scenarios: []ScenarioTemplate{
				{
					Name:  "Basic functionality",
					Given: []string{"I am using the system"},
					When:  []string{"I {action}"},
					Then:  []string{"I should be able to {benefit}"},
				},
			},
		},
	}
}
