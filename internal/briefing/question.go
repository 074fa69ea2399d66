package briefing

import (
	"fmt"
	"strings"
)

// QuestionType classifies the analytical shape of a question.
type QuestionType string

const (
	QuestionOpenEnded    QuestionType = "open_ended"
	QuestionAnalytical   QuestionType = "analytical"
	QuestionComparative  QuestionType = "comparative"
	QuestionDiagnostic   QuestionType = "diagnostic"
	QuestionPredictive   QuestionType = "predictive"
	QuestionCausal       QuestionType = "causal"
	QuestionExploratory  QuestionType = "exploratory"
	QuestionConfirmatory QuestionType = "confirmatory"
	QuestionStrategic    QuestionType = "strategic"
	QuestionTechnical    QuestionType = "technical"
)

// QuestionCategory classifies the subject domain of a question.
type QuestionCategory string

const (
	CategoryEpidemiology QuestionCategory = "epidemiology"
	CategoryClinical     QuestionCategory = "clinical"
	CategoryTechnical    QuestionCategory = "technical"
	CategoryBusiness     QuestionCategory = "business"
	CategoryResearch     QuestionCategory = "research"
	CategoryOperational  QuestionCategory = "operational"
	CategoryRegulatory   QuestionCategory = "regulatory"
	CategoryEthical      QuestionCategory = "ethical"
	CategoryGeneral      QuestionCategory = "general"
)

// ParseQuestionType maps a string onto a known type, falling back to
// open-ended for unknown values so user-authored text never fails a render.
func ParseQuestionType(value string) QuestionType {
	qt := QuestionType(strings.ToLower(strings.TrimSpace(value)))
	switch qt {
	case QuestionOpenEnded, QuestionAnalytical, QuestionComparative, QuestionDiagnostic,
		QuestionPredictive, QuestionCausal, QuestionExploratory, QuestionConfirmatory,
		QuestionStrategic, QuestionTechnical:
		return qt
	}
	return QuestionOpenEnded
}

// ParseQuestionCategory maps a string onto a known category, falling back to
// general for unknown values.
func ParseQuestionCategory(value string) QuestionCategory {
	qc := QuestionCategory(strings.ToLower(strings.TrimSpace(value)))
	switch qc {
	case CategoryEpidemiology, CategoryClinical, CategoryTechnical, CategoryBusiness,
		CategoryResearch, CategoryOperational, CategoryRegulatory, CategoryEthical,
		CategoryGeneral:
		return qc
	}
	return CategoryGeneral
}

// Question is a structured question with metadata and optional follow-ups.
type Question struct {
	Text       string           `yaml:"text"`
	Type       QuestionType     `yaml:"type,omitempty"`
	Category   QuestionCategory `yaml:"category,omitempty"`
	Context    string           `yaml:"context,omitempty"`
	Importance int              `yaml:"importance,omitempty"`
	Tags       []string         `yaml:"tags,omitempty"`
	FollowUps  []*Question      `yaml:"follow_ups,omitempty"`
}

// NewQuestion constructs a question with default type, category, and a
// midpoint importance of 3.
func NewQuestion(text string) *Question {
	return &Question{
		Text:       text,
		Type:       QuestionOpenEnded,
		Category:   CategoryGeneral,
		Importance: 3,
	}
}

// NewEpidemiologicalQuestion builds an analytical question tagged for
// population-health work.
func NewEpidemiologicalQuestion(text string) *Question {
	q := NewQuestion(text)
	q.Type = QuestionAnalytical
	q.Category = CategoryEpidemiology
	q.Tags = []string{"epidemiology", "population health"}
	return q
}

// NewClinicalQuestion builds a diagnostic question tagged for clinical work.
func NewClinicalQuestion(text string) *Question {
	q := NewQuestion(text)
	q.Type = QuestionDiagnostic
	q.Category = CategoryClinical
	q.Tags = []string{"clinical", "treatment", "diagnosis"}
	return q
}

// NewTechnicalQuestion builds a technical implementation question.
func NewTechnicalQuestion(text string) *Question {
	q := NewQuestion(text)
	q.Type = QuestionTechnical
	q.Category = CategoryTechnical
	q.Tags = []string{"technical", "implementation", "data"}
	return q
}

// WithType sets the question type.
func (q *Question) WithType(qt QuestionType) *Question {
	q.Type = qt
	return q
}

// WithCategory sets the question category.
func (q *Question) WithCategory(qc QuestionCategory) *Question {
	q.Category = qc
	return q
}

// WithContext sets question-specific context.
func (q *Question) WithContext(context string) *Question {
	q.Context = context
	return q
}

// WithImportance sets the importance rating, clamped to 1..5.
func (q *Question) WithImportance(importance int) *Question {
	q.Importance = clampRating(importance)
	return q
}

// AddTag appends a tag.
func (q *Question) AddTag(tag string) *Question {
	q.Tags = append(q.Tags, tag)
	return q
}

// AddFollowUp appends a follow-up question.
func (q *Question) AddFollowUp(followUp *Question) *Question {
	if followUp != nil {
		q.FollowUps = append(q.FollowUps, followUp)
	}
	return q
}

// Validate ensures the question and its follow-ups can be rendered.
func (q *Question) Validate() error {
	if strings.TrimSpace(q.Text) == "" {
		return fmt.Errorf("briefing: question text is required")
	}
	for i, followUp := range q.FollowUps {
		if err := followUp.Validate(); err != nil {
			return fmt.Errorf("briefing: follow_ups[%d]: %w", i, err)
		}
	}
	return nil
}

// Normalize clamps importance and resolves unknown type/category strings to
// their defaults, recursing into follow-ups.
func (q *Question) Normalize() {
	q.Text = strings.TrimSpace(q.Text)
	q.Type = ParseQuestionType(string(q.Type))
	q.Category = ParseQuestionCategory(string(q.Category))
	if q.Importance == 0 {
		q.Importance = 3
	}
	q.Importance = clampRating(q.Importance)
	for _, followUp := range q.FollowUps {
		followUp.Normalize()
	}
}

// Map returns a generic representation of the question.
func (q *Question) Map() map[string]any {
	result := map[string]any{
		"text":       q.Text,
		"type":       string(q.Type),
		"category":   string(q.Category),
		"importance": q.Importance,
		"tags":       append([]string{}, q.Tags...),
	}
	if q.Context != "" {
		result["context"] = q.Context
	}
	if len(q.FollowUps) > 0 {
		followUps := make([]map[string]any, 0, len(q.FollowUps))
		for _, followUp := range q.FollowUps {
			followUps = append(followUps, followUp.Map())
		}
		result["follow_ups"] = followUps
	}
	return result
}

// PromptText renders the question, indenting follow-ups two spaces per level.
func (q *Question) PromptText(indentLevel int) string {
	indent := strings.Repeat("  ", indentLevel)
	lines := []string{fmt.Sprintf("%sQuestion: %s", indent, q.Text)}
	if q.Context != "" {
		lines = append(lines, fmt.Sprintf("%sContext: %s", indent, q.Context))
	}
	if len(q.FollowUps) > 0 {
		lines = append(lines, fmt.Sprintf("%sFollow-up questions:", indent))
		for _, followUp := range q.FollowUps {
			lines = append(lines, followUp.PromptText(indentLevel+1))
		}
	}
	return strings.Join(lines, "\n")
}

func clampRating(value int) int {
	if value < 1 {
		return 1
	}
	if value > 5 {
		return 5
	}
	return value
}
