// Package questionnaire implements the creator-side questionnaire builder:
// the persisted draft, question editing rules, reward selection, and the
// wizard step layout.
package questionnaire

// DraftNamespace is the draft-store key the builder reads and writes.
const DraftNamespace = "formly:newQuestionnaire:draft"

// Known theme values. The theme step also accepts free text, so these are
// suggestions rather than an enum the validator enforces.
const (
	ThemeProductUX    = "Product UX"
	ThemeSegmentation = "Segmentation"
	ThemeSales        = "Sales"
)

// Question is one entry of the questionnaire being built.
type Question struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Type       string   `json:"type"`
	Options    []string `json:"options"`
	AllowOther bool     `json:"allowOther"`
}

// Question types. The two choice types carry an options list; the text types
// do not.
const (
	QuestionTypeRadio     = "radio"
	QuestionTypeCheckbox  = "checkbox"
	QuestionTypeShortText = "short_text"
	QuestionTypeLongText  = "long_text"
)

// HasOptions reports whether a question type carries an options list.
func HasOptions(questionType string) bool {
	return questionType == QuestionTypeRadio || questionType == QuestionTypeCheckbox
}

// Draft is the questionnaire builder's cross-step state. Pointer fields
// distinguish "never touched" from zero values so a partial save does not
// clobber untouched steps.
type Draft struct {
	Theme               string     `json:"theme,omitempty"`
	FirstQuestion       *string    `json:"firstQuestion,omitempty"`
	Questions           []Question `json:"questions,omitempty"`
	RewardPerGoodAnswer *float64   `json:"rewardPerGoodAnswer,omitempty"`
	RewardPreset        string     `json:"rewardPreset,omitempty"`
}

// SelectTheme sets the theme and resets the first-question text: the opening
// question is theme-specific, so a stale one must not leak across themes.
func (d *Draft) SelectTheme(theme string) {
	d.Theme = theme
	empty := ""
	d.FirstQuestion = &empty
}
