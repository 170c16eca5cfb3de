package questionnaire

import "formly.backend/internal/wizard"

// Step keys of the builder wizard. "finalize" is not a navigable step; it
// only exists in the progress table for the closing screen.
const (
	StepTheme     = "theme"
	StepQuestion  = "question"
	StepQuestions = "questions"
	StepRewards   = "rewards"
	StepFinalize  = "finalize"
)

// Steps returns the builder's fixed step sequence.
func Steps() []wizard.Step {
	return []wizard.Step{
		{Key: StepTheme, Label: "INICIO", DisplayOrder: 1},
		{Key: StepQuestion, Label: "DETALLES", DisplayOrder: 2},
		{Key: StepQuestions, Label: "PREGUNTAS", DisplayOrder: 3},
		{Key: StepRewards, Label: "RECOMPENSAS", DisplayOrder: 4},
	}
}

// Progress returns the per-step progress table. Rewards stops at 90 so the
// bar only completes on the finalize screen.
func Progress() map[string]int {
	return map[string]int{
		StepTheme:     0,
		StepQuestion:  25,
		StepQuestions: 50,
		StepRewards:   90,
		StepFinalize:  100,
	}
}

// NewWizard builds the wizard engine for the questionnaire builder.
func NewWizard() *wizard.Engine {
	return wizard.New(Steps(), Progress())
}
