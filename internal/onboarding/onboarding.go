// Package onboarding implements the one-time creator onboarding flow: a
// short wizard collecting contact details, persisted as a draft until the
// flow completes.
package onboarding

import (
	"context"
	"regexp"
	"strings"

	"formly.backend/internal/wizard"
	"formly.backend/pkg/draftstore"
)

// Draft-store keys.
const (
	DraftNamespace = "formly:onboarding:draft"
	CompletedKey   = "formly:onboarding:completed"
)

// Draft holds the details collected during onboarding.
type Draft struct {
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

// Step keys.
const (
	StepIntro   = "intro"
	StepDetails = "details"
	StepSubmit  = "submit"
)

// Steps returns the onboarding step sequence.
func Steps() []wizard.Step {
	return []wizard.Step{
		{Key: StepIntro, Label: "Inicio", DisplayOrder: 1},
		{Key: StepDetails, Label: "Datos", DisplayOrder: 2},
		{Key: StepSubmit, Label: "Enviar", DisplayOrder: 3},
	}
}

// NewWizard builds the onboarding wizard engine.
func NewWizard() *wizard.Engine {
	return wizard.New(Steps(), nil)
}

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^[+]?[\d\s()-]{7,15}$`)
)

// ValidateDetails checks the details step. Errors are keyed by field name;
// an empty map means valid.
func ValidateDetails(d Draft) map[string]string {
	errs := map[string]string{}
	if strings.TrimSpace(d.FirstName) == "" {
		errs["firstName"] = "El nombre es obligatorio"
	}
	if strings.TrimSpace(d.LastName) == "" {
		errs["lastName"] = "El apellido es obligatorio"
	}
	if strings.TrimSpace(d.Email) == "" {
		errs["email"] = "El correo es obligatorio"
	} else if !emailPattern.MatchString(strings.TrimSpace(d.Email)) {
		errs["email"] = "Ingresa un correo válido"
	}
	if strings.TrimSpace(d.Phone) == "" {
		errs["phone"] = "El teléfono es obligatorio"
	} else if !phonePattern.MatchString(strings.TrimSpace(d.Phone)) {
		errs["phone"] = "Ingresa un número de teléfono válido"
	}
	return errs
}

// Complete marks onboarding done and discards the draft. The flag outlives
// the draft so a returning creator skips the flow.
func Complete(ctx context.Context, store *draftstore.Store) {
	store.SetFlag(ctx, CompletedKey, true)
	store.Clear(ctx, DraftNamespace)
}

// IsCompleted reports whether onboarding already finished.
func IsCompleted(ctx context.Context, store *draftstore.Store) bool {
	return store.Flag(ctx, CompletedKey)
}
