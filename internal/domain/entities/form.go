package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// FieldType enumerates the input kinds a published form may carry.
type FieldType string

const (
	FieldTypeText   FieldType = "text"
	FieldTypeEmail  FieldType = "email"
	FieldTypePhone  FieldType = "phone"
	FieldTypeNumber FieldType = "number"
)

// ValidFieldType reports whether t is one of the published field kinds.
func ValidFieldType(t FieldType) bool {
	switch t {
	case FieldTypeText, FieldTypeEmail, FieldTypePhone, FieldTypeNumber:
		return true
	}
	return false
}

// Form is a wallet-owned questionnaire definition. Fields are fully owned:
// they are replaced as a whole set on every update and removed with the form.
type Form struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	OwnerAddress string    `json:"ownerAddress"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
	Fields       []Field   `json:"fields"`
}

// Field is one input definition belonging to a Form. The id is server-assigned
// and ascending ids equal creation order, which is the read order.
type Field struct {
	ID          uint      `json:"id"`
	FormID      uuid.UUID `json:"formId"`
	Type        FieldType `json:"type"`
	Label       string    `json:"label"`
	Placeholder string    `json:"placeholder"`
	Required    bool      `json:"required"`
}

// FieldInput is the wire shape of one field in create/update requests.
type FieldInput struct {
	Type        FieldType `json:"type"`
	Label       string    `json:"label"`
	Placeholder string    `json:"placeholder"`
	Required    bool      `json:"required"`
}

// CreateFormInput is the POST /api/forms request body.
type CreateFormInput struct {
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	OwnerAddress string       `json:"ownerAddress"`
	Fields       []FieldInput `json:"fields"`
}

// UpdateFormInput is the PUT /api/forms/:id request body. Scalars are applied
// only when present. Fields is a pointer so "omitted" is distinguishable from
// "empty list", but note that either way the previous field set is discarded:
// an update without a fields key leaves the form with zero fields. That is the
// shipped contract, kept deliberately.
type UpdateFormInput struct {
	Title       null.String   `json:"title"`
	Description null.String   `json:"description"`
	IsActive    null.Bool     `json:"isActive"`
	Fields      *[]FieldInput `json:"fields"`
}
