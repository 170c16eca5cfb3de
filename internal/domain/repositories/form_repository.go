package repositories

import (
	"context"

	"formly.backend/internal/domain/entities"
	"github.com/google/uuid"
)

// FormRepository defines persistence for the form aggregate.
//
// ReplaceFields and UpdateScalars are the two halves of the form update and
// must run inside a UnitOfWork.Do scope so a reader never observes the form
// between "old fields deleted" and "new fields created".
type FormRepository interface {
	Create(ctx context.Context, form *entities.Form) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Form, error)
	ListByOwner(ctx context.Context, ownerAddress string) ([]*entities.Form, error)
	UpdateScalars(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
	ReplaceFields(ctx context.Context, formID uuid.UUID, fields []entities.FieldInput) ([]entities.Field, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
