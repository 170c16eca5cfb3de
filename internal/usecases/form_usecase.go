package usecases

import (
	"context"
	"strings"

	"formly.backend/internal/domain/entities"
	domainerrors "formly.backend/internal/domain/errors"
	"formly.backend/internal/domain/repositories"
	"github.com/google/uuid"
)

// FormUsecase handles the form aggregate lifecycle:
// nonexistent -> create -> active -> update* -> delete -> nonexistent.
type FormUsecase struct {
	formRepo repositories.FormRepository
	uow      repositories.UnitOfWork
}

// NewFormUsecase creates a new form usecase
func NewFormUsecase(formRepo repositories.FormRepository, uow repositories.UnitOfWork) *FormUsecase {
	return &FormUsecase{formRepo: formRepo, uow: uow}
}

// CreateForm inserts a form and its fields as one aggregate.
func (u *FormUsecase) CreateForm(ctx context.Context, input *entities.CreateFormInput) (*entities.Form, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, domainerrors.ErrInvalidInput
	}
	if strings.TrimSpace(input.OwnerAddress) == "" {
		return nil, domainerrors.ErrMissingOwner
	}
	if err := validateFieldInputs(input.Fields); err != nil {
		return nil, err
	}

	form := &entities.Form{
		Title:        input.Title,
		Description:  input.Description,
		OwnerAddress: input.OwnerAddress,
		IsActive:     true,
		Fields:       toFields(input.Fields),
	}
	if err := u.formRepo.Create(ctx, form); err != nil {
		return nil, err
	}
	return form, nil
}

// GetForm loads one form with fields in creation order.
func (u *FormUsecase) GetForm(ctx context.Context, id uuid.UUID) (*entities.Form, error) {
	return u.formRepo.GetByID(ctx, id)
}

// ListForms returns the owner's forms, newest first. The owner address is
// mandatory: there is no "all forms" listing.
func (u *FormUsecase) ListForms(ctx context.Context, ownerAddress string) ([]*entities.Form, error) {
	if strings.TrimSpace(ownerAddress) == "" {
		return nil, domainerrors.ErrMissingOwner
	}
	forms, err := u.formRepo.ListByOwner(ctx, ownerAddress)
	if err != nil {
		return nil, err
	}
	if forms == nil {
		forms = []*entities.Form{}
	}
	return forms, nil
}

// UpdateForm applies scalar changes and replaces the whole field set inside
// one transaction: delete all existing fields, then insert the request's
// list. When the request carries no fields key the form ends up with zero
// fields; that is the shipped contract, not a gap.
func (u *FormUsecase) UpdateForm(ctx context.Context, id uuid.UUID, input *entities.UpdateFormInput) (*entities.Form, error) {
	var fields []entities.FieldInput
	if input.Fields != nil {
		fields = *input.Fields
		if err := validateFieldInputs(fields); err != nil {
			return nil, err
		}
	}

	updates := map[string]interface{}{}
	if input.Title.Valid {
		updates["title"] = input.Title.String
	}
	if input.Description.Valid {
		updates["description"] = input.Description.String
	}
	if input.IsActive.Valid {
		updates["is_active"] = input.IsActive.Bool
	}

	err := u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.formRepo.UpdateScalars(txCtx, id, updates); err != nil {
			return err
		}
		_, err := u.formRepo.ReplaceFields(txCtx, id, fields)
		return err
	})
	if err != nil {
		return nil, err
	}

	return u.formRepo.GetByID(ctx, id)
}

// DeleteForm removes the aggregate; deleting a nonexistent id is a no-op.
func (u *FormUsecase) DeleteForm(ctx context.Context, id uuid.UUID) error {
	return u.formRepo.Delete(ctx, id)
}

func validateFieldInputs(fields []entities.FieldInput) error {
	for _, f := range fields {
		if !entities.ValidFieldType(f.Type) {
			return domainerrors.ErrUnknownField
		}
	}
	return nil
}

func toFields(inputs []entities.FieldInput) []entities.Field {
	fields := make([]entities.Field, 0, len(inputs))
	for _, f := range inputs {
		fields = append(fields, entities.Field{
			Type:        f.Type,
			Label:       f.Label,
			Placeholder: f.Placeholder,
			Required:    f.Required,
		})
	}
	return fields
}
