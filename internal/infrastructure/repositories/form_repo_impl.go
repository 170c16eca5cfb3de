package repositories

import (
	"context"
	"errors"
	"time"

	"formly.backend/internal/domain/entities"
	domainerrors "formly.backend/internal/domain/errors"
	"formly.backend/internal/infrastructure/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FormRepository struct {
	db *gorm.DB
}

func NewFormRepository(db *gorm.DB) *FormRepository {
	return &FormRepository{db: db}
}

// Create inserts the form row and all field rows as one aggregate. Field ids
// are assigned by the database in request order.
func (r *FormRepository) Create(ctx context.Context, form *entities.Form) error {
	m := r.toModel(form)
	m.ID = uuid.New()
	m.CreatedAt = time.Now()

	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		return err
	}

	form.ID = m.ID
	form.CreatedAt = m.CreatedAt
	form.Fields = make([]entities.Field, 0, len(m.Fields))
	for i := range m.Fields {
		form.Fields = append(form.Fields, r.toFieldEntity(&m.Fields[i]))
	}
	return nil
}

// GetByID loads a form with its fields ordered by ascending field id.
func (r *FormRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Form, error) {
	var m models.Form
	err := GetDB(ctx, r.db).WithContext(ctx).
		Preload("Fields", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Where("id = ?", id).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// ListByOwner returns the owner's forms, newest created first.
func (r *FormRepository) ListByOwner(ctx context.Context, ownerAddress string) ([]*entities.Form, error) {
	var ms []models.Form
	err := GetDB(ctx, r.db).WithContext(ctx).
		Preload("Fields", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Where("owner_address = ?", ownerAddress).
		Order("created_at DESC").
		Find(&ms).Error
	if err != nil {
		return nil, err
	}

	items := make([]*entities.Form, 0, len(ms))
	for i := range ms {
		items = append(items, r.toEntity(&ms[i]))
	}
	return items, nil
}

// UpdateScalars applies a partial update to the form row.
func (r *FormRepository) UpdateScalars(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	if len(updates) == 0 {
		updates = map[string]interface{}{}
	}
	updates["updated_at"] = time.Now()

	result := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.Form{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// ReplaceFields discards every field row owned by formID and inserts the new
// set. Callers run this inside UnitOfWork.Do together with UpdateScalars; on
// its own it would expose the zero-field intermediate state.
func (r *FormRepository) ReplaceFields(ctx context.Context, formID uuid.UUID, fields []entities.FieldInput) ([]entities.Field, error) {
	db := GetDB(ctx, r.db).WithContext(ctx)

	if err := db.Where("form_id = ?", formID).Delete(&models.Field{}).Error; err != nil {
		return nil, err
	}

	if len(fields) == 0 {
		return []entities.Field{}, nil
	}

	rows := make([]models.Field, 0, len(fields))
	for _, f := range fields {
		rows = append(rows, models.Field{
			FormID:      formID,
			Type:        string(f.Type),
			Label:       f.Label,
			Placeholder: f.Placeholder,
			Required:    f.Required,
		})
	}
	if err := db.Create(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]entities.Field, 0, len(rows))
	for i := range rows {
		out = append(out, r.toFieldEntity(&rows[i]))
	}
	return out, nil
}

// Delete removes the form and all its fields. Deleting an absent id is not
// an error: the delete contract is idempotent.
func (r *FormRepository) Delete(ctx context.Context, id uuid.UUID) error {
	db := GetDB(ctx, r.db).WithContext(ctx)
	if err := db.Where("form_id = ?", id).Delete(&models.Field{}).Error; err != nil {
		return err
	}
	return db.Where("id = ?", id).Delete(&models.Form{}).Error
}

func (r *FormRepository) toEntity(m *models.Form) *entities.Form {
	fields := make([]entities.Field, 0, len(m.Fields))
	for i := range m.Fields {
		fields = append(fields, r.toFieldEntity(&m.Fields[i]))
	}
	return &entities.Form{
		ID:           m.ID,
		Title:        m.Title,
		Description:  m.Description,
		OwnerAddress: m.OwnerAddress,
		IsActive:     m.IsActive,
		CreatedAt:    m.CreatedAt,
		Fields:       fields,
	}
}

func (r *FormRepository) toFieldEntity(m *models.Field) entities.Field {
	return entities.Field{
		ID:          m.ID,
		FormID:      m.FormID,
		Type:        entities.FieldType(m.Type),
		Label:       m.Label,
		Placeholder: m.Placeholder,
		Required:    m.Required,
	}
}

func (r *FormRepository) toModel(e *entities.Form) *models.Form {
	fields := make([]models.Field, 0, len(e.Fields))
	for _, f := range e.Fields {
		fields = append(fields, models.Field{
			Type:        string(f.Type),
			Label:       f.Label,
			Placeholder: f.Placeholder,
			Required:    f.Required,
		})
	}
	return &models.Form{
		Title:        e.Title,
		Description:  e.Description,
		OwnerAddress: e.OwnerAddress,
		IsActive:     true,
		Fields:       fields,
	}
}
