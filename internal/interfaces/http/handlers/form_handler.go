package handlers

import (
	"context"
	"errors"
	"net/http"

	"formly.backend/internal/domain/entities"
	domainerrors "formly.backend/internal/domain/errors"
	"formly.backend/internal/interfaces/http/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type FormService interface {
	CreateForm(ctx context.Context, input *entities.CreateFormInput) (*entities.Form, error)
	GetForm(ctx context.Context, id uuid.UUID) (*entities.Form, error)
	ListForms(ctx context.Context, ownerAddress string) ([]*entities.Form, error)
	UpdateForm(ctx context.Context, id uuid.UUID, input *entities.UpdateFormInput) (*entities.Form, error)
	DeleteForm(ctx context.Context, id uuid.UUID) error
}

// FormHandler handles form endpoints
type FormHandler struct {
	formUsecase FormService
}

// NewFormHandler creates a new form handler
func NewFormHandler(formUsecase FormService) *FormHandler {
	return &FormHandler{formUsecase: formUsecase}
}

// CreateForm creates a form with its fields
// POST /api/forms
func (h *FormHandler) CreateForm(c *gin.Context) {
	var input entities.CreateFormInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest("Datos inválidos"))
		return
	}

	form, err := h.formUsecase.CreateForm(c.Request.Context(), &input)
	if err != nil {
		switch {
		case errors.Is(err, domainerrors.ErrInvalidInput):
			response.Error(c, domainerrors.BadRequest("El título es obligatorio"))
		case errors.Is(err, domainerrors.ErrMissingOwner):
			response.Error(c, domainerrors.BadRequest("Address requerida"))
		case errors.Is(err, domainerrors.ErrUnknownField):
			response.Error(c, domainerrors.BadRequest("Tipo de campo inválido"))
		default:
			response.Error(c, domainerrors.InternalError("Error al crear el formulario", err))
		}
		return
	}

	response.Success(c, http.StatusCreated, form)
}

// GetForm gets a form by ID
// GET /api/forms/:id
func (h *FormHandler) GetForm(c *gin.Context) {
	// An unparseable id can never name an existing form
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.NotFound("Formulario no encontrado"))
		return
	}

	form, err := h.formUsecase.GetForm(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			response.Error(c, domainerrors.NotFound("Formulario no encontrado"))
			return
		}
		response.Error(c, domainerrors.InternalError("Error al obtener el formulario", err))
		return
	}

	response.Success(c, http.StatusOK, form)
}

// ListForms lists the owner's forms, newest first
// GET /api/forms?address=G...
func (h *FormHandler) ListForms(c *gin.Context) {
	forms, err := h.formUsecase.ListForms(c.Request.Context(), c.Query("address"))
	if err != nil {
		if errors.Is(err, domainerrors.ErrMissingOwner) {
			response.Error(c, domainerrors.BadRequest("Address requerida"))
			return
		}
		response.Error(c, domainerrors.InternalError("Error al obtener los formularios", err))
		return
	}

	response.Success(c, http.StatusOK, forms)
}

// UpdateForm updates scalars and replaces the field set in one transaction
// PUT /api/forms/:id
func (h *FormHandler) UpdateForm(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.InternalError("Error al actualizar", err))
		return
	}

	var input entities.UpdateFormInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest("Datos inválidos"))
		return
	}

	form, err := h.formUsecase.UpdateForm(c.Request.Context(), id, &input)
	if err != nil {
		// Any update failure, missing form included, reports the same way
		response.Error(c, domainerrors.InternalError("Error al actualizar", err))
		return
	}

	response.Success(c, http.StatusOK, form)
}

// DeleteForm deletes a form; deleting an absent id still reports success
// DELETE /api/forms/:id
func (h *FormHandler) DeleteForm(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Success(c, http.StatusOK, gin.H{"message": "Eliminado con éxito"})
		return
	}

	if err := h.formUsecase.DeleteForm(c.Request.Context(), id); err != nil {
		response.Error(c, domainerrors.InternalError("Error al eliminar", err))
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Eliminado con éxito"})
}
