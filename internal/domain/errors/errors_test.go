package errors

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAppErrorMessageAndUnwrap(t *testing.T) {
	e := NotFound("Formulario no encontrado")
	require.Equal(t, http.StatusNotFound, e.Code)
	require.Equal(t, ErrNotFound.Error(), e.Error())
	require.True(t, errors.Is(e, ErrNotFound))

	bare := NewAppError(http.StatusTeapot, "short and stout", nil)
	require.Equal(t, "short and stout", bare.Error())
}

func TestConstructorsCarryStatus(t *testing.T) {
	require.Equal(t, http.StatusBadRequest, BadRequest("x").Code)
	require.Equal(t, http.StatusUnauthorized, Unauthorized("x").Code)
	require.Equal(t, http.StatusInternalServerError, InternalError("x", ErrBadRequest).Code)
}
