package apierror

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromResponseDecodesEnvelope(t *testing.T) {
	err := FromResponse(http.StatusBadRequest, []byte(`{"error":"Aadhaar number already exists"}`))
	require.Error(t, err)

	// The server's message reaches the caller verbatim.
	assert.Equal(t, "Aadhaar number already exists", err.Error())
	assert.ErrorIs(t, err, ErrValidation)
}

func TestFromResponseTaxonomy(t *testing.T) {
	assert.ErrorIs(t, FromResponse(http.StatusUnauthorized, nil), ErrUnauthorized)
	assert.ErrorIs(t, FromResponse(http.StatusForbidden, nil), ErrForbidden)
	assert.ErrorIs(t, FromResponse(http.StatusUnprocessableEntity, nil), ErrValidation)
	assert.ErrorIs(t, FromResponse(http.StatusConflict, nil), ErrValidation)

	// A plain server failure classifies as none of the sentinels.
	err := FromResponse(http.StatusInternalServerError, []byte("boom"))
	assert.NotErrorIs(t, err, ErrUnauthorized)
	assert.NotErrorIs(t, err, ErrForbidden)
	assert.NotErrorIs(t, err, ErrValidation)
}

func TestFromResponseMalformedBody(t *testing.T) {
	err := FromResponse(http.StatusInternalServerError, []byte("<html>nginx</html>"))
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Contains(t, err.Error(), "500")
}
