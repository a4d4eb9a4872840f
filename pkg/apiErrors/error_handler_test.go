package apiErrors

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name       string
		code       string
		wantStatus int
	}{
		{"Empresa não encontrada", ErrCompanyNotFound, http.StatusNotFound},
		{"Dados ausentes", ErrMissingRequiredData, http.StatusBadRequest},
		{"Falha de renderização", ErrRenderFailed, http.StatusInternalServerError},
		{"Código desconhecido", "XYZ_999", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			WriteError(rec, tt.code, "message", nil)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body APIError
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.code, body.Code)
			assert.Equal(t, "message", body.Message)
		})
	}
}

func TestFromError(t *testing.T) {
	assert.Equal(t, ErrInternalServer, FromError(nil, ErrCompanyNotFound).Code)

	apiErr := FromError(errors.New("company not found"), ErrCompanyNotFound)
	assert.Equal(t, ErrCompanyNotFound, apiErr.Code)
	assert.Equal(t, "company not found", apiErr.Message)
}
