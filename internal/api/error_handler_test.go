package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/calvacorro/legal-records-api/internal/core/domain"
)

func runErrorHandler(t *testing.T, err error, production bool) (int, string) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/clientes", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop(), production)(err, c)

	var body errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return rec.Code, body.Error
}

func TestErrorHandler_DomainKinds(t *testing.T) {
	tests := []struct {
		err    error
		status int
		msg    string
	}{
		{domain.Validation("El campo 'name' es obligatorio."), http.StatusBadRequest, "El campo 'name' es obligatorio."},
		{domain.NewError(domain.ErrUnauthorized, "Credenciales inválidas."), http.StatusUnauthorized, "Credenciales inválidas."},
		{domain.NotFound("Usuario no encontrado"), http.StatusNotFound, "Usuario no encontrado"},
		{domain.NewError(domain.ErrMethodNotAllowed, "Método no permitido."), http.StatusMethodNotAllowed, "Método no permitido."},
		{domain.Conflict("Ya existe un cliente activo con ese nombre."), http.StatusConflict, "Ya existe un cliente activo con ese nombre."},
	}
	for _, tt := range tests {
		code, msg := runErrorHandler(t, tt.err, true)
		if code != tt.status || msg != tt.msg {
			t.Fatalf("%v: got %d %q", tt.err, code, msg)
		}
	}
}

func TestErrorHandler_ProviderVerbosity(t *testing.T) {
	err := domain.ProviderError("Error al crear carpetas en Google Drive.", errors.New("quota exceeded"))

	code, msg := runErrorHandler(t, err, false)
	if code != http.StatusInternalServerError || msg != "Error al crear carpetas en Google Drive.: quota exceeded" {
		t.Fatalf("development: got %d %q", code, msg)
	}

	code, msg = runErrorHandler(t, err, true)
	if code != http.StatusInternalServerError || msg != internalErrorMessage {
		t.Fatalf("production: got %d %q", code, msg)
	}
}

func TestErrorHandler_Unexpected(t *testing.T) {
	code, msg := runErrorHandler(t, errors.New("boom"), false)
	if code != http.StatusInternalServerError || msg != internalErrorMessage+" boom" {
		t.Fatalf("got %d %q", code, msg)
	}
}

func TestErrorHandler_EchoError(t *testing.T) {
	code, msg := runErrorHandler(t, echo.NewHTTPError(http.StatusUnauthorized, "invalid token"), true)
	if code != http.StatusUnauthorized || msg != "invalid token" {
		t.Fatalf("got %d %q", code, msg)
	}
}
