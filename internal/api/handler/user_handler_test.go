package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/calvacorro/legal-records-api/internal/core/domain"
	"github.com/calvacorro/legal-records-api/internal/core/ports"
)

func TestUserHandler_Create_OmitsPassword(t *testing.T) {
	h := NewUserHandler(&stubUserService{
		createFn: func(ctx context.Context, in ports.CreateUserInput) (*domain.User, error) {
			if in.Email != "ana@example.com" || in.Password != "secreto" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &domain.User{ID: "USR-001", Email: in.Email, PasswordHash: "$2a$10$hash", State: domain.StateDeleted}, nil
		},
	})

	c, rec := newTestContext(http.MethodPost, "/usuario", echo.MIMEApplicationJSON, `{"email":"ana@example.com","password":"secreto"}`)
	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "password") || strings.Contains(rec.Body.String(), "$2a$") {
		t.Fatalf("password leaked: %s", rec.Body.String())
	}

	var resp userCreatedResponse
	decodeBody(t, rec, &resp)
	if resp.IDUsuario != "USR-001" || !resp.Usuario.Deleted {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestUserHandler_Update_PassesOnlySentFields(t *testing.T) {
	var got ports.UpdateUserInput
	h := NewUserHandler(&stubUserService{
		updateFn: func(ctx context.Context, id string, in ports.UpdateUserInput) (*domain.User, error) {
			got = in
			return &domain.User{ID: id, Name: "Ana", State: domain.StateActive}, nil
		},
	})

	c, rec := newTestContext(http.MethodPut, "/usuario/USR-001", echo.MIMEApplicationJSON, `{"name":"Ana"}`, "id", "USR-001")
	if err := h.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if got.Name == nil || *got.Name != "Ana" || got.Email != nil || got.Password != nil {
		t.Fatalf("unexpected input: %+v", got)
	}

	var resp userUpdatedResponse
	decodeBody(t, rec, &resp)
	if resp.Message != "Usuario actualizado" || resp.Usuario.ID != "USR-001" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestUserHandler_Login(t *testing.T) {
	tests := []struct {
		name      string
		svcErr    error
		token     string
		wantKind  error
		wantToken bool
	}{
		{name: "success with token", token: "signed"},
		{name: "success without token"},
		{name: "bad credentials", svcErr: domain.NewError(domain.ErrUnauthorized, "Credenciales inválidas."), wantKind: domain.ErrUnauthorized},
		{name: "missing fields", svcErr: domain.Validation("Correo electrónico y contraseña son obligatorios."), wantKind: domain.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewUserHandler(&stubUserService{
				loginFn: func(ctx context.Context, email, password string) (*ports.LoginResult, error) {
					if tt.svcErr != nil {
						return nil, tt.svcErr
					}
					return &ports.LoginResult{User: &domain.User{ID: "USR-001", Email: email, State: domain.StateActive}, Token: tt.token}, nil
				},
			})

			c, rec := newTestContext(http.MethodPost, "/login", echo.MIMEApplicationJSON, `{"email":"ana@example.com","password":"x"}`)
			err := h.Login(c)
			if tt.wantKind != nil {
				if !errors.Is(err, tt.wantKind) {
					t.Fatalf("expected %v, got %v", tt.wantKind, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("handler error: %v", err)
			}

			var resp map[string]any
			decodeBody(t, rec, &resp)
			_, hasToken := resp["token"]
			if hasToken != (tt.token != "") {
				t.Fatalf("unexpected token presence: %v", resp)
			}
			if resp["message"] != "Inicio de sesión exitoso." {
				t.Fatalf("unexpected message: %v", resp["message"])
			}
		})
	}
}

func TestLoginResult(t *testing.T) {
	if loginResult(domain.NewError(domain.ErrUnauthorized, "x")) != "rejected" {
		t.Fatalf("expected rejected")
	}
	if loginResult(domain.ProviderError("x", errors.New("db"))) != "error" {
		t.Fatalf("expected error")
	}
}

func TestUserHandler_Delete(t *testing.T) {
	h := NewUserHandler(&stubUserService{
		deleteFn: func(ctx context.Context, id string) error {
			if id != "USR-002" {
				t.Fatalf("unexpected id: %s", id)
			}
			return nil
		},
	})

	c, rec := newTestContext(http.MethodDelete, "/usuario/USR-002", "", "", "id", "USR-002")
	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
