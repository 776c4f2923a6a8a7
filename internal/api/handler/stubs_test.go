package handler

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/calvacorro/legal-records-api/internal/core/domain"
	"github.com/calvacorro/legal-records-api/internal/core/ports"
)

// newTestContext builds an Echo context for a request with the given body and
// content type. Path params are set from the names/values pairs.
func newTestContext(method, target, contentType, body string, params ...string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if contentType != "" {
		req.Header.Set(echo.HeaderContentType, contentType)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if len(params) > 0 {
		var names, values []string
		for i := 0; i+1 < len(params); i += 2 {
			names = append(names, params[i])
			values = append(values, params[i+1])
		}
		c.SetParamNames(names...)
		c.SetParamValues(values...)
	}
	return c, rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), v); err != nil {
		t.Fatalf("invalid json %q: %v", rec.Body.String(), err)
	}
}

// domainMessage returns the user-facing message of a domain error.
func domainMessage(t *testing.T, err error) string {
	t.Helper()
	de, ok := err.(*domain.Error)
	if !ok {
		t.Fatalf("expected *domain.Error, got %T (%v)", err, err)
	}
	return de.Message
}

type stubClientService struct {
	createFn func(ctx context.Context, in ports.ClientInput) (*domain.Client, error)
	listFn   func(ctx context.Context) ([]*domain.Client, error)
	getFn    func(ctx context.Context, id string) (*domain.Client, error)
	updateFn func(ctx context.Context, id string, in ports.ClientInput) (*domain.Client, error)
	deleteFn func(ctx context.Context, id string) error
}

func (s *stubClientService) Create(ctx context.Context, in ports.ClientInput) (*domain.Client, error) {
	return s.createFn(ctx, in)
}

func (s *stubClientService) List(ctx context.Context) ([]*domain.Client, error) {
	return s.listFn(ctx)
}

func (s *stubClientService) Get(ctx context.Context, id string) (*domain.Client, error) {
	return s.getFn(ctx, id)
}

func (s *stubClientService) Update(ctx context.Context, id string, in ports.ClientInput) (*domain.Client, error) {
	return s.updateFn(ctx, id, in)
}

func (s *stubClientService) SoftDelete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

type stubCaseFileService struct {
	createFn       func(ctx context.Context, in ports.CaseFileInput) (*domain.CaseFile, error)
	listFn         func(ctx context.Context) ([]*domain.CaseFile, error)
	listByClientFn func(ctx context.Context, clientID string) ([]*domain.CaseFile, error)
	listDocsFn     func(ctx context.Context, id string) ([]domain.StoredFile, error)
	getFn          func(ctx context.Context, id string) (*domain.CaseFile, error)
	updateFn       func(ctx context.Context, id string, in ports.CaseFileInput) (*domain.CaseFile, error)
	deleteFn       func(ctx context.Context, id string) error
}

func (s *stubCaseFileService) Create(ctx context.Context, in ports.CaseFileInput) (*domain.CaseFile, error) {
	return s.createFn(ctx, in)
}

func (s *stubCaseFileService) List(ctx context.Context) ([]*domain.CaseFile, error) {
	return s.listFn(ctx)
}

func (s *stubCaseFileService) ListByClient(ctx context.Context, clientID string) ([]*domain.CaseFile, error) {
	return s.listByClientFn(ctx, clientID)
}

func (s *stubCaseFileService) ListDocuments(ctx context.Context, id string) ([]domain.StoredFile, error) {
	return s.listDocsFn(ctx, id)
}

func (s *stubCaseFileService) Get(ctx context.Context, id string) (*domain.CaseFile, error) {
	return s.getFn(ctx, id)
}

func (s *stubCaseFileService) Update(ctx context.Context, id string, in ports.CaseFileInput) (*domain.CaseFile, error) {
	return s.updateFn(ctx, id, in)
}

func (s *stubCaseFileService) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

type stubOtherDocumentService struct {
	createFn   func(ctx context.Context, in ports.OtherDocumentInput) (*domain.OtherDocument, error)
	listFn     func(ctx context.Context) ([]*domain.OtherDocument, error)
	listDocsFn func(ctx context.Context, id string) ([]domain.StoredFile, error)
	getFn      func(ctx context.Context, id string) (*domain.OtherDocument, error)
	updateFn   func(ctx context.Context, id string, in ports.OtherDocumentInput) (*domain.OtherDocument, error)
	deleteFn   func(ctx context.Context, id string) error
}

func (s *stubOtherDocumentService) Create(ctx context.Context, in ports.OtherDocumentInput) (*domain.OtherDocument, error) {
	return s.createFn(ctx, in)
}

func (s *stubOtherDocumentService) List(ctx context.Context) ([]*domain.OtherDocument, error) {
	return s.listFn(ctx)
}

func (s *stubOtherDocumentService) ListDocuments(ctx context.Context, id string) ([]domain.StoredFile, error) {
	return s.listDocsFn(ctx, id)
}

func (s *stubOtherDocumentService) Get(ctx context.Context, id string) (*domain.OtherDocument, error) {
	return s.getFn(ctx, id)
}

func (s *stubOtherDocumentService) Update(ctx context.Context, id string, in ports.OtherDocumentInput) (*domain.OtherDocument, error) {
	return s.updateFn(ctx, id, in)
}

func (s *stubOtherDocumentService) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

type stubUserService struct {
	listFn   func(ctx context.Context) ([]*domain.User, error)
	createFn func(ctx context.Context, in ports.CreateUserInput) (*domain.User, error)
	getFn    func(ctx context.Context, id string) (*domain.User, error)
	updateFn func(ctx context.Context, id string, in ports.UpdateUserInput) (*domain.User, error)
	deleteFn func(ctx context.Context, id string) error
	loginFn  func(ctx context.Context, email, password string) (*ports.LoginResult, error)
}

func (s *stubUserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.listFn(ctx)
}

func (s *stubUserService) Create(ctx context.Context, in ports.CreateUserInput) (*domain.User, error) {
	return s.createFn(ctx, in)
}

func (s *stubUserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.getFn(ctx, id)
}

func (s *stubUserService) Update(ctx context.Context, id string, in ports.UpdateUserInput) (*domain.User, error) {
	return s.updateFn(ctx, id, in)
}

func (s *stubUserService) SoftDelete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

func (s *stubUserService) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	return s.loginFn(ctx, email, password)
}
