package ports

import (
	"context"

	"github.com/calvacorro/legal-records-api/internal/core/domain"
)

// ClientInput carries the editable client fields. DateAdded is optional.
type ClientInput struct {
	Name      string
	Email     string
	Phone     string
	DateAdded string
}

// ClientService defines the client use cases.
type ClientService interface {
	Create(ctx context.Context, in ClientInput) (*domain.Client, error)
	List(ctx context.Context) ([]*domain.Client, error)
	Get(ctx context.Context, id string) (*domain.Client, error)
	// Update returns the record under its final ID, which changes when the
	// new name derives a different one.
	Update(ctx context.Context, id string, in ClientInput) (*domain.Client, error)
	SoftDelete(ctx context.Context, id string) error
}

// CaseFileInput carries the editable case-file fields.
type CaseFileInput struct {
	ClientID    string
	Title       string
	Subject     string
	Date        string
	Place       string
	Court       string
	Description string
}

// CaseFileService defines the case-file use cases.
type CaseFileService interface {
	Create(ctx context.Context, in CaseFileInput) (*domain.CaseFile, error)
	List(ctx context.Context) ([]*domain.CaseFile, error)
	ListByClient(ctx context.Context, clientID string) ([]*domain.CaseFile, error)
	ListDocuments(ctx context.Context, id string) ([]domain.StoredFile, error)
	Get(ctx context.Context, id string) (*domain.CaseFile, error)
	Update(ctx context.Context, id string, in CaseFileInput) (*domain.CaseFile, error)
	Delete(ctx context.Context, id string) error
}

// OtherDocumentInput carries other-document fields. Title, Type and
// Description are always required; a nil optional field means "not sent",
// which on update keeps the stored value.
type OtherDocumentInput struct {
	Title        string
	Type         string
	Description  string
	Author       *string
	Tags         []string
	TagsSet      bool
	Source       *string
	Jurisdiction *string
	Court        *string
	CaseNumber   *string
	Year         *string
	Notes        *string
	Date         *string
}

// OtherDocumentService defines the other-document use cases.
type OtherDocumentService interface {
	Create(ctx context.Context, in OtherDocumentInput) (*domain.OtherDocument, error)
	List(ctx context.Context) ([]*domain.OtherDocument, error)
	ListDocuments(ctx context.Context, id string) ([]domain.StoredFile, error)
	Get(ctx context.Context, id string) (*domain.OtherDocument, error)
	Update(ctx context.Context, id string, in OtherDocumentInput) (*domain.OtherDocument, error)
	Delete(ctx context.Context, id string) error
}

// CreateUserInput carries the fields accepted when creating a user.
type CreateUserInput struct {
	Name     string
	Role     string
	Avatar   string
	Phone    string
	Email    string
	Password string
}

// UpdateUserInput merges over the stored user; nil fields are kept.
type UpdateUserInput struct {
	Name     *string
	Role     *string
	Avatar   *string
	Phone    *string
	Email    *string
	Password *string
}

// LoginResult is returned on successful authentication. Token is empty when
// token signing is not configured.
type LoginResult struct {
	User  *domain.User
	Token string
}

// UserService defines user management and authentication.
type UserService interface {
	List(ctx context.Context) ([]*domain.User, error)
	Create(ctx context.Context, in CreateUserInput) (*domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	Update(ctx context.Context, id string, in UpdateUserInput) (*domain.User, error)
	SoftDelete(ctx context.Context, id string) error
	Login(ctx context.Context, email, password string) (*LoginResult, error)
}
