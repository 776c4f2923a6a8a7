package ports

import (
	"context"

	"github.com/calvacorro/legal-records-api/internal/core/domain"
)

// Repositories return domain.ErrNotFound (unwrapped) when a record is absent
// and domain.ErrConflict when a write violates a uniqueness constraint.

// ClientRepository persists clients keyed by their derived ID.
type ClientRepository interface {
	Get(ctx context.Context, id string) (*domain.Client, error)
	// ListActive returns clients in StateActive ordered by ID.
	ListActive(ctx context.Context) ([]*domain.Client, error)
	// Save writes the whole record, creating or replacing it.
	Save(ctx context.Context, c *domain.Client) error
	SetState(ctx context.Context, id string, state domain.State) error
	// Delete physically removes the record. Only used to complete a rename.
	Delete(ctx context.Context, id string) error
}

// CaseFileRepository persists case files keyed by their EXP-NNN ID.
type CaseFileRepository interface {
	Get(ctx context.Context, id string) (*domain.CaseFile, error)
	List(ctx context.Context) ([]*domain.CaseFile, error)
	ListByClient(ctx context.Context, clientID string) ([]*domain.CaseFile, error)
	// ExistsByTitleAndClient compares titles case-insensitively after trimming.
	// A non-empty excludeID skips that record.
	ExistsByTitleAndClient(ctx context.Context, title, clientID, excludeID string) (bool, error)
	Save(ctx context.Context, cf *domain.CaseFile) error
	Delete(ctx context.Context, id string) error
}

// OtherDocumentRepository persists other documents keyed by their DOC-NNN ID.
type OtherDocumentRepository interface {
	Get(ctx context.Context, id string) (*domain.OtherDocument, error)
	List(ctx context.Context) ([]*domain.OtherDocument, error)
	// ExistsByTitleAndType compares both fields case-insensitively after trimming.
	ExistsByTitleAndType(ctx context.Context, title, docType, excludeID string) (bool, error)
	Save(ctx context.Context, d *domain.OtherDocument) error
	Delete(ctx context.Context, id string) error
}

// UserRepository persists users keyed by their USR-NNN ID.
type UserRepository interface {
	Get(ctx context.Context, id string) (*domain.User, error)
	ListActive(ctx context.Context) ([]*domain.User, error)
	// FindByEmail returns a user whose email matches case-insensitively,
	// preferring an active one. Deleted users are returned when no active
	// user matches.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// ActiveEmailExists reports whether a non-deleted user other than excludeID
	// uses the email.
	ActiveEmailExists(ctx context.Context, email, excludeID string) (bool, error)
	Save(ctx context.Context, u *domain.User) error
	SetState(ctx context.Context, id string, state domain.State) error
}

// CounterRepository holds the named monotonic sequences.
type CounterRepository interface {
	// Increment atomically adds one to the named counter, creating it at zero
	// first when absent, and returns the new value.
	Increment(ctx context.Context, name string) (int64, error)
}
