package ports

import (
	"context"

	"github.com/calvacorro/legal-records-api/internal/core/domain"
)

// FolderStore is the hierarchical folder/file API of the cloud storage provider.
type FolderStore interface {
	// FindFolder looks for a non-trashed folder named exactly name under parentID.
	FindFolder(ctx context.Context, parentID, name string) (id string, found bool, err error)
	CreateFolder(ctx context.Context, parentID, name string) (string, error)
	// ListChildren returns the non-trashed entries of a folder.
	ListChildren(ctx context.Context, folderID string) ([]domain.StoredFile, error)
	Delete(ctx context.Context, fileID string) error
}

// FolderRemover deletes storage folders that are no longer referenced.
type FolderRemover interface {
	Remove(ctx context.Context, folderID string) error
}

// Locker serialises check-then-write sequences across processes.
type Locker interface {
	// Lock blocks until key is held or ctx is done. The returned func releases it.
	Lock(ctx context.Context, key string) (unlock func(), err error)
}
