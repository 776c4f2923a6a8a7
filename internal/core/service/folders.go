package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/calvacorro/legal-records-api/internal/core/domain"
	"github.com/calvacorro/legal-records-api/internal/core/ports"
)

// FolderResolver provisions the per-record folder hierarchy in the storage provider.
type FolderResolver struct {
	store   ports.FolderStore
	remover ports.FolderRemover
	log     zerolog.Logger
}

func NewFolderResolver(store ports.FolderStore, log zerolog.Logger) *FolderResolver {
	return &FolderResolver{store: store, log: log}
}

// WithRemover hands folder removal to rm, typically a background queue.
func (r *FolderResolver) WithRemover(rm ports.FolderRemover) *FolderResolver {
	r.remover = rm
	return r
}

// FindOrCreate returns the first non-trashed folder under parentID named
// exactly name, creating it when none exists.
func (r *FolderResolver) FindOrCreate(ctx context.Context, parentID, name string) (string, error) {
	id, found, err := r.store.FindFolder(ctx, parentID, name)
	if err != nil {
		return "", domain.ProviderError("Error al crear carpetas en Google Drive.", fmt.Errorf("find folder %q: %w", name, err))
	}
	if found {
		return id, nil
	}

	id, err = r.store.CreateFolder(ctx, parentID, name)
	if err != nil {
		return "", domain.ProviderError("Error al crear carpetas en Google Drive.", fmt.Errorf("create folder %q: %w", name, err))
	}
	r.log.Info().Str("parent_id", parentID).Str("folder", name).Str("folder_id", id).Msg("folder created")
	return id, nil
}

// EnsurePath resolves each name in turn below rootID and returns the ID of the last one.
func (r *FolderResolver) EnsurePath(ctx context.Context, rootID string, names ...string) (string, error) {
	current := rootID
	for _, name := range names {
		id, err := r.FindOrCreate(ctx, current, name)
		if err != nil {
			return "", err
		}
		current = id
	}
	return current, nil
}

// List returns the documents stored in folderID.
func (r *FolderResolver) List(ctx context.Context, folderID string) ([]domain.StoredFile, error) {
	files, err := r.store.ListChildren(ctx, folderID)
	if err != nil {
		return nil, domain.ProviderError("Error al listar documentos de Google Drive.", err)
	}
	if files == nil {
		files = []domain.StoredFile{}
	}
	return files, nil
}

// Remove deletes a folder, or queues it when a remover is configured.
// Providers refuse some deletions (non-empty folders, missing permissions);
// callers decide whether that is fatal.
func (r *FolderResolver) Remove(ctx context.Context, folderID string) error {
	if r.remover != nil {
		return r.remover.Remove(ctx, folderID)
	}
	if err := r.store.Delete(ctx, folderID); err != nil {
		return fmt.Errorf("delete folder %s: %w", folderID, err)
	}
	return nil
}
