package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/calvacorro/legal-records-api/internal/core/domain"
	"github.com/calvacorro/legal-records-api/internal/core/ports"
)

type CaseFileService struct {
	cases        ports.CaseFileRepository
	clients      ports.ClientRepository
	ids          *CounterAllocator
	folders      *FolderResolver
	locker       ports.Locker
	rootFolderID string
	now          domain.Clock
	log          zerolog.Logger
}

func NewCaseFileService(
	cases ports.CaseFileRepository,
	clients ports.ClientRepository,
	ids *CounterAllocator,
	folders *FolderResolver,
	locker ports.Locker,
	rootFolderID string,
	log zerolog.Logger,
) *CaseFileService {
	return &CaseFileService{
		cases:        cases,
		clients:      clients,
		ids:          ids,
		folders:      folders,
		locker:       locker,
		rootFolderID: rootFolderID,
		now:          domain.SystemClock,
		log:          log,
	}
}

// Create validates the owning client and the (title, client) pair, allocates
// the next EXP id, provisions cliente-<client>/expediente-<id> in storage and
// stores the record.
func (s *CaseFileService) Create(ctx context.Context, in ports.CaseFileInput) (*domain.CaseFile, error) {
	in = trimCaseFileInput(in)
	if err := s.requireActiveClient(ctx, in.ClientID); err != nil {
		return nil, err
	}

	unlock, err := acquire(ctx, s.locker, lockCaseFiles)
	if err != nil {
		return nil, err
	}
	defer unlock()

	if err := s.ensureUnique(ctx, in.Title, in.ClientID, "", "Ya existe un expediente con el mismo título y cliente."); err != nil {
		return nil, err
	}

	id, err := s.ids.Next(ctx, domain.CounterCaseFile, domain.PrefixCaseFile, domain.SequenceWidth)
	if err != nil {
		return nil, err
	}

	folderID, err := s.folders.EnsurePath(ctx, s.rootFolderID, "cliente-"+in.ClientID, "expediente-"+id)
	if err != nil {
		s.log.Error().Err(err).Str("case_file_id", id).Msg("case file folder provisioning failed")
		return nil, err
	}

	cf := &domain.CaseFile{
		ID:            id,
		ClientID:      in.ClientID,
		Title:         in.Title,
		Subject:       in.Subject,
		Date:          in.Date,
		Place:         in.Place,
		Court:         in.Court,
		Description:   in.Description,
		DriveFolderID: folderID,
		CreatedAt:     s.now(),
	}
	if err := s.cases.Save(ctx, cf); err != nil {
		return nil, saveError(err, "Ya existe un expediente con el mismo título y cliente.", "Error al guardar el expediente.")
	}

	s.log.Info().Str("case_file_id", id).Str("client_id", in.ClientID).Str("folder_id", folderID).Msg("case file created")
	return cf, nil
}

func (s *CaseFileService) List(ctx context.Context) ([]*domain.CaseFile, error) {
	list, err := s.cases.List(ctx)
	if err != nil {
		return nil, domain.ProviderError("Error al obtener los expedientes.", err)
	}
	return list, nil
}

func (s *CaseFileService) ListByClient(ctx context.Context, clientID string) ([]*domain.CaseFile, error) {
	list, err := s.cases.ListByClient(ctx, clientID)
	if err != nil {
		return nil, domain.ProviderError("Error al obtener los expedientes.", err)
	}
	return list, nil
}

// ListDocuments returns the files currently stored in the case file's folder.
func (s *CaseFileService) ListDocuments(ctx context.Context, id string) ([]domain.StoredFile, error) {
	cf, err := s.get(ctx, id, "Expediente no encontrado.")
	if err != nil {
		return nil, err
	}
	if cf.DriveFolderID == "" {
		return nil, domain.NotFound("No se encontró una carpeta de Google Drive asociada a este expediente.")
	}
	return s.folders.List(ctx, cf.DriveFolderID)
}

func (s *CaseFileService) Get(ctx context.Context, id string) (*domain.CaseFile, error) {
	return s.get(ctx, id, "Expediente no encontrado")
}

// Update overwrites every editable field. The storage folder and creation
// time are carried over from the stored record.
func (s *CaseFileService) Update(ctx context.Context, id string, in ports.CaseFileInput) (*domain.CaseFile, error) {
	in = trimCaseFileInput(in)
	existing, err := s.get(ctx, id, fmt.Sprintf("El expediente con ID %s no existe.", id))
	if err != nil {
		return nil, err
	}
	if err := s.requireActiveClient(ctx, in.ClientID); err != nil {
		return nil, err
	}

	unlock, err := acquire(ctx, s.locker, lockCaseFiles)
	if err != nil {
		return nil, err
	}
	defer unlock()

	if err := s.ensureUnique(ctx, in.Title, in.ClientID, id, "Ya existe otro expediente con el mismo título y cliente."); err != nil {
		return nil, err
	}

	updated := &domain.CaseFile{
		ID:            id,
		ClientID:      in.ClientID,
		Title:         in.Title,
		Subject:       in.Subject,
		Date:          in.Date,
		Place:         in.Place,
		Court:         in.Court,
		Description:   in.Description,
		DriveFolderID: existing.DriveFolderID,
		CreatedAt:     existing.CreatedAt,
		UpdatedAt:     s.now(),
	}
	if err := s.cases.Save(ctx, updated); err != nil {
		return nil, saveError(err, "Ya existe otro expediente con el mismo título y cliente.", "Error al guardar expediente.")
	}

	s.log.Info().Str("case_file_id", id).Msg("case file updated")
	return updated, nil
}

// Delete removes the record. Folder removal is best effort: the storage
// provider refuses non-empty folders, and that must not block the delete.
func (s *CaseFileService) Delete(ctx context.Context, id string) error {
	cf, err := s.get(ctx, id, "Expediente no encontrado")
	if err != nil {
		return err
	}

	if cf.DriveFolderID != "" {
		if err := s.folders.Remove(ctx, cf.DriveFolderID); err != nil {
			s.log.Warn().Err(err).Str("case_file_id", id).Str("folder_id", cf.DriveFolderID).Msg("case file folder not deleted")
		}
	}

	if err := s.cases.Delete(ctx, id); err != nil {
		return domain.ProviderError("Error al eliminar el expediente.", err)
	}
	s.log.Info().Str("case_file_id", id).Msg("case file deleted")
	return nil
}

func (s *CaseFileService) get(ctx context.Context, id, notFoundMsg string) (*domain.CaseFile, error) {
	cf, err := s.cases.Get(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.NotFound(notFoundMsg)
	}
	if err != nil {
		return nil, domain.ProviderError("Error al obtener el expediente.", err)
	}
	return cf, nil
}

func (s *CaseFileService) requireActiveClient(ctx context.Context, clientID string) error {
	c, err := s.clients.Get(ctx, clientID)
	if errors.Is(err, domain.ErrNotFound) || (err == nil && !c.State.IsActive()) {
		return domain.Validation("El cliente seleccionado no está activo o no existe.")
	}
	if err != nil {
		return domain.ProviderError("Error al obtener el cliente.", err)
	}
	return nil
}

func (s *CaseFileService) ensureUnique(ctx context.Context, title, clientID, excludeID, msg string) error {
	dup, err := s.cases.ExistsByTitleAndClient(ctx, title, clientID, excludeID)
	if err != nil {
		return domain.ProviderError("Error al validar el expediente.", err)
	}
	if dup {
		return domain.Conflict(msg)
	}
	return nil
}

func trimCaseFileInput(in ports.CaseFileInput) ports.CaseFileInput {
	in.ClientID = strings.TrimSpace(in.ClientID)
	in.Title = strings.TrimSpace(in.Title)
	in.Subject = strings.TrimSpace(in.Subject)
	in.Date = strings.TrimSpace(in.Date)
	in.Place = strings.TrimSpace(in.Place)
	in.Court = strings.TrimSpace(in.Court)
	in.Description = strings.TrimSpace(in.Description)
	return in
}
