package service

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"github.com/calvacorro/legal-records-api/internal/core/domain"
	"github.com/calvacorro/legal-records-api/internal/core/ports"
)

type OtherDocumentService struct {
	docs         ports.OtherDocumentRepository
	ids          *CounterAllocator
	folders      *FolderResolver
	locker       ports.Locker
	rootFolderID string
	othersFolder string
	now          domain.Clock
	log          zerolog.Logger
}

func NewOtherDocumentService(
	docs ports.OtherDocumentRepository,
	ids *CounterAllocator,
	folders *FolderResolver,
	locker ports.Locker,
	rootFolderID, othersFolder string,
	log zerolog.Logger,
) *OtherDocumentService {
	return &OtherDocumentService{
		docs:         docs,
		ids:          ids,
		folders:      folders,
		locker:       locker,
		rootFolderID: rootFolderID,
		othersFolder: othersFolder,
		now:          domain.SystemClock,
		log:          log,
	}
}

// Create checks the (title, type) pair, allocates the next DOC id, provisions
// <others>/<title> in storage and stores the record.
func (s *OtherDocumentService) Create(ctx context.Context, in ports.OtherDocumentInput) (*domain.OtherDocument, error) {
	title, docType := strings.TrimSpace(in.Title), strings.TrimSpace(in.Type)

	unlock, err := acquire(ctx, s.locker, lockOthers)
	if err != nil {
		return nil, err
	}
	defer unlock()

	if err := s.ensureUnique(ctx, title, docType, "", `Ya existe un archivo "Otro" con el mismo título y tipo.`); err != nil {
		return nil, err
	}

	id, err := s.ids.Next(ctx, domain.CounterOther, domain.PrefixOther, domain.SequenceWidth)
	if err != nil {
		return nil, err
	}

	folderID, err := s.folders.EnsurePath(ctx, s.rootFolderID, s.othersFolder, title)
	if err != nil {
		s.log.Error().Err(err).Str("document_id", id).Msg("document folder provisioning failed")
		return nil, err
	}

	now := s.now()
	tags := []string{}
	if in.TagsSet {
		tags = domain.NormalizeTags(in.Tags)
	}

	doc := &domain.OtherDocument{
		ID:            id,
		Title:         title,
		Type:          docType,
		Description:   strings.TrimSpace(in.Description),
		Author:        valueOr(in.Author, ""),
		Tags:          tags,
		Source:        valueOr(in.Source, ""),
		Jurisdiction:  valueOr(in.Jurisdiction, ""),
		Court:         valueOr(in.Court, ""),
		CaseNumber:    valueOr(in.CaseNumber, ""),
		Year:          valueOr(in.Year, ""),
		Notes:         valueOr(in.Notes, ""),
		DateAdded:     valueOr(in.Date, now.Format(domain.DateLayout)),
		DriveFolderID: folderID,
		CreatedAt:     now,
	}
	if err := s.docs.Save(ctx, doc); err != nil {
		return nil, saveError(err, `Ya existe un archivo "Otro" con el mismo título y tipo.`, `Error al guardar el archivo "Otro".`)
	}

	s.log.Info().Str("document_id", id).Str("folder_id", folderID).Msg("document created")
	return doc, nil
}

func (s *OtherDocumentService) List(ctx context.Context) ([]*domain.OtherDocument, error) {
	list, err := s.docs.List(ctx)
	if err != nil {
		return nil, domain.ProviderError(`Error al obtener los archivos "Otro".`, err)
	}
	return list, nil
}

func (s *OtherDocumentService) ListDocuments(ctx context.Context, id string) ([]domain.StoredFile, error) {
	doc, err := s.get(ctx, id, `Archivo "Otro" no encontrado.`)
	if err != nil {
		return nil, err
	}
	if doc.DriveFolderID == "" {
		return nil, domain.NotFound(`No se encontró una carpeta de Google Drive asociada a este archivo "Otro".`)
	}
	return s.folders.List(ctx, doc.DriveFolderID)
}

func (s *OtherDocumentService) Get(ctx context.Context, id string) (*domain.OtherDocument, error) {
	return s.get(ctx, id, `Archivo "Otro" no encontrado`)
}

// Update merges the input over the stored record: optional fields that were
// not sent keep their stored value. Tags are replaced only when sent.
func (s *OtherDocumentService) Update(ctx context.Context, id string, in ports.OtherDocumentInput) (*domain.OtherDocument, error) {
	existing, err := s.get(ctx, id, `Archivo "Otro" no encontrado.`)
	if err != nil {
		return nil, err
	}
	title, docType := strings.TrimSpace(in.Title), strings.TrimSpace(in.Type)

	unlock, err := acquire(ctx, s.locker, lockOthers)
	if err != nil {
		return nil, err
	}
	defer unlock()

	if err := s.ensureUnique(ctx, title, docType, id, "Ya existe otro archivo con el mismo título y tipo."); err != nil {
		return nil, err
	}

	now := s.now()
	dateAdded := existing.DateAdded
	if dateAdded == "" {
		dateAdded = now.Format(domain.DateLayout)
	}
	tags := existing.Tags
	if in.TagsSet {
		tags = domain.NormalizeTags(in.Tags)
	}
	if tags == nil {
		tags = []string{}
	}

	updated := &domain.OtherDocument{
		ID:            id,
		Title:         title,
		Type:          docType,
		Description:   strings.TrimSpace(in.Description),
		Author:        valueOr(in.Author, existing.Author),
		Tags:          tags,
		Source:        valueOr(in.Source, existing.Source),
		Jurisdiction:  valueOr(in.Jurisdiction, existing.Jurisdiction),
		Court:         valueOr(in.Court, existing.Court),
		CaseNumber:    valueOr(in.CaseNumber, existing.CaseNumber),
		Year:          valueOr(in.Year, existing.Year),
		Notes:         valueOr(in.Notes, existing.Notes),
		DateAdded:     valueOr(in.Date, dateAdded),
		DriveFolderID: existing.DriveFolderID,
		CreatedAt:     existing.CreatedAt,
		UpdatedAt:     now,
	}
	if err := s.docs.Save(ctx, updated); err != nil {
		return nil, saveError(err, "Ya existe otro archivo con el mismo título y tipo.", "Error al guardar.")
	}

	s.log.Info().Str("document_id", id).Msg("document updated")
	return updated, nil
}

// Delete removes the record; folder removal is best effort.
func (s *OtherDocumentService) Delete(ctx context.Context, id string) error {
	doc, err := s.get(ctx, id, `Archivo "Otro" no encontrado`)
	if err != nil {
		return err
	}

	if doc.DriveFolderID != "" {
		if err := s.folders.Remove(ctx, doc.DriveFolderID); err != nil {
			s.log.Warn().Err(err).Str("document_id", id).Str("folder_id", doc.DriveFolderID).Msg("document folder not deleted")
		}
	}

	if err := s.docs.Delete(ctx, id); err != nil {
		return domain.ProviderError(`Error al eliminar el archivo "Otro".`, err)
	}
	s.log.Info().Str("document_id", id).Msg("document deleted")
	return nil
}

func (s *OtherDocumentService) get(ctx context.Context, id, notFoundMsg string) (*domain.OtherDocument, error) {
	doc, err := s.docs.Get(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.NotFound(notFoundMsg)
	}
	if err != nil {
		return nil, domain.ProviderError(`Error al obtener el archivo "Otro".`, err)
	}
	return doc, nil
}

func (s *OtherDocumentService) ensureUnique(ctx context.Context, title, docType, excludeID, msg string) error {
	dup, err := s.docs.ExistsByTitleAndType(ctx, title, docType, excludeID)
	if err != nil {
		return domain.ProviderError(`Error al validar el archivo "Otro".`, err)
	}
	if dup {
		return domain.Conflict(msg)
	}
	return nil
}

// valueOr returns the trimmed *p, or fallback when p is nil.
func valueOr(p *string, fallback string) string {
	if p == nil {
		return fallback
	}
	return strings.TrimSpace(*p)
}
