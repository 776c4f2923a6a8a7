package service

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"github.com/calvacorro/legal-records-api/internal/core/domain"
	"github.com/calvacorro/legal-records-api/internal/core/ports"
)

type ClientService struct {
	repo   ports.ClientRepository
	locker ports.Locker
	now    domain.Clock
	log    zerolog.Logger
}

func NewClientService(repo ports.ClientRepository, locker ports.Locker, log zerolog.Logger) *ClientService {
	return &ClientService{repo: repo, locker: locker, now: domain.SystemClock, log: log}
}

// Create stores a new active client under the ID derived from its name.
// An inactive client holding the same ID is overwritten.
func (s *ClientService) Create(ctx context.Context, in ports.ClientInput) (*domain.Client, error) {
	id := domain.ClientIDFromName(in.Name)

	unlock, err := acquire(ctx, s.locker, lockClients)
	if err != nil {
		return nil, err
	}
	defer unlock()

	occupied, err := s.activeExists(ctx, id)
	if err != nil {
		return nil, err
	}
	if occupied {
		return nil, domain.Conflict("Ya existe un cliente activo con ese nombre.")
	}

	now := s.now()
	dateAdded := strings.TrimSpace(in.DateAdded)
	if dateAdded == "" {
		dateAdded = now.Format(domain.DateLayout)
	}

	c := &domain.Client{
		ID:        id,
		Name:      strings.TrimSpace(in.Name),
		Email:     strings.TrimSpace(in.Email),
		Phone:     strings.TrimSpace(in.Phone),
		DateAdded: dateAdded,
		State:     domain.StateActive,
		CreatedAt: now,
	}
	if err := s.repo.Save(ctx, c); err != nil {
		return nil, domain.ProviderError("Error al guardar el cliente.", err)
	}

	s.log.Info().Str("client_id", id).Msg("client created")
	return c, nil
}

func (s *ClientService) List(ctx context.Context) ([]*domain.Client, error) {
	clients, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, domain.ProviderError("Error al obtener los clientes.", err)
	}
	return clients, nil
}

func (s *ClientService) Get(ctx context.Context, id string) (*domain.Client, error) {
	return s.getActive(ctx, id, "Cliente no encontrado o inactivo")
}

// Update rewrites an active client. When the new name derives a different ID
// the record moves: it is written under the new ID and the old one is removed.
func (s *ClientService) Update(ctx context.Context, id string, in ports.ClientInput) (*domain.Client, error) {
	unlock, err := acquire(ctx, s.locker, lockClients)
	if err != nil {
		return nil, err
	}
	defer unlock()

	current, err := s.getActive(ctx, id, "Cliente no encontrado o inactivo.")
	if err != nil {
		return nil, err
	}

	newID := domain.ClientIDFromName(in.Name)
	// displaced is the inactive record a rename overwrites, if any.
	var displaced *domain.Client
	if newID != id {
		target, err := s.repo.Get(ctx, newID)
		switch {
		case errors.Is(err, domain.ErrNotFound):
		case err != nil:
			return nil, domain.ProviderError("Error al obtener el cliente.", err)
		case target.State.IsActive():
			return nil, domain.Conflict("El nuevo nombre ya pertenece a un cliente activo existente.")
		default:
			displaced = target
		}
	}

	updated := *current
	updated.ID = newID
	updated.Name = strings.TrimSpace(in.Name)
	updated.Email = strings.TrimSpace(in.Email)
	updated.Phone = strings.TrimSpace(in.Phone)
	if d := strings.TrimSpace(in.DateAdded); d != "" {
		updated.DateAdded = d
	}
	updated.UpdatedAt = s.now()

	if err := s.repo.Save(ctx, &updated); err != nil {
		return nil, domain.ProviderError("Error al actualizar el cliente.", err)
	}
	if newID != id {
		if err := s.repo.Delete(ctx, id); err != nil {
			s.undoRename(ctx, id, newID, displaced)
			return nil, domain.ProviderError("Error al actualizar el cliente.", err)
		}
		s.log.Info().Str("client_id", newID).Str("previous_id", id).Msg("client renamed")
		return &updated, nil
	}

	s.log.Info().Str("client_id", id).Msg("client updated")
	return &updated, nil
}

// SoftDelete marks an active client as deleted. The record stays in the store.
func (s *ClientService) SoftDelete(ctx context.Context, id string) error {
	if _, err := s.getActive(ctx, id, "Cliente no encontrado o ya inactivo."); err != nil {
		return err
	}
	if err := s.repo.SetState(ctx, id, domain.StateDeleted); err != nil {
		return domain.ProviderError("Error al borrar el cliente.", err)
	}
	s.log.Info().Str("client_id", id).Msg("client soft-deleted")
	return nil
}

func (s *ClientService) getActive(ctx context.Context, id, notFoundMsg string) (*domain.Client, error) {
	c, err := s.repo.Get(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.NotFound(notFoundMsg)
	}
	if err != nil {
		return nil, domain.ProviderError("Error al obtener el cliente.", err)
	}
	if !c.State.IsActive() {
		return nil, domain.NotFound(notFoundMsg)
	}
	return c, nil
}

// undoRename removes the record written under newID, or puts back the inactive
// record it replaced, so only the original ID stays active.
func (s *ClientService) undoRename(ctx context.Context, oldID, newID string, displaced *domain.Client) {
	var err error
	if displaced != nil {
		err = s.repo.Save(ctx, displaced)
	} else {
		err = s.repo.Delete(ctx, newID)
	}
	if err != nil {
		s.log.Error().Err(err).
			Str("client_id", oldID).
			Str("orphan_id", newID).
			Msg("client rename not rolled back; two active records")
	}
}

func (s *ClientService) activeExists(ctx context.Context, id string) (bool, error) {
	c, err := s.repo.Get(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, domain.ProviderError("Error al obtener el cliente.", err)
	}
	return c.State.IsActive(), nil
}
