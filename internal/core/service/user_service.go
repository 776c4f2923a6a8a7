package service

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/calvacorro/legal-records-api/internal/core/domain"
	"github.com/calvacorro/legal-records-api/internal/core/ports"
)

// UserService implements user management and login.
type UserService struct {
	repo           ports.UserRepository
	ids            *CounterAllocator
	locker         ports.Locker
	tokens         TokenIssuer
	enableOnCreate bool
	log            zerolog.Logger
}

// NewUserService builds the service. tokens may be nil, in which case Login
// returns no token. New users are stored disabled unless enableOnCreate is set.
func NewUserService(
	repo ports.UserRepository,
	ids *CounterAllocator,
	locker ports.Locker,
	tokens TokenIssuer,
	enableOnCreate bool,
	log zerolog.Logger,
) *UserService {
	return &UserService{
		repo:           repo,
		ids:            ids,
		locker:         locker,
		tokens:         tokens,
		enableOnCreate: enableOnCreate,
		log:            log,
	}
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	users, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, domain.ProviderError("Error al obtener los usuarios.", err)
	}
	return users, nil
}

func (s *UserService) Create(ctx context.Context, in ports.CreateUserInput) (*domain.User, error) {
	email := strings.TrimSpace(in.Email)
	if email == "" {
		return nil, domain.Validation(`El campo "email" es obligatorio`)
	}
	if strings.TrimSpace(in.Password) == "" {
		return nil, domain.Validation(`El campo "password" es obligatorio`)
	}

	unlock, err := acquire(ctx, s.locker, lockUsers)
	if err != nil {
		return nil, err
	}
	defer unlock()

	if err := s.ensureEmailFree(ctx, email, "", "Ya existe un usuario activo con ese correo"); err != nil {
		return nil, err
	}

	hash, err := hashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	id, err := s.ids.Next(ctx, domain.CounterUser, domain.PrefixUser, domain.SequenceWidth)
	if err != nil {
		return nil, err
	}

	state := domain.StateDeleted
	if s.enableOnCreate {
		state = domain.StateActive
	}

	u := &domain.User{
		ID:           id,
		Name:         in.Name,
		Role:         in.Role,
		Avatar:       in.Avatar,
		Phone:        in.Phone,
		Email:        email,
		PasswordHash: hash,
		State:        state,
	}
	if err := s.repo.Save(ctx, u); err != nil {
		return nil, saveError(err, "Ya existe un usuario activo con ese correo", "Error al guardar el usuario.")
	}

	s.log.Info().Str("user_id", id).Str("state", string(state)).Msg("user created")
	return u, nil
}

func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.getActive(ctx, id)
}

// Update merges the sent fields over the stored user. An empty or missing
// password keeps the stored hash.
func (s *UserService) Update(ctx context.Context, id string, in ports.UpdateUserInput) (*domain.User, error) {
	unlock, err := acquire(ctx, s.locker, lockUsers)
	if err != nil {
		return nil, err
	}
	defer unlock()

	current, err := s.getActive(ctx, id)
	if err != nil {
		return nil, err
	}
	updated := *current

	if in.Email != nil && domain.FoldKey(*in.Email) != domain.FoldKey(current.Email) {
		if err := s.ensureEmailFree(ctx, *in.Email, id, "Ya existe un usuario activo con el nuevo correo electrónico proporcionado."); err != nil {
			return nil, err
		}
	}
	if in.Email != nil {
		updated.Email = strings.TrimSpace(*in.Email)
	}
	if in.Password != nil && *in.Password != "" {
		hash, err := hashPassword(*in.Password)
		if err != nil {
			return nil, err
		}
		updated.PasswordHash = hash
	}
	if in.Name != nil {
		updated.Name = *in.Name
	}
	if in.Role != nil {
		updated.Role = *in.Role
	}
	if in.Avatar != nil {
		updated.Avatar = *in.Avatar
	}
	if in.Phone != nil {
		updated.Phone = *in.Phone
	}

	if err := s.repo.Save(ctx, &updated); err != nil {
		return nil, saveError(err, "Ya existe un usuario activo con el nuevo correo electrónico proporcionado.", "Error al actualizar el usuario.")
	}
	s.log.Info().Str("user_id", id).Msg("user updated")
	return &updated, nil
}

func (s *UserService) SoftDelete(ctx context.Context, id string) error {
	if _, err := s.getActive(ctx, id); err != nil {
		return err
	}
	if err := s.repo.SetState(ctx, id, domain.StateDeleted); err != nil {
		return domain.ProviderError("Error al eliminar el usuario.", err)
	}
	s.log.Info().Str("user_id", id).Msg("user soft-deleted")
	return nil
}

// Login verifies the credentials of an enabled user.
func (s *UserService) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	if strings.TrimSpace(email) == "" || strings.TrimSpace(password) == "" {
		return nil, domain.Validation("Correo electrónico y contraseña son obligatorios.")
	}

	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ProviderError("Error al iniciar sesión.", err)
	}
	if u == nil || !u.State.IsActive() {
		return nil, domain.NewError(domain.ErrUnauthorized, "Usuario no habilitado.")
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		s.log.Info().Str("user_id", u.ID).Msg("login rejected")
		return nil, domain.NewError(domain.ErrUnauthorized, "Credenciales inválidas.")
	}

	res := &ports.LoginResult{User: u}
	if s.tokens != nil {
		token, err := s.tokens.Issue(u)
		if err != nil {
			return nil, domain.ProviderError("Error al iniciar sesión.", err)
		}
		res.Token = token
	}
	s.log.Info().Str("user_id", u.ID).Msg("login succeeded")
	return res, nil
}

func (s *UserService) getActive(ctx context.Context, id string) (*domain.User, error) {
	u, err := s.repo.Get(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.NotFound("Usuario no encontrado")
	}
	if err != nil {
		return nil, domain.ProviderError("Error al obtener el usuario.", err)
	}
	if !u.State.IsActive() {
		return nil, domain.NotFound("Usuario no encontrado")
	}
	return u, nil
}

func (s *UserService) ensureEmailFree(ctx context.Context, email, excludeID, msg string) error {
	taken, err := s.repo.ActiveEmailExists(ctx, email, excludeID)
	if err != nil {
		return domain.ProviderError("Error al validar el correo.", err)
	}
	if taken {
		return domain.Conflict(msg)
	}
	return nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", domain.Validation("La contraseña no puede superar 72 bytes.")
	}
	if err != nil {
		return "", domain.ProviderError("Error al procesar la contraseña.", err)
	}
	return string(hash), nil
}
