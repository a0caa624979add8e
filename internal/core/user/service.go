package user

import (
	"context"
	"log/slog"

	"github.com/dgcastell/musica/internal/platform/validate"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (service *Service) ListUsers(context context.Context, limit, offset int) ([]*User, int, error) {
	return service.repo.ListUsers(context, limit, offset)
}

func (service *Service) GetUser(context context.Context, id int) (*User, error) {
	return service.repo.GetUser(context, id)
}

func (service *Service) CreateUser(context context.Context, user *User) error {
	validator := &validate.Validator{}
	validator.Required(FieldNombre, user.Nombre).MaxLen(FieldNombre, user.Nombre, 200)
	validator.Required(FieldCorreo, user.Correo)
	if !validator.HasErrors() {
		validator.Email(FieldCorreo, user.Correo)
	}

	if err := validator.Err(); err != nil {
		return err
	}

	// Friendly pre-check; the unique constraint remains the final arbiter.
	taken, err := service.repo.CorreoInUse(context, user.Correo)
	if err != nil {
		return err
	}
	if taken {
		return ErrCorreoRegistered
	}

	if err := service.repo.CreateUser(context, user); err != nil {
		return err
	}

	service.logger.Info("user_created", slog.Int("user_id", user.ID))
	return nil
}

// UpdateUser applies a sparse patch: fields absent from the input keep
// their stored value. Correo uniqueness is re-checked only when it changes.
func (service *Service) UpdateUser(context context.Context, id int, patch *Patch) (*User, error) {
	user, err := service.repo.GetUser(context, id)
	if err != nil {
		return nil, err
	}

	correoChanged := patch.Correo != nil && *patch.Correo != user.Correo

	if patch.Nombre != nil {
		user.Nombre = *patch.Nombre
	}
	if patch.Correo != nil {
		user.Correo = *patch.Correo
	}

	validator := &validate.Validator{}
	validator.Required(FieldNombre, user.Nombre).MaxLen(FieldNombre, user.Nombre, 200)
	validator.Required(FieldCorreo, user.Correo)
	if !validator.HasErrors() {
		validator.Email(FieldCorreo, user.Correo)
	}

	if err := validator.Err(); err != nil {
		return nil, err
	}

	if correoChanged {
		taken, err := service.repo.CorreoInUse(context, user.Correo)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrCorreoRegistered
		}
	}

	if err := service.repo.UpdateUser(context, user); err != nil {
		return nil, err
	}

	service.logger.Info("user_updated", slog.Int("user_id", user.ID))
	return user, nil
}

func (service *Service) DeleteUser(context context.Context, id int) error {
	if err := service.repo.DeleteUser(context, id); err != nil {
		return err
	}

	service.logger.Warn("user_deleted", slog.Int("user_id", id))
	return nil
}
