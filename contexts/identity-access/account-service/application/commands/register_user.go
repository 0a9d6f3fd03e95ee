package commands

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	application "fundflow/contexts/identity-access/account-service/application"
	"fundflow/contexts/identity-access/account-service/domain/entities"
	domainerrors "fundflow/contexts/identity-access/account-service/domain/errors"
	"fundflow/contexts/identity-access/account-service/ports"
	"fundflow/internal/shared/validation"
)

type RegisterUserCommand struct {
	Name     string
	Email    string
	Password string
}

type RegisterUserUseCase struct {
	Users       ports.UserRepository
	Hasher      ports.PasswordHasher
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

func (uc RegisterUserUseCase) Execute(ctx context.Context, cmd RegisterUserCommand) (entities.User, error) {
	logger := application.ResolveLogger(uc.Logger)

	v := validation.NewError()
	if strings.TrimSpace(cmd.Name) == "" {
		v.Add("name", "The name field is required.")
	} else if !entities.ValidName(cmd.Name) {
		v.Add("name", "The name may not be greater than 255 characters.")
	}
	if strings.TrimSpace(cmd.Email) == "" {
		v.Add("email", "The email field is required.")
	} else if !entities.ValidEmail(cmd.Email) {
		v.Add("email", "The email must be a valid email address.")
	}
	if cmd.Password == "" {
		v.Add("password", "The password field is required.")
	} else if !entities.ValidPassword(cmd.Password) {
		v.Add("password", "The password must be at least 8 characters.")
	}
	if err := v.Err(); err != nil {
		return entities.User{}, err
	}

	hash, err := uc.Hasher.Hash(cmd.Password)
	if err != nil {
		return entities.User{}, err
	}
	userID, err := uc.IDGenerator.NewID(ctx)
	if err != nil {
		return entities.User{}, err
	}

	now := uc.Clock.Now().UTC()
	user := entities.User{
		UserID:       userID,
		Name:         strings.TrimSpace(cmd.Name),
		Email:        entities.NormalizeEmail(cmd.Email),
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.Users.CreateUser(ctx, user); err != nil {
		if errors.Is(err, domainerrors.ErrEmailTaken) {
			return entities.User{}, validation.NewError().
				Add("email", "The email has already been taken.").
				Err()
		}
		return entities.User{}, err
	}

	logger.Info("user registered",
		"event", "user_registered",
		"module", "identity-access/account-service",
		"layer", "application",
		"user_id", user.UserID,
	)
	return user, nil
}
