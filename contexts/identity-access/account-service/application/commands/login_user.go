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

type LoginUserCommand struct {
	Email    string
	Password string
}

type LoginResult struct {
	User  entities.User
	Token string
}

type LoginUserUseCase struct {
	Users  ports.UserRepository
	Hasher ports.PasswordHasher
	Tokens ports.TokenIssuer
	Clock  ports.Clock
	Logger *slog.Logger
}

// credentialMismatch is deliberately identical for unknown email and wrong
// password, so the response does not reveal which accounts exist.
func credentialMismatch() error {
	return validation.NewError().
		Add("email", "These credentials do not match our records.").
		Err()
}

func (uc LoginUserUseCase) Execute(ctx context.Context, cmd LoginUserCommand) (LoginResult, error) {
	logger := application.ResolveLogger(uc.Logger)

	v := validation.NewError()
	if strings.TrimSpace(cmd.Email) == "" {
		v.Add("email", "The email field is required.")
	}
	if cmd.Password == "" {
		v.Add("password", "The password field is required.")
	}
	if err := v.Err(); err != nil {
		return LoginResult{}, err
	}

	user, err := uc.Users.GetUserByEmail(ctx, entities.NormalizeEmail(cmd.Email))
	if err != nil {
		if errors.Is(err, domainerrors.ErrUserNotFound) {
			return LoginResult{}, credentialMismatch()
		}
		return LoginResult{}, err
	}
	if err := uc.Hasher.Compare(user.PasswordHash, cmd.Password); err != nil {
		return LoginResult{}, credentialMismatch()
	}

	token, err := uc.Tokens.Issue(user.UserID, uc.Clock.Now().UTC())
	if err != nil {
		return LoginResult{}, err
	}

	logger.Info("user logged in",
		"event", "user_logged_in",
		"module", "identity-access/account-service",
		"layer", "application",
		"user_id", user.UserID,
	)
	return LoginResult{User: user, Token: token}, nil
}
