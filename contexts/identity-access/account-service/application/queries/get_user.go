package queries

import (
	"context"
	"log/slog"
	"strings"

	"fundflow/contexts/identity-access/account-service/domain/entities"
	"fundflow/contexts/identity-access/account-service/ports"
)

type GetUserUseCase struct {
	Users  ports.UserRepository
	Logger *slog.Logger
}

func (uc GetUserUseCase) Execute(ctx context.Context, userID string) (entities.User, error) {
	return uc.Users.GetUserByID(ctx, strings.TrimSpace(userID))
}
