package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"fundflow/contexts/identity-access/account-service/application/commands"
	"fundflow/contexts/identity-access/account-service/application/queries"
	"fundflow/contexts/identity-access/account-service/domain/entities"
	"fundflow/contexts/identity-access/account-service/ports"
	httptransport "fundflow/contexts/identity-access/account-service/transport/http"
)

type Handler struct {
	RegisterUser commands.RegisterUserUseCase
	LoginUser    commands.LoginUserUseCase
	GetUser      queries.GetUserUseCase
	Tokens       ports.TokenIssuer
	Logger       *slog.Logger
}

func (h Handler) RegisterHandler(
	ctx context.Context,
	req httptransport.RegisterRequest,
) (httptransport.UserResponse, error) {
	user, err := h.RegisterUser.Execute(ctx, commands.RegisterUserCommand{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return httptransport.UserResponse{}, err
	}
	return httptransport.UserResponse{Data: mapUser(user)}, nil
}

func (h Handler) LoginHandler(
	ctx context.Context,
	req httptransport.LoginRequest,
) (httptransport.LoginResponse, error) {
	result, err := h.LoginUser.Execute(ctx, commands.LoginUserCommand{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return httptransport.LoginResponse{}, err
	}
	return httptransport.LoginResponse{Token: result.Token}, nil
}

func (h Handler) GetUserHandler(ctx context.Context, userID string) (httptransport.UserResponse, error) {
	user, err := h.GetUser.Execute(ctx, userID)
	if err != nil {
		return httptransport.UserResponse{}, err
	}
	return httptransport.UserResponse{Data: mapUser(user)}, nil
}

// ResolveToken maps a bearer token to a principal id for the server's auth
// middleware.
func (h Handler) ResolveToken(token string) (string, error) {
	return h.Tokens.Resolve(token)
}

func mapUser(user entities.User) httptransport.UserDTO {
	return httptransport.UserDTO{
		ID:        user.UserID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: user.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
