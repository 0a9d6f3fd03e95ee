package ports

import (
	"context"
	"time"

	"fundflow/contexts/identity-access/account-service/domain/entities"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user entities.User) error
	GetUserByEmail(ctx context.Context, email string) (entities.User, error)
	GetUserByID(ctx context.Context, userID string) (entities.User, error)
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash string, password string) error
}

// TokenIssuer mints and resolves bearer credentials. Tokens are stateless;
// logout is a client-side drop.
type TokenIssuer interface {
	Issue(userID string, issuedAt time.Time) (string, error)
	Resolve(token string) (string, error)
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}
