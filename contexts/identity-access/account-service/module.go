package accountservice

import (
	"log/slog"
	"time"

	httpadapter "fundflow/contexts/identity-access/account-service/adapters/http"
	"fundflow/contexts/identity-access/account-service/adapters/memory"
	"fundflow/contexts/identity-access/account-service/adapters/token"
	"fundflow/contexts/identity-access/account-service/application/commands"
	"fundflow/contexts/identity-access/account-service/application/queries"
	"fundflow/contexts/identity-access/account-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

type Dependencies struct {
	Users       ports.UserRepository
	Hasher      ports.PasswordHasher
	Tokens      ports.TokenIssuer
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

func NewModule(deps Dependencies) Module {
	registerUser := commands.RegisterUserUseCase{
		Users:       deps.Users,
		Hasher:      deps.Hasher,
		Clock:       deps.Clock,
		IDGenerator: deps.IDGenerator,
		Logger:      deps.Logger,
	}
	loginUser := commands.LoginUserUseCase{
		Users:  deps.Users,
		Hasher: deps.Hasher,
		Tokens: deps.Tokens,
		Clock:  deps.Clock,
		Logger: deps.Logger,
	}
	getUser := queries.GetUserUseCase{
		Users:  deps.Users,
		Logger: deps.Logger,
	}

	return Module{
		Handler: httpadapter.Handler{
			RegisterUser: registerUser,
			LoginUser:    loginUser,
			GetUser:      getUser,
			Tokens:       deps.Tokens,
			Logger:       deps.Logger,
		},
	}
}

func NewInMemoryModule(secret string, logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Users:       store,
		Hasher:      token.BcryptHasher{},
		Tokens:      token.JWTIssuer{Secret: []byte(secret), TTL: 24 * time.Hour},
		Clock:       store,
		IDGenerator: store,
		Logger:      logger,
	})
	module.Store = store
	return module
}
