package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"fundflow/contexts/identity-access/account-service/domain/entities"
	domainerrors "fundflow/contexts/identity-access/account-service/domain/errors"

	"github.com/google/uuid"
)

type Store struct {
	mu         sync.RWMutex
	usersByID  map[string]entities.User
	idsByEmail map[string]string
}

func NewStore() *Store {
	return &Store{
		usersByID:  make(map[string]entities.User),
		idsByEmail: make(map[string]string),
	}
}

func (s *Store) CreateUser(_ context.Context, user entities.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	email := entities.NormalizeEmail(user.Email)
	if _, exists := s.idsByEmail[email]; exists {
		return domainerrors.ErrEmailTaken
	}
	s.usersByID[user.UserID] = user
	s.idsByEmail[email] = user.UserID
	return nil
}

func (s *Store) GetUserByEmail(_ context.Context, email string) (entities.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	userID, exists := s.idsByEmail[entities.NormalizeEmail(email)]
	if !exists {
		return entities.User{}, domainerrors.ErrUserNotFound
	}
	return s.usersByID[userID], nil
}

func (s *Store) GetUserByID(_ context.Context, userID string) (entities.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, exists := s.usersByID[strings.TrimSpace(userID)]
	if !exists {
		return entities.User{}, domainerrors.ErrUserNotFound
	}
	return user, nil
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}
