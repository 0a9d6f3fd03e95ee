package errors

import "errors"

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrEmailTaken      = errors.New("email already taken")
	ErrUnauthenticated = errors.New("unauthenticated")
)
