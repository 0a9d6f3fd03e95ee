package token

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	domainerrors "fundflow/contexts/identity-access/account-service/domain/errors"
)

// JWTIssuer signs HS256 bearer tokens whose subject is the user id.
type JWTIssuer struct {
	Secret []byte
	TTL    time.Duration
}

func (i JWTIssuer) Issue(userID string, issuedAt time.Time) (string, error) {
	ttl := i.TTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(issuedAt.Add(ttl)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.Secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

func (i JWTIssuer) Resolve(token string) (string, error) {
	parsed, err := jwt.ParseWithClaims(
		strings.TrimSpace(token),
		&jwt.RegisteredClaims{},
		func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
			}
			return i.Secret, nil
		},
	)
	if err != nil || !parsed.Valid {
		return "", domainerrors.ErrUnauthenticated
	}
	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || strings.TrimSpace(claims.Subject) == "" {
		return "", domainerrors.ErrUnauthenticated
	}
	return claims.Subject, nil
}
