package token

import (
	"errors"
	"testing"
	"time"

	domainerrors "fundflow/contexts/identity-access/account-service/domain/errors"
)

func TestIssueAndResolveRoundTrip(t *testing.T) {
	issuer := JWTIssuer{Secret: []byte("test-secret"), TTL: time.Hour}
	signed, err := issuer.Issue("user-1", time.Now().UTC())
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	subject, err := issuer.Resolve(signed)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if subject != "user-1" {
		t.Fatalf("unexpected subject %q", subject)
	}
}

func TestResolveRejectsWrongSecret(t *testing.T) {
	signed, err := JWTIssuer{Secret: []byte("secret-a"), TTL: time.Hour}.Issue("user-1", time.Now().UTC())
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	_, err = JWTIssuer{Secret: []byte("secret-b"), TTL: time.Hour}.Resolve(signed)
	if !errors.Is(err, domainerrors.ErrUnauthenticated) {
		t.Fatalf("expected unauthenticated, got %v", err)
	}
}

func TestResolveRejectsExpiredToken(t *testing.T) {
	issuer := JWTIssuer{Secret: []byte("test-secret"), TTL: time.Minute}
	signed, err := issuer.Issue("user-1", time.Now().UTC().Add(-time.Hour))
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	if _, err := issuer.Resolve(signed); !errors.Is(err, domainerrors.ErrUnauthenticated) {
		t.Fatalf("expected unauthenticated, got %v", err)
	}
}

func TestResolveRejectsGarbage(t *testing.T) {
	issuer := JWTIssuer{Secret: []byte("test-secret"), TTL: time.Hour}
	if _, err := issuer.Resolve("not-a-token"); !errors.Is(err, domainerrors.ErrUnauthenticated) {
		t.Fatalf("expected unauthenticated, got %v", err)
	}
}
