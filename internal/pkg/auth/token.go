package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Role identifies which principal table a token subject belongs to.
// Customer id 5 and employee id 5 are unrelated identities.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleEmployee Role = "employee"
)

var (
	ErrMalformed         = errors.New("token is malformed")
	ErrInvalidSignature  = errors.New("token signature is invalid")
	ErrExpired           = errors.New("token is expired")
	ErrUnknownRole       = errors.New("unknown role")
	ErrPrincipalNotFound = errors.New("principal not found")
)

// ParseRole validates a role string against the closed role set.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleCustomer, RoleEmployee:
		return Role(s), nil
	default:
		return "", ErrUnknownRole
	}
}

// Claims is the single claim contract shared by issuance and verification.
// The subject id always travels as a string in the registered "sub" claim,
// even though the backing stores key on integers.
type Claims struct {
	jwt.RegisteredClaims
	Role Role `json:"role"`
}

const DefaultAccessTokenTTL = 30 * time.Minute

type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = DefaultAccessTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token for the given subject and role. An optional ttl
// overrides the service default.
func (s *TokenService) Issue(subjectID string, role Role, ttl ...time.Duration) (string, error) {
	if _, err := ParseRole(string(role)); err != nil {
		return "", err
	}

	// An explicit override always wins, including non-positive values,
	// which produce an already-expired token.
	expiry := s.ttl
	if len(ttl) > 0 {
		expiry = ttl[0]
	}

	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subjectID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
		},
		Role: role,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify checks signature and expiry and returns the decoded claims.
// Failures are reported as sentinel errors, never panics.
func (s *TokenService) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidSignature
		}
		return s.secret, nil
	}, jwt.WithExpirationRequired())
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, ErrInvalidSignature
		default:
			return nil, ErrMalformed
		}
	}
	if !token.Valid {
		return nil, ErrInvalidSignature
	}

	if claims.Subject == "" {
		return nil, ErrMalformed
	}
	if _, err := ParseRole(string(claims.Role)); err != nil {
		return nil, ErrMalformed
	}

	return claims, nil
}
