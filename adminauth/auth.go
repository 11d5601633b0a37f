// Package adminauth authenticates the single administrative credential
// that guards the mutating HTTP endpoints (creating tournaments, posting
// scores). There is no user table: an operator holds one shared key,
// checked against a bcrypt hash from configuration.
package adminauth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned by Login when key does not match the
// configured admin hash.
var ErrInvalidCredentials = errors.New("adminauth: invalid credentials")

// Claims is the JWT payload issued on a successful Login.
type Claims struct {
	IsAdmin bool `json:"is_admin"`
	jwt.RegisteredClaims
}

// Authenticator checks the admin key and issues/verifies JWTs signed with
// a secret supplied at construction time, never read from the environment
// directly (that belongs to config).
type Authenticator struct {
	adminKeyHash []byte
	jwtSecret    []byte
	ttl          time.Duration
}

func NewAuthenticator(adminKeyHash, jwtSecret string) *Authenticator {
	return &Authenticator{
		adminKeyHash: []byte(adminKeyHash),
		jwtSecret:    []byte(jwtSecret),
		ttl:          24 * time.Hour,
	}
}

// Login compares key against the configured admin hash and, on success,
// returns a signed JWT good for 24 hours.
func (a *Authenticator) Login(key string) (string, error) {
	if err := bcrypt.CompareHashAndPassword(a.adminKeyHash, []byte(key)); err != nil {
		return "", ErrInvalidCredentials
	}

	claims := &Claims{
		IsAdmin: true,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(a.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(a.jwtSecret)
}

// ParseJWT validates token and returns its claims.
func (a *Authenticator) ParseJWT(token string) (*Claims, error) {
	claims := new(Claims)
	t, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return a.jwtSecret, nil
	})
	if err != nil {
		return nil, err
	}
	if !t.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
