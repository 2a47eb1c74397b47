// Package token issues and verifies the signed identity tokens used to
// authenticate requests without a server-side session store.
package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/8180e/personal-finance-dashboard/internal/apierr"
	"github.com/8180e/personal-finance-dashboard/internal/models"
)

// Tokens are valid for a fixed window from issuance.
const validity = 24 * time.Hour

// errInvalidToken is returned for every verification failure. Bad signature,
// malformed token, lapsed expiry and missing claims are deliberately
// indistinguishable to the caller.
var errInvalidToken = apierr.Unauthorizedf("Invalid or expired token")

// Claims is the JWT payload: the full public user plus standard
// issued-at/expiry fields.
type Claims struct {
	UserID string `json:"userId"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// Service signs and verifies identity tokens with a process-wide secret,
// loaded once at startup and passed in explicitly.
type Service struct {
	secret []byte
	now    func() time.Time
}

func NewService(secret string) *Service {
	return &Service{secret: []byte(secret), now: time.Now}
}

// Issue produces a signed token embedding the user's public representation.
func (s *Service) Issue(user models.PublicUser) (string, error) {
	now := s.now().UTC()
	claims := Claims{
		UserID: user.ID,
		Name:   user.Name,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validity)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", err
	}
	return signed, nil
}

// Verify validates the token's signature and expiry and recovers the
// embedded public user. Tokens missing required fields are rejected.
func (s *Service) Verify(tokenString string) (models.PublicUser, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now))
	if err != nil || !token.Valid {
		return models.PublicUser{}, errInvalidToken
	}
	if claims.UserID == "" || claims.Email == "" || claims.ExpiresAt == nil {
		return models.PublicUser{}, errInvalidToken
	}
	return models.PublicUser{ID: claims.UserID, Name: claims.Name, Email: claims.Email}, nil
}
