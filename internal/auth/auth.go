// Package auth implements credentials login and the JWT session tokens
// carried by admin requests.
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"ampedent/internal/database"
	"ampedent/internal/models"
)

// ErrInvalidCredentials is returned for unknown names and wrong
// passwords alike.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Claims are the session claims embedded in a token. The role is fixed
// at login time, the same way the original web sessions worked.
type Claims struct {
	Role models.Role `json:"role"`
	jwt.RegisteredClaims
}

// Service verifies credentials against the user store and issues and
// parses session tokens.
type Service struct {
	db     *database.DB
	secret []byte
	ttl    time.Duration
	logger zerolog.Logger
}

// NewService creates an auth service signing tokens with the given
// HMAC secret.
func NewService(db *database.DB, secret string, ttl time.Duration, logger zerolog.Logger) *Service {
	return &Service{
		db:     db,
		secret: []byte(secret),
		ttl:    ttl,
		logger: logger.With().Str("component", "auth").Logger(),
	}
}

// HashPassword hashes a plaintext password for storage.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// Login checks the credentials and returns a signed session token plus
// the account. Wrong name and wrong password are indistinguishable to
// the caller.
func (s *Service) Login(ctx context.Context, name, password string) (string, *models.User, error) {
	if name == "" || password == "" {
		return "", nil, ErrInvalidCredentials
	}

	user, err := s.db.GetUserByName(ctx, name)
	if errors.Is(err, database.ErrNotFound) {
		return "", nil, ErrInvalidCredentials
	}
	if err != nil {
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return "", nil, ErrInvalidCredentials
	}

	now := time.Now()
	claims := Claims{
		Role: user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Name,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", nil, fmt.Errorf("sign token: %w", err)
	}

	s.logger.Info().Str("user", user.Name).Msg("login")
	return token, user, nil
}

// ParseToken validates a bearer token and returns the session name and
// role.
func (s *Service) ParseToken(tokenStr string) (string, models.Role, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(tokenStr, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return s.secret, nil
	}, jwt.WithLeeway(5*time.Second))
	if err != nil {
		return "", models.RoleNone, err
	}
	return claims.Subject, claims.Role, nil
}
