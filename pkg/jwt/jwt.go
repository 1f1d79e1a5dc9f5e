// Package jwt provides JWT token generation and validation.
package jwt

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidToken indicates the token failed parsing or signature checks.
	ErrInvalidToken = errors.New("jwt: invalid token")

	// ErrExpiredToken indicates the token is past its expiry.
	ErrExpiredToken = errors.New("jwt: token expired")
)

// Claims represents the claims carried by issued tokens.
type Claims struct {
	UserID int64  `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Manager handles JWT operations.
type Manager struct {
	secret      []byte
	issuer      string
	tokenExpiry time.Duration
	shortExpiry time.Duration
}

// Config holds JWT manager configuration.
type Config struct {
	Secret           string
	Issuer           string
	TokenExpiry      time.Duration // Default: 1 hour
	ShortTokenExpiry time.Duration // Default: 15 minutes
}

// NewManager creates a new JWT manager.
func NewManager(cfg *Config) *Manager {
	tokenExpiry := cfg.TokenExpiry
	if tokenExpiry == 0 {
		tokenExpiry = time.Hour
	}
	shortExpiry := cfg.ShortTokenExpiry
	if shortExpiry == 0 {
		shortExpiry = 15 * time.Minute
	}
	return &Manager{
		secret:      []byte(cfg.Secret),
		issuer:      cfg.Issuer,
		tokenExpiry: tokenExpiry,
		shortExpiry: shortExpiry,
	}
}

// GenerateToken generates a bearer token with the standard expiry.
func (m *Manager) GenerateToken(userID int64, email, role string) (string, error) {
	return m.generate(userID, email, role, m.tokenExpiry)
}

// GenerateShortLivedToken generates a bearer token with the short expiry,
// used for flows like email verification.
func (m *Manager) GenerateShortLivedToken(userID int64, email, role string) (string, error) {
	return m.generate(userID, email, role, m.shortExpiry)
}

func (m *Manager) generate(userID int64, email, role string, expiry time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: userID,
		Email:  email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.issuer,
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// ValidateToken parses and validates a bearer token.
func (m *Manager) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// Expiry returns the standard token lifetime.
func (m *Manager) Expiry() time.Duration {
	return m.tokenExpiry
}
