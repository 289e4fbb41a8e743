package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/agrosense/croprec-server/internal/model"
)

// Claims represents session token claims carrying the user email.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

// JWT implements SessionManager backed by symmetric HMAC. The signed token
// is the cookie value, so the session survives only as long as the claims
// validate against the configured secret.
type JWT struct {
	secretKey string
	ttl       time.Duration
}

// NewJWT creates a new JWT session manager with the provided secret key and
// session lifetime.
func NewJWT(secretKey string, ttl time.Duration) model.SessionManager {
	return &JWT{secretKey: secretKey, ttl: ttl}
}

// Issue creates a signed session token for the given user email.
func (j *JWT) Issue(email string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.ttl)),
		},
		Email: email,
	})

	tokenString, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}

	return tokenString, nil
}

// Parse validates a session token and extracts the user email.
func (j *JWT) Parse(tokenString string) (string, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signing method %v", t.Header["alg"])
		}
		return []byte(j.secretKey), nil
	})
	if err != nil {
		return "", fmt.Errorf("failed to parse session token: %w", err)
	}
	if !token.Valid {
		return "", fmt.Errorf("session token is invalid")
	}
	if claims.Email == "" {
		return "", fmt.Errorf("session token has no email claim")
	}
	return claims.Email, nil
}
