package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWT_IssueAndParse(t *testing.T) {
	m := NewJWT("secret", time.Hour)

	tokenString, err := m.Issue("user@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	email, err := m.Parse(tokenString)
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", email)
}

func TestJWT_Parse_WrongSecret(t *testing.T) {
	issuer := NewJWT("secret-a", time.Hour)
	parser := NewJWT("secret-b", time.Hour)

	tokenString, err := issuer.Issue("user@example.com")
	require.NoError(t, err)

	_, err = parser.Parse(tokenString)
	require.Error(t, err)
}

func TestJWT_Parse_Expired(t *testing.T) {
	m := NewJWT("secret", -time.Minute)

	tokenString, err := m.Issue("user@example.com")
	require.NoError(t, err)

	_, err = m.Parse(tokenString)
	require.Error(t, err)
}

func TestJWT_Parse_Garbage(t *testing.T) {
	m := NewJWT("secret", time.Hour)

	_, err := m.Parse("not-a-token")
	require.Error(t, err)
}

func TestJWT_Parse_MissingEmailClaim(t *testing.T) {
	now := time.Now()
	raw := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	})
	tokenString, err := raw.SignedString([]byte("secret"))
	require.NoError(t, err)

	m := NewJWT("secret", time.Hour)
	_, err = m.Parse(tokenString)
	require.Error(t, err)
}

func TestJWT_Parse_WrongSigningMethod(t *testing.T) {
	raw := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{Email: "user@example.com"})
	tokenString, err := raw.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	m := NewJWT("secret", time.Hour)
	_, err = m.Parse(tokenString)
	require.Error(t, err)
}
