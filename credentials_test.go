package questdeck

import (
	"testing"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func TestAPIKeyCredential(t *testing.T) {
	v, err := APIKey("abc123").AuthorizationHeader()
	require.NoError(t, err)
	assert.Equal(t, "Bearer abc123", v)
}

func TestTokenSourceCredential(t *testing.T) {
	src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: "tok", TokenType: "Bearer"})
	v, err := TokenSource(src).AuthorizationHeader()
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok", v)
}

func TestServiceAccountCredentialSignsJWT(t *testing.T) {
	secret := []byte("super-secret")
	cred := ServiceAccount("svc@acme", "key-1", secret)

	v, err := cred.AuthorizationHeader()
	require.NoError(t, err)
	require.True(t, len(v) > len("Bearer "))
	raw := v[len("Bearer "):]

	tok, err := jwt.ParseWithClaims(raw, &jwt.RegisteredClaims{}, func(tok *jwt.Token) (any, error) {
		return secret, nil
	})
	require.NoError(t, err)
	require.True(t, tok.Valid)

	claims := tok.Claims.(*jwt.RegisteredClaims)
	assert.Equal(t, "svc@acme", claims.Issuer)
	assert.Equal(t, "key-1", tok.Header["kid"])
	require.NotNil(t, claims.ExpiresAt)
	assert.True(t, claims.ExpiresAt.After(claims.IssuedAt.Time))
}

func TestServiceAccountCredentialCachesToken(t *testing.T) {
	cred := ServiceAccount("svc@acme", "key-1", []byte("s"))
	a, err := cred.AuthorizationHeader()
	require.NoError(t, err)
	b, err := cred.AuthorizationHeader()
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
