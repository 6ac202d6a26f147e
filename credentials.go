// credentials.go
// --------------
// Credential implementations: static API keys, oauth2 token sources, and
// signed service-account tokens. A Credential only produces the value of
// the Authorization header; it never sees the rest of the request.
package questdeck

import (
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/oauth2"
)

// Credential supplies the Authorization header value for each request.
type Credential interface {
	AuthorizationHeader() (string, error)
}

type apiKeyCredential struct {
	key string
}

// APIKey authenticates with a static bearer key.
func APIKey(key string) Credential {
	return &apiKeyCredential{key: key}
}

func (c *apiKeyCredential) AuthorizationHeader() (string, error) {
	return "Bearer " + c.key, nil
}

type tokenSourceCredential struct {
	src oauth2.TokenSource
}

// TokenSource adapts an oauth2.TokenSource, so any oauth2 flow (client
// credentials, refresh tokens, cached sources) can authenticate the client.
func TokenSource(src oauth2.TokenSource) Credential {
	return &tokenSourceCredential{src: src}
}

func (c *tokenSourceCredential) AuthorizationHeader() (string, error) {
	tok, err := c.src.Token()
	if err != nil {
		return "", err
	}
	return tok.Type() + " " + tok.AccessToken, nil
}

const (
	serviceAccountTokenTTL = 5 * time.Minute
	tokenRefreshSlack      = 30 * time.Second
)

type serviceAccountCredential struct {
	issuer string
	keyID  string
	secret []byte

	mu     sync.Mutex
	token  string
	expiry time.Time
}

// ServiceAccount authenticates as a server-to-server integration: each
// request carries a short-lived HS256 token signed with the account secret,
// refreshed shortly before expiry.
func ServiceAccount(issuer, keyID string, secret []byte) Credential {
	return &serviceAccountCredential{issuer: issuer, keyID: keyID, secret: secret}
}

func (c *serviceAccountCredential) AuthorizationHeader() (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != "" && time.Until(c.expiry) > tokenRefreshSlack {
		return "Bearer " + c.token, nil
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Issuer:    c.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(serviceAccountTokenTTL)),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tok.Header["kid"] = c.keyID

	signed, err := tok.SignedString(c.secret)
	if err != nil {
		return "", err
	}

	c.token = signed
	c.expiry = now.Add(serviceAccountTokenTTL)
	return "Bearer " + signed, nil
}
