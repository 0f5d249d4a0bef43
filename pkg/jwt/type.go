package jwt

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the service identity inside a signed token.
type Claims struct {
	Name string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// Payload is the verified identity handlers read from the request context.
type Payload struct {
	UserID string
	Name   string
	JTI    string
}

type managerImpl struct {
	secretKey []byte
	issuer    string
	ttl       time.Duration
}
