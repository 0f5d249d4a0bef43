package jwt

import "time"

// Manager issues and verifies service session tokens.
type Manager interface {
	Generate(userID, name string) (string, error)
	Verify(tokenString string) (*Payload, error)
}

// NewManager builds an HS256 token manager.
func NewManager(secretKey, issuer string, ttl time.Duration) Manager {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &managerImpl{
		secretKey: []byte(secretKey),
		issuer:    issuer,
		ttl:       ttl,
	}
}
