package encrypter

// IEncrypter encrypts PII columns (emails, push tokens) at rest.
type IEncrypter interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(ciphertext string) (string, error)
}

type implEncrypter struct {
	key string
}

// New returns an AES-GCM encrypter using the given key.
// The key must be 16, 24, or 32 bytes long.
func New(key string) IEncrypter {
	return implEncrypter{key: key}
}
