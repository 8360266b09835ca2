package utils

import (
	"github.com/matthewhartstonge/argon2"
)

// hashConfig is built once and shared; argon2.Config only holds parameters,
// each hash draws its own salt.
var hashConfig = argon2.DefaultConfig()

// HashPassword derives an argon2id encoded hash suitable for storage.
func HashPassword(password string) (string, error) {
	encoded, err := hashConfig.HashEncoded([]byte(password))
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}

// VerifyPassword checks password against a stored encoded hash. A wrong
// password yields (false, nil); err is reserved for malformed hashes.
func VerifyPassword(encodedHash, password string) (bool, error) {
	return argon2.VerifyEncoded([]byte(password), []byte(encodedHash))
}
