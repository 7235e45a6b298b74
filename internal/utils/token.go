package utils

import (
	"crypto/rand"
	"encoding/base64"
)

// GenerateSessionToken génère un token de session opaque : 32 octets
// aléatoires encodés en base64url, sans aucune structure interne. Le token
// ne sert que de clé de lookup dans le store de sessions.
func GenerateSessionToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
