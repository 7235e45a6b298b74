package session

import (
	"context"
	"errors"
)

var (
	// ErrNotFound : aucun payload pour ce token (expiré ou inconnu)
	ErrNotFound = errors.New("session: token inconnu")

	// ErrStoreUnavailable : le store de sessions est injoignable. À ne jamais
	// confondre avec "non authentifié" côté appelant.
	ErrStoreUnavailable = errors.New("session: store injoignable")
)

// Payload est la valeur stockée sous chaque token
type Payload struct {
	CustomerID string `json:"customerId"`
}

// Store stocke les sessions par token opaque. Chaque entrée est indépendante :
// l'atomicité par clé suffit, aucune transaction multi-clés n'est requise.
type Store interface {
	// Set écrase toute valeur existante sous ce token
	Set(ctx context.Context, token string, payload Payload) error

	// Get retourne ErrNotFound si le token est absent
	Get(ctx context.Context, token string) (Payload, error)

	// Delete est un no-op si le token est absent
	Delete(ctx context.Context, token string) error
}
