package utils

import (
	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher encapsule le hachage bcrypt avec un coût fixé à la
// construction. Sans état mutable, partageable entre toutes les requêtes.
type PasswordHasher struct {
	cost int
}

func NewPasswordHasher(cost int) *PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &PasswordHasher{cost: cost}
}

// Hash retourne le digest bcrypt (salé) du mot de passe en clair
func (h *PasswordHasher) Hash(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify compare un digest et un mot de passe en clair. bcrypt fait la
// comparaison en temps constant, aucun raccourci possible.
func (h *PasswordHasher) Verify(digest, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
