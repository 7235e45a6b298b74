package models

import (
	"time"

	"github.com/gocql/gocql"
)

// Customer porte le hash du mot de passe et la liste des tokens de session
// actifs (du plus récent au plus ancien). Ces deux champs ne sortent jamais
// en JSON.
type Customer struct {
	ID        gocql.UUID `json:"id"`
	Email     string     `json:"email"`
	Password  string     `json:"-"`
	Sessions  []string   `json:"-"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

// PublicView retourne la représentation sans champs sensibles. Règle dure :
// aucune représentation sortante ne contient le hash ni les sessions.
func (c Customer) PublicView() Customer {
	c.Password = ""
	c.Sessions = nil
	return c
}
