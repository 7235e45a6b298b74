package models

import (
	"time"

	"github.com/gocql/gocql"
)

type Category struct {
	ID          gocql.UUID  `json:"id"`
	Name        string      `json:"name"`
	ParentID    *gocql.UUID `json:"parent_id"`
	Description string      `json:"description,omitempty"`
	ImageURL    string      `json:"image,omitempty"`
	CreatedAt   *time.Time  `json:"created_at,omitempty"`
}

// CategoryNode est une catégorie avec ses enfants imbriqués, construite à la
// volée pour les réponses API, jamais persistée. Children reste nil (et donc
// absent du JSON) quand la catégorie n'a aucun descendant.
type CategoryNode struct {
	Category
	Children []*CategoryNode `json:"children,omitempty"`
}
