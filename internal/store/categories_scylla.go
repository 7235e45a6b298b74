package store

import (
	"context"
	"time"

	"boutique_back_end/internal/models"

	"github.com/gocql/gocql"
)

// ScyllaCategoryStore implémente CategoryStore sur ScyllaDB. Les lignes sont
// plates (parent_id auto-référent), l'imbrication est faite par le package
// catalog au moment de la lecture.
type ScyllaCategoryStore struct {
	session *gocql.Session
}

func NewScyllaCategoryStore(session *gocql.Session) *ScyllaCategoryStore {
	return &ScyllaCategoryStore{session: session}
}

func (s *ScyllaCategoryStore) FindAll(ctx context.Context) ([]models.Category, error) {
	iter := s.session.Query(`SELECT category_id, name, parent_id, description, image_url, created_at
		FROM categories`).
		WithContext(ctx).
		Iter()

	var categories []models.Category
	var c models.Category
	var parentID gocql.UUID
	var createdAt time.Time

	for iter.Scan(&c.ID, &c.Name, &parentID, &c.Description, &c.ImageURL, &createdAt) {
		row := c
		// Scylla rend un UUID zéro pour une colonne null
		if parentID != (gocql.UUID{}) {
			p := parentID
			row.ParentID = &p
		}
		if !createdAt.IsZero() {
			t := createdAt
			row.CreatedAt = &t
		}
		categories = append(categories, row)
		parentID = gocql.UUID{}
		createdAt = time.Time{}
	}
	if err := iter.Close(); err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *ScyllaCategoryStore) FindByID(ctx context.Context, id gocql.UUID) (*models.Category, error) {
	var c models.Category
	var parentID gocql.UUID
	var createdAt time.Time

	err := s.session.Query(`SELECT category_id, name, parent_id, description, image_url, created_at
		FROM categories WHERE category_id = ?`, id).
		WithContext(ctx).
		Scan(&c.ID, &c.Name, &parentID, &c.Description, &c.ImageURL, &createdAt)
	if err == gocql.ErrNotFound {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if parentID != (gocql.UUID{}) {
		c.ParentID = &parentID
	}
	if !createdAt.IsZero() {
		c.CreatedAt = &createdAt
	}
	return &c, nil
}

func (s *ScyllaCategoryStore) Create(ctx context.Context, category *models.Category) error {
	return s.session.Query(`INSERT INTO categories (category_id, name, parent_id, description, image_url, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		category.ID, category.Name, category.ParentID, category.Description, category.ImageURL, category.CreatedAt).
		WithContext(ctx).
		Exec()
}

func (s *ScyllaCategoryStore) Update(ctx context.Context, category *models.Category) error {
	return s.session.Query(`UPDATE categories SET name = ?, parent_id = ?, description = ?, image_url = ?
		WHERE category_id = ?`,
		category.Name, category.ParentID, category.Description, category.ImageURL, category.ID).
		WithContext(ctx).
		Exec()
}

func (s *ScyllaCategoryStore) Delete(ctx context.Context, id gocql.UUID) error {
	return s.session.Query(`DELETE FROM categories WHERE category_id = ?`, id).
		WithContext(ctx).
		Exec()
}
