package store

import (
	"context"
	"time"

	"boutique_back_end/internal/models"

	"github.com/gocql/gocql"
)

type ScyllaProductStore struct {
	session *gocql.Session
}

func NewScyllaProductStore(session *gocql.Session) *ScyllaProductStore {
	return &ScyllaProductStore{session: session}
}

const productColumns = `product_id, name, description, category_id, price, stock, image_url, created_at, updated_at`

func (s *ScyllaProductStore) FindAll(ctx context.Context) ([]models.Product, error) {
	iter := s.session.Query(`SELECT ` + productColumns + ` FROM products`).
		WithContext(ctx).
		Iter()
	return scanProducts(iter)
}

func (s *ScyllaProductStore) FindByID(ctx context.Context, id gocql.UUID) (*models.Product, error) {
	var p models.Product
	var createdAt, updatedAt time.Time

	err := s.session.Query(`SELECT `+productColumns+` FROM products WHERE product_id = ?`, id).
		WithContext(ctx).
		Scan(&p.ID, &p.Name, &p.Description, &p.CategoryID, &p.Price, &p.Stock, &p.ImageURL, &createdAt, &updatedAt)
	if err == gocql.ErrNotFound {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if !createdAt.IsZero() {
		p.CreatedAt = &createdAt
	}
	if !updatedAt.IsZero() {
		p.UpdatedAt = &updatedAt
	}
	return &p, nil
}

func (s *ScyllaProductStore) FindByCategory(ctx context.Context, categoryID gocql.UUID) ([]models.Product, error) {
	iter := s.session.Query(`SELECT `+productColumns+` FROM products WHERE category_id = ? ALLOW FILTERING`, categoryID).
		WithContext(ctx).
		Iter()
	return scanProducts(iter)
}

func (s *ScyllaProductStore) CountByCategory(ctx context.Context, categoryID gocql.UUID) (int, error) {
	var count int
	err := s.session.Query(`SELECT COUNT(*) FROM products WHERE category_id = ? ALLOW FILTERING`, categoryID).
		WithContext(ctx).
		Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (s *ScyllaProductStore) Create(ctx context.Context, product *models.Product) error {
	return s.session.Query(`INSERT INTO products (`+productColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		product.ID, product.Name, product.Description, product.CategoryID,
		product.Price, product.Stock, product.ImageURL, product.CreatedAt, product.UpdatedAt).
		WithContext(ctx).
		Exec()
}

func (s *ScyllaProductStore) Update(ctx context.Context, product *models.Product) error {
	return s.session.Query(`UPDATE products SET name = ?, description = ?, category_id = ?, price = ?, stock = ?, image_url = ?, updated_at = ?
		WHERE product_id = ?`,
		product.Name, product.Description, product.CategoryID, product.Price,
		product.Stock, product.ImageURL, product.UpdatedAt, product.ID).
		WithContext(ctx).
		Exec()
}

func (s *ScyllaProductStore) SetImageURL(ctx context.Context, id gocql.UUID, url string) error {
	now := time.Now()
	return s.session.Query(`UPDATE products SET image_url = ?, updated_at = ? WHERE product_id = ?`, url, now, id).
		WithContext(ctx).
		Exec()
}

func scanProducts(iter *gocql.Iter) ([]models.Product, error) {
	var products []models.Product
	var p models.Product
	var createdAt, updatedAt time.Time

	for iter.Scan(&p.ID, &p.Name, &p.Description, &p.CategoryID, &p.Price, &p.Stock, &p.ImageURL, &createdAt, &updatedAt) {
		row := p
		if !createdAt.IsZero() {
			t := createdAt
			row.CreatedAt = &t
		}
		if !updatedAt.IsZero() {
			t := updatedAt
			row.UpdatedAt = &t
		}
		products = append(products, row)
		createdAt = time.Time{}
		updatedAt = time.Time{}
	}
	if err := iter.Close(); err != nil {
		return nil, err
	}
	return products, nil
}
