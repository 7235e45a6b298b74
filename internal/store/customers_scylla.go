package store

import (
	"context"
	"time"

	"boutique_back_end/internal/models"

	"github.com/gocql/gocql"
)

// ScyllaCustomerStore implémente CustomerStore sur ScyllaDB
type ScyllaCustomerStore struct {
	session *gocql.Session
}

func NewScyllaCustomerStore(session *gocql.Session) *ScyllaCustomerStore {
	return &ScyllaCustomerStore{session: session}
}

func (s *ScyllaCustomerStore) FindByEmail(ctx context.Context, email string) (*models.Customer, error) {
	var c models.Customer
	var createdAt time.Time

	// email n'est pas la clé de partition, d'où le ALLOW FILTERING ; le
	// volume de clients reste raisonnable et un index secondaire existe
	err := s.session.Query(`SELECT customer_id, email, password, sessions, created_at
		FROM customers WHERE email = ? ALLOW FILTERING`, email).
		WithContext(ctx).
		Scan(&c.ID, &c.Email, &c.Password, &c.Sessions, &createdAt)
	if err == gocql.ErrNotFound {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if !createdAt.IsZero() {
		c.CreatedAt = &createdAt
	}
	return &c, nil
}

func (s *ScyllaCustomerStore) FindByID(ctx context.Context, id gocql.UUID) (*models.Customer, error) {
	var c models.Customer
	var createdAt time.Time

	err := s.session.Query(`SELECT customer_id, email, password, sessions, created_at
		FROM customers WHERE customer_id = ?`, id).
		WithContext(ctx).
		Scan(&c.ID, &c.Email, &c.Password, &c.Sessions, &createdAt)
	if err == gocql.ErrNotFound {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if !createdAt.IsZero() {
		c.CreatedAt = &createdAt
	}
	return &c, nil
}

func (s *ScyllaCustomerStore) Create(ctx context.Context, customer *models.Customer) error {
	return s.session.Query(`INSERT INTO customers (customer_id, email, password, sessions, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		customer.ID, customer.Email, customer.Password, customer.Sessions, customer.CreatedAt).
		WithContext(ctx).
		Exec()
}

func (s *ScyllaCustomerStore) UpdateSessions(ctx context.Context, id gocql.UUID, sessions []string) error {
	return s.session.Query(`UPDATE customers SET sessions = ? WHERE customer_id = ?`, sessions, id).
		WithContext(ctx).
		Exec()
}
