package store

import (
	"context"
	"errors"

	"boutique_back_end/internal/models"

	"github.com/gocql/gocql"
)

var (
	ErrNotFound      = errors.New("store: introuvable")
	ErrAlreadyExists = errors.New("store: existe déjà")
)

// CustomerStore persiste les clients. La liste sessions du client est
// l'inventaire des tokens vivants, mutée uniquement par le session manager.
type CustomerStore interface {
	FindByEmail(ctx context.Context, email string) (*models.Customer, error)
	FindByID(ctx context.Context, id gocql.UUID) (*models.Customer, error)
	Create(ctx context.Context, customer *models.Customer) error
	UpdateSessions(ctx context.Context, id gocql.UUID, sessions []string) error
}

type CategoryStore interface {
	FindAll(ctx context.Context) ([]models.Category, error)
	FindByID(ctx context.Context, id gocql.UUID) (*models.Category, error)
	Create(ctx context.Context, category *models.Category) error
	Update(ctx context.Context, category *models.Category) error
	Delete(ctx context.Context, id gocql.UUID) error
}

type ProductStore interface {
	FindAll(ctx context.Context) ([]models.Product, error)
	FindByID(ctx context.Context, id gocql.UUID) (*models.Product, error)
	FindByCategory(ctx context.Context, categoryID gocql.UUID) ([]models.Product, error)
	CountByCategory(ctx context.Context, categoryID gocql.UUID) (int, error)
	Create(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, product *models.Product) error
	SetImageURL(ctx context.Context, id gocql.UUID, url string) error
}
