package repositories

import (
	"context"

	"github.com/mazia777/fakestore-app/internal/models"
)

// CatalogRepository defines read access to the product catalog. The upstream
// store is the source of truth and is not writable from this service, so the
// interface is read-only.
type CatalogRepository interface {
	GetAll(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id int) (*models.Product, error)
}
