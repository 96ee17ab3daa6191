package repositories

import (
	"context"

	"github.com/mazia777/fakestore-app/internal/catalog"
	"github.com/mazia777/fakestore-app/internal/models"
)

// APICatalogRepository backs CatalogRepository with the upstream store API.
// Every GetAll is a fresh fetch: the upstream returns the full catalog in one
// call and the service keeps no offline copy.
type APICatalogRepository struct {
	client *catalog.Client
}

// NewAPICatalogRepository creates a repository over the given catalog client.
func NewAPICatalogRepository(client *catalog.Client) *APICatalogRepository {
	return &APICatalogRepository{
		client: client,
	}
}

// GetAll fetches the complete product catalog from upstream.
func (r *APICatalogRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	return r.client.FetchProducts(ctx)
}

// GetByID fetches a single product from upstream.
func (r *APICatalogRepository) GetByID(ctx context.Context, id int) (*models.Product, error) {
	return r.client.FetchProduct(ctx, id)
}
