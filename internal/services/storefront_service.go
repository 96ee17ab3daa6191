package services

import (
	"context"
	"log"
	"time"

	"github.com/mazia777/fakestore-app/internal/models"
	"github.com/mazia777/fakestore-app/internal/query"
	"github.com/mazia777/fakestore-app/internal/repositories"
	"github.com/mazia777/fakestore-app/pkg/events"
)

// ProductListing is the browse result handed to the presentation layer: the
// filtered and sorted view, the category universe derived from the full
// catalog, and the result count.
type ProductListing struct {
	Products   []models.Product `json:"products"`
	Categories []string         `json:"categories"`
	Total      int              `json:"total"`
}

// StorefrontService handles the catalog browsing logic. Each call works on a
// fresh catalog snapshot; there is no state carried between invocations, so a
// later call simply supersedes an earlier one.
type StorefrontService struct {
	repo      repositories.CatalogRepository
	publisher events.Publisher
}

// NewStorefrontService creates a new StorefrontService. A nil publisher
// disables analytics events.
func NewStorefrontService(repo repositories.CatalogRepository, publisher events.Publisher) *StorefrontService {
	return &StorefrontService{
		repo:      repo,
		publisher: publisher,
	}
}

// BrowseProducts fetches the catalog snapshot and runs the query pipeline
// over it. The category universe always reflects the full catalog, not the
// filtered view, so the category picker never loses options while a filter
// is active.
func (s *StorefrontService) BrowseProducts(ctx context.Context, criteria query.Criteria) (*ProductListing, error) {
	catalog, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	view := query.Apply(catalog, criteria)
	listing := &ProductListing{
		Products:   view,
		Categories: query.Categories(catalog),
		Total:      len(view),
	}

	s.publish(events.TypeCatalogBrowsed, events.BrowseEvent{
		SearchText:  criteria.Text,
		Category:    criteria.Category,
		SortKey:     string(criteria.Sort),
		ResultCount: listing.Total,
		At:          time.Now().UTC(),
	})

	return listing, nil
}

// GetProduct retrieves a single product by its ID.
func (s *StorefrontService) GetProduct(ctx context.Context, id int) (*models.Product, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.publish(events.TypeProductViewed, events.ViewEvent{
		ProductID: id,
		At:        time.Now().UTC(),
	})

	return product, nil
}

// ListCategories derives the category universe from the current catalog.
func (s *StorefrontService) ListCategories(ctx context.Context) ([]string, error) {
	catalog, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return query.Categories(catalog), nil
}

// publish sends an analytics event when a publisher is configured. Event
// failures are logged and swallowed: analytics must never break browsing.
func (s *StorefrontService) publish(eventType string, payload any) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(eventType, payload); err != nil {
		log.Printf("Warning: failed to publish %s event: %v", eventType, err)
	}
}
