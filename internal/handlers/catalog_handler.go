package handlers

import (
	"errors"
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/mazia777/fakestore-app/internal/catalog"
	"github.com/mazia777/fakestore-app/internal/models"
	"github.com/mazia777/fakestore-app/internal/query"
	"github.com/mazia777/fakestore-app/internal/services"
)

// CatalogHandler handles HTTP requests for catalog browsing.
type CatalogHandler struct {
	service  *services.StorefrontService
	validate *validator.Validate
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(service *services.StorefrontService) *CatalogHandler {
	return &CatalogHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the catalog routes with the Fiber app.
func (h *CatalogHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleListProducts)
	productRoutes.Get("/:id", h.HandleGetProduct)

	router.Get("/categories", h.HandleListCategories)
}

// ListQuery carries the user-selected browse criteria from the query string.
type ListQuery struct {
	Search   string `query:"search"`
	Category string `query:"category"`
	Sort     string `query:"sort" validate:"omitempty,oneof=none price_asc price_desc title_asc title_desc"`
}

// HandleListProducts returns the filtered and sorted product listing along
// with the category universe and the result count.
func (h *CatalogHandler) HandleListProducts(c *fiber.Ctx) error {
	var q ListQuery
	if err := c.QueryParser(&q); err != nil {
		log.Printf("Error parsing list query: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid query parameters",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(q); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		errorMessages := make(map[string]string)
		for _, e := range validationErrors {
			errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  errorMessages,
		})
	}

	criteria := query.Criteria{
		Text:     q.Search,
		Category: q.Category,
		Sort:     query.ParseSortKey(q.Sort),
	}
	if criteria.Category == "" {
		criteria.Category = query.AllCategories
	}

	listing, err := h.service.BrowseProducts(c.UserContext(), criteria)
	if err != nil {
		log.Printf("Error browsing products: %v", err)
		return h.upstreamError(c, err)
	}
	return c.JSON(listing)
}

// HandleGetProduct returns a single product by its ID.
func (h *CatalogHandler) HandleGetProduct(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Product ID must be an integer",
		})
	}

	product, err := h.service.GetProduct(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Product with ID %d not found", id),
			})
		}
		log.Printf("Error getting product %d: %v", id, err)
		return h.upstreamError(c, err)
	}
	return c.JSON(product)
}

// HandleListCategories returns the derived category universe.
func (h *CatalogHandler) HandleListCategories(c *fiber.Ctx) error {
	categories, err := h.service.ListCategories(c.UserContext())
	if err != nil {
		log.Printf("Error listing categories: %v", err)
		return h.upstreamError(c, err)
	}
	return c.JSON(fiber.Map{
		"categories": categories,
	})
}

// upstreamError maps catalog fetch failures onto gateway statuses. The
// human-readable message string from the network error is passed through
// untouched.
func (h *CatalogHandler) upstreamError(c *fiber.Ctx, err error) error {
	var nerr *catalog.NetworkError
	if errors.As(err, &nerr) {
		status := fiber.StatusBadGateway
		if nerr.Timeout {
			status = fiber.StatusGatewayTimeout
		}
		return c.Status(status).JSON(fiber.Map{
			"message": "Catalog is currently unavailable",
			"error":   nerr.Error(),
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"message": "Could not retrieve catalog",
		"error":   err.Error(),
	})
}
