// Package catalog is the HTTP client for the upstream demo store API. The
// upstream returns the full catalog in a single call; there is no pagination
// protocol.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/mazia777/fakestore-app/internal/models"
)

// DefaultTimeout is the fetch budget for a single upstream call.
const DefaultTimeout = 12 * time.Second

// NetworkError wraps any transport-level failure talking to the upstream
// catalog. Timeout marks fetches that exhausted their time budget. Callers
// surface the Error() string to the user as-is.
type NetworkError struct {
	URL     string
	Timeout bool
	Err     error
}

func (e *NetworkError) Error() string {
	if e.Timeout {
		return fmt.Sprintf("catalog request to %s timed out: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("could not reach catalog at %s: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// Client fetches catalog data from the upstream store API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a catalog client for the given base URL. A zero timeout
// falls back to DefaultTimeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// FetchProducts retrieves the entire product catalog in one call.
func (c *Client) FetchProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := c.getJSON(ctx, "/products", &products); err != nil {
		return nil, err
	}
	return products, nil
}

// FetchProduct retrieves a single product by its upstream ID. A missing ID
// yields models.ErrNotFound rather than a network error.
func (c *Client) FetchProduct(ctx context.Context, id int) (*models.Product, error) {
	var product models.Product
	if err := c.getJSON(ctx, fmt.Sprintf("/products/%d", id), &product); err != nil {
		return nil, err
	}
	// A zero ID after decoding means the upstream sent an empty body.
	if product.ID == 0 {
		return nil, fmt.Errorf("%w: id %d", models.ErrNotFound, id)
	}
	return &product, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	reqURL := c.baseURL + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("building catalog request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		nerr := &NetworkError{URL: reqURL, Err: err}
		var uerr *url.Error
		if errors.As(err, &uerr) && uerr.Timeout() {
			nerr.Timeout = true
		}
		if errors.Is(err, context.DeadlineExceeded) {
			nerr.Timeout = true
		}
		return nerr
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w: %s", models.ErrNotFound, path)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &NetworkError{
			URL: reqURL,
			Err: fmt.Errorf("unexpected status %s", resp.Status),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		// The demo API answers 200 with an empty body for unknown IDs;
		// leave out zero-valued and let the caller decide.
		if errors.Is(err, io.EOF) {
			return nil
		}
		return &NetworkError{
			URL: reqURL,
			Err: fmt.Errorf("decoding catalog response: %w", err),
		}
	}
	return nil
}
