package models

import "errors"

// ErrNotFound is returned when a product ID does not exist in the catalog.
var ErrNotFound = errors.New("product not found")
