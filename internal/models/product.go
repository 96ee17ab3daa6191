package models

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Product represents a catalog item as returned by the upstream store API.
// Products are read-only on this side: they are fetched, displayed, and
// discarded, never written back.
type Product struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Price       Price   `json:"price"`
	Image       string  `json:"image"`
	Rating      *Rating `json:"rating,omitempty"`
}

// Rating is the aggregate review score attached to a product.
type Rating struct {
	Rate  float64 `json:"rate"`
	Count int     `json:"count"`
}

// Price is a product price as reported by the upstream catalog.
//
// The demo API is loose about numeric types: prices arrive sometimes as JSON
// numbers and sometimes as numeric strings. Malformed values decode to NaN
// instead of failing the whole catalog fetch, so one bad record cannot take
// down a listing. NaN prices sort arbitrarily relative to each other.
type Price float64

// UnmarshalJSON accepts a JSON number, a quoted numeric string, or null.
func (p *Price) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*p = Price(math.NaN())
		return nil
	}
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = strings.TrimSpace(s[1 : len(s)-1])
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*p = Price(math.NaN())
		return nil
	}
	*p = Price(f)
	return nil
}

// MarshalJSON emits null for NaN and infinite prices, which encoding/json
// would otherwise refuse to serialize.
func (p Price) MarshalJSON() ([]byte, error) {
	f := float64(p)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return []byte("null"), nil
	}
	return json.Marshal(f)
}

// IsValid reports whether the price decoded to a usable number.
func (p Price) IsValid() bool {
	return !math.IsNaN(float64(p)) && !math.IsInf(float64(p), 0)
}
