package api

import (
	"context"
	"encoding/json"
)

// Page sobre de paginación de DRF: {"results": [...], "next": url|null, "previous": url|null}.
type Page[T any] struct {
	Results  []T     `json:"results"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
}

// FetchPage descarga una página del recurso. Algunos despliegues devuelven
// la lista sin sobre (array plano); en ese caso se admite como página única.
func FetchPage[T any](ctx context.Context, c *Client, pageURL string) (*Page[T], error) {
	var raw json.RawMessage
	if err := c.Get(ctx, pageURL, &raw); err != nil {
		return nil, err
	}

	var page Page[T]
	if err := json.Unmarshal(raw, &page); err == nil &&
		(page.Results != nil || page.Next != nil || page.Previous != nil) {
		return &page, nil
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, err
	}
	return &Page[T]{Results: items}, nil
}
