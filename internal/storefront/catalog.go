package storefront

import (
	"context"
	"fmt"
	"net/url"
)

// Products lists the catalog, optionally filtered by a search query.
func (s *Service) Products(ctx context.Context, query string) ([]Product, error) {
	path := "/products/"
	if query != "" {
		path += "?search=" + url.QueryEscape(query)
	}
	resp, err := s.api.Get(ctx, path)
	if err != nil {
		return nil, err
	}
	var products []Product
	if err := resp.UnmarshalData(&products); err != nil {
		return nil, err
	}
	return products, nil
}

// Product fetches one product by ID.
func (s *Service) Product(ctx context.Context, id int64) (*Product, error) {
	resp, err := s.api.Get(ctx, fmt.Sprintf("/products/%d/", id))
	if err != nil {
		return nil, err
	}
	var p Product
	if err := resp.UnmarshalData(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Categories lists the catalog categories.
func (s *Service) Categories(ctx context.Context) ([]Category, error) {
	resp, err := s.api.Get(ctx, "/categories/")
	if err != nil {
		return nil, err
	}
	var categories []Category
	if err := resp.UnmarshalData(&categories); err != nil {
		return nil, err
	}
	return categories, nil
}
