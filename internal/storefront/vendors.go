package storefront

import (
	"context"
	"fmt"
)

// Vendors lists seller pages.
func (s *Service) Vendors(ctx context.Context) ([]Vendor, error) {
	resp, err := s.api.Get(ctx, "/vendors/")
	if err != nil {
		return nil, err
	}
	var vendors []Vendor
	if err := resp.UnmarshalData(&vendors); err != nil {
		return nil, err
	}
	return vendors, nil
}

// Vendor fetches one seller page.
func (s *Service) Vendor(ctx context.Context, id int64) (*Vendor, error) {
	resp, err := s.api.Get(ctx, fmt.Sprintf("/vendors/%d/", id))
	if err != nil {
		return nil, err
	}
	var vendor Vendor
	if err := resp.UnmarshalData(&vendor); err != nil {
		return nil, err
	}
	return &vendor, nil
}

// VendorProducts lists a seller's catalog.
func (s *Service) VendorProducts(ctx context.Context, id int64) ([]Product, error) {
	resp, err := s.api.Get(ctx, fmt.Sprintf("/vendors/%d/products/", id))
	if err != nil {
		return nil, err
	}
	var products []Product
	if err := resp.UnmarshalData(&products); err != nil {
		return nil, err
	}
	return products, nil
}
