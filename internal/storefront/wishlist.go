package storefront

import (
	"context"
	"fmt"
)

// Wishlist lists the current user's saved products.
func (s *Service) Wishlist(ctx context.Context) ([]WishlistItem, error) {
	resp, err := s.api.Get(ctx, "/wishlist/")
	if err != nil {
		return nil, err
	}
	var items []WishlistItem
	if err := resp.UnmarshalData(&items); err != nil {
		return nil, err
	}
	return items, nil
}

// AddToWishlist saves a product.
func (s *Service) AddToWishlist(ctx context.Context, productID int64) (*WishlistItem, error) {
	resp, err := s.api.Post(ctx, "/wishlist/", map[string]any{"product_id": productID})
	if err != nil {
		return nil, err
	}
	var item WishlistItem
	if err := resp.UnmarshalData(&item); err != nil {
		return nil, err
	}
	return &item, nil
}

// RemoveFromWishlist removes a saved product.
func (s *Service) RemoveFromWishlist(ctx context.Context, itemID int64) error {
	_, err := s.api.Delete(ctx, fmt.Sprintf("/wishlist/%d/", itemID))
	return err
}
