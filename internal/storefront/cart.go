package storefront

import (
	"context"
	"fmt"
)

// Cart fetches the current cart.
func (s *Service) Cart(ctx context.Context) (*Cart, error) {
	resp, err := s.api.Get(ctx, "/cart/")
	if err != nil {
		return nil, err
	}
	var cart Cart
	if err := resp.UnmarshalData(&cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

// AddToCart adds a product to the cart.
func (s *Service) AddToCart(ctx context.Context, productID int64, quantity int) (*Cart, error) {
	resp, err := s.api.Post(ctx, "/cart/items/", map[string]any{
		"product_id": productID,
		"quantity":   quantity,
	})
	if err != nil {
		return nil, err
	}
	var cart Cart
	if err := resp.UnmarshalData(&cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

// UpdateCartItem changes the quantity of a cart line.
func (s *Service) UpdateCartItem(ctx context.Context, itemID int64, quantity int) (*Cart, error) {
	resp, err := s.api.Patch(ctx, fmt.Sprintf("/cart/items/%d/", itemID), map[string]any{
		"quantity": quantity,
	})
	if err != nil {
		return nil, err
	}
	var cart Cart
	if err := resp.UnmarshalData(&cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

// RemoveCartItem deletes a cart line.
func (s *Service) RemoveCartItem(ctx context.Context, itemID int64) error {
	_, err := s.api.Delete(ctx, fmt.Sprintf("/cart/items/%d/", itemID))
	return err
}
