package storefront

import (
	"context"
	"fmt"
)

// Orders lists the current user's orders.
func (s *Service) Orders(ctx context.Context) ([]Order, error) {
	resp, err := s.api.Get(ctx, "/orders/")
	if err != nil {
		return nil, err
	}
	var orders []Order
	if err := resp.UnmarshalData(&orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// Order fetches one order by ID.
func (s *Service) Order(ctx context.Context, id int64) (*Order, error) {
	resp, err := s.api.Get(ctx, fmt.Sprintf("/orders/%d/", id))
	if err != nil {
		return nil, err
	}
	var order Order
	if err := resp.UnmarshalData(&order); err != nil {
		return nil, err
	}
	return &order, nil
}

// PlaceOrder checks out the current cart against the given address.
func (s *Service) PlaceOrder(ctx context.Context, addressID int64, paymentMethod string) (*Order, error) {
	resp, err := s.api.Post(ctx, "/orders/", map[string]any{
		"address_id":     addressID,
		"payment_method": paymentMethod,
	})
	if err != nil {
		return nil, err
	}
	var order Order
	if err := resp.UnmarshalData(&order); err != nil {
		return nil, err
	}
	return &order, nil
}
