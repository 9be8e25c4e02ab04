package storefront

import (
	"context"
	"fmt"
)

// Reviews lists the reviews of a product.
func (s *Service) Reviews(ctx context.Context, productID int64) ([]Review, error) {
	resp, err := s.api.Get(ctx, fmt.Sprintf("/products/%d/reviews/", productID))
	if err != nil {
		return nil, err
	}
	var reviews []Review
	if err := resp.UnmarshalData(&reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

// AddReview posts a review for a product.
func (s *Service) AddReview(ctx context.Context, productID int64, rating int, comment string) (*Review, error) {
	resp, err := s.api.Post(ctx, fmt.Sprintf("/products/%d/reviews/", productID), map[string]any{
		"rating":  rating,
		"comment": comment,
	})
	if err != nil {
		return nil, err
	}
	var review Review
	if err := resp.UnmarshalData(&review); err != nil {
		return nil, err
	}
	return &review, nil
}
