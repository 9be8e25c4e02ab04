// Package storefront wraps the HaloBharat REST resources: catalog, cart,
// orders, vendors, reviews, wishlist, and support chat. Every operation is
// a thin typed call through the authenticated pipeline.
package storefront

import "encoding/json"

// Product is a catalog entry.
type Product struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Slug        string          `json:"slug"`
	Description string          `json:"description"`
	Price       json.Number     `json:"price"`
	SalePrice   json.Number     `json:"sale_price"`
	Currency    string          `json:"currency"`
	Images      []string        `json:"images"`
	Category    string          `json:"category"`
	VendorID    int64           `json:"vendor_id"`
	InStock     bool            `json:"in_stock"`
	Rating      json.Number     `json:"rating"`
}

// Category groups products.
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// CartItem is one line in the cart.
type CartItem struct {
	ID        int64       `json:"id"`
	ProductID int64       `json:"product_id"`
	Name      string      `json:"name"`
	Quantity  int         `json:"quantity"`
	UnitPrice json.Number `json:"unit_price"`
}

// Cart is the current user's cart.
type Cart struct {
	Items    []CartItem  `json:"items"`
	Subtotal json.Number `json:"subtotal"`
	Total    json.Number `json:"total"`
}

// Order is a placed order.
type Order struct {
	ID        int64       `json:"id"`
	Status    string      `json:"status"`
	Items     []CartItem  `json:"items"`
	Total     json.Number `json:"total"`
	CreatedAt string      `json:"created_at"`
}

// Vendor is a seller page.
type Vendor struct {
	ID       int64       `json:"id"`
	Name     string      `json:"name"`
	Slug     string      `json:"slug"`
	City     string      `json:"city"`
	Rating   json.Number `json:"rating"`
	Verified bool        `json:"verified"`
}

// Review is a product review.
type Review struct {
	ID        int64  `json:"id"`
	ProductID int64  `json:"product_id"`
	Author    string `json:"author"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
	CreatedAt string `json:"created_at"`
}

// WishlistItem is a saved product.
type WishlistItem struct {
	ID        int64   `json:"id"`
	ProductID int64   `json:"product_id"`
	Product   Product `json:"product"`
}

// ChatMessage is one support-chat message.
type ChatMessage struct {
	ID        int64  `json:"id"`
	Sender    string `json:"sender"`
	Body      string `json:"body"`
	CreatedAt string `json:"created_at"`
}

// Profile is the current user's account profile.
type Profile struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}
