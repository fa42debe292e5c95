package model

// GroceryItem is a concrete unit of a product sitting in a container.
// ProductID and ContainerID are advisory references resolved by id lookup
// at read time; the store does not enforce them.
type GroceryItem struct {
	ID             string  `json:"id"`
	ProductID      string  `json:"product_id"`
	ContainerID    string  `json:"container_id"`
	RestQuantity   float64 `json:"rest_quantity,omitempty"`
	ExpirationDate string  `json:"expiration_date,omitempty"`
	BuyDate        string  `json:"buy_date,omitempty"`
	Opened         bool    `json:"opened,omitempty"`
	OpenedAt       string  `json:"opened_at,omitempty"`
	Notes          string  `json:"notes,omitempty"`
	CreatedAt      string  `json:"created_at,omitempty"`
	UpdatedAt      string  `json:"updated_at,omitempty"`
}
