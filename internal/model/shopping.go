package model

type ShoppingList struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

type ShoppingListItem struct {
	ID             string  `json:"id"`
	ShoppingListID string  `json:"shopping_list_id"`
	ProductID      string  `json:"product_id"`
	Quantity       float64 `json:"quantity,omitempty"`
	Comment        string  `json:"comment,omitempty"`
	ImageURL       string  `json:"image_url,omitempty"`
	CreatedAt      string  `json:"created_at,omitempty"`
	UpdatedAt      string  `json:"updated_at,omitempty"`
}
