package model

type Supermarket struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Address   string `json:"address,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

// SupermarketProduct records where a product is shelved in a given
// supermarket. Validation for this entity runs under the store_location
// error-key namespace, which is the localization wire contract.
type SupermarketProduct struct {
	ID              string `json:"id"`
	ProductID       string `json:"product_id"`
	SupermarketID   string `json:"supermarket_id"`
	InStoreLocation string `json:"in_store_location,omitempty"`
	CreatedAt       string `json:"created_at,omitempty"`
	UpdatedAt       string `json:"updated_at,omitempty"`
}
