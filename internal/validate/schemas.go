package validate

// Error keys are the wire contract with the UI's localization layer and
// must not be renamed.
const (
	ErrContainerValidation      = "ERR_CONTAINER_VALIDATION"
	ErrContainerNameRequired    = "ERR_CONTAINER_NAME_REQUIRED"
	ErrProductValidation        = "ERR_PRODUCT_VALIDATION"
	ErrProductNameRequired      = "ERR_PRODUCT_NAME_REQUIRED"
	ErrProductGroupValidation   = "ERR_PRODUCT_GROUP_VALIDATION"
	ErrProductGroupNameRequired = "ERR_PRODUCT_GROUP_NAME_REQUIRED"

	ErrGroceryItemValidation          = "ERR_GROCERY_ITEM_VALIDATION"
	ErrGroceryItemProductIDRequired   = "ERR_GROCERY_ITEM_PRODUCT_ID_REQUIRED"
	ErrGroceryItemContainerIDRequired = "ERR_GROCERY_ITEM_CONTAINER_ID_REQUIRED"

	ErrShoppingListValidation   = "ERR_SHOPPING_LIST_VALIDATION"
	ErrShoppingListNameRequired = "ERR_SHOPPING_LIST_NAME_REQUIRED"

	ErrShoppingListItemValidation             = "ERR_SHOPPING_LIST_ITEM_VALIDATION"
	ErrShoppingListItemShoppingListIDRequired = "ERR_SHOPPING_LIST_ITEM_SHOPPING_LIST_ID_REQUIRED"
	ErrShoppingListItemProductIDRequired      = "ERR_SHOPPING_LIST_ITEM_PRODUCT_ID_REQUIRED"

	ErrSupermarketValidation   = "ERR_SUPERMARKET_VALIDATION"
	ErrSupermarketNameRequired = "ERR_SUPERMARKET_NAME_REQUIRED"

	ErrStoreLocationValidation            = "ERR_STORE_LOCATION_VALIDATION"
	ErrStoreLocationProductIDRequired     = "ERR_STORE_LOCATION_PRODUCT_ID_REQUIRED"
	ErrStoreLocationSupermarketIDRequired = "ERR_STORE_LOCATION_SUPERMARKET_ID_REQUIRED"
)

// Container returns the schema for storage containers.
func Container() *Schema {
	return &Schema{
		Entity:   "container",
		Fallback: ErrContainerValidation,
		Fields: []Field{
			{Name: "id", Type: String},
			{Name: "name", Type: String, Required: true, ErrKey: ErrContainerNameRequired},
			{Name: "parent_container_id", Type: String},
			{Name: "description", Type: String},
			{Name: "photo_url", Type: String},
			{Name: "color", Type: String},
			{Name: "created_at", Type: DateTime},
			{Name: "updated_at", Type: DateTime},
		},
	}
}

// Product returns the schema for products.
func Product() *Schema {
	return &Schema{
		Entity:   "product",
		Fallback: ErrProductValidation,
		Fields: []Field{
			{Name: "id", Type: String},
			{Name: "name", Type: String, Required: true, ErrKey: ErrProductNameRequired},
			{Name: "brand", Type: String},
			{Name: "product_group_id", Type: String},
			{Name: "created_at", Type: DateTime},
			{Name: "updated_at", Type: DateTime},
		},
	}
}

// ProductGroup returns the schema for product groups.
func ProductGroup() *Schema {
	return &Schema{
		Entity:   "product_group",
		Fallback: ErrProductGroupValidation,
		Fields: []Field{
			{Name: "id", Type: String},
			{Name: "name", Type: String, Required: true, ErrKey: ErrProductGroupNameRequired},
			{Name: "brand", Type: String},
			{Name: "created_at", Type: DateTime},
			{Name: "updated_at", Type: DateTime},
		},
	}
}

// GroceryItem returns the schema for grocery items.
func GroceryItem() *Schema {
	return &Schema{
		Entity:   "grocery_item",
		Fallback: ErrGroceryItemValidation,
		Fields: []Field{
			{Name: "id", Type: String},
			{Name: "product_id", Type: String, Required: true, ErrKey: ErrGroceryItemProductIDRequired},
			{Name: "container_id", Type: String, Required: true, ErrKey: ErrGroceryItemContainerIDRequired},
			{Name: "rest_quantity", Type: Number},
			{Name: "expiration_date", Type: DateTime},
			{Name: "buy_date", Type: DateTime},
			{Name: "opened", Type: Boolean},
			{Name: "opened_at", Type: DateTime},
			{Name: "notes", Type: String},
			{Name: "created_at", Type: DateTime},
			{Name: "updated_at", Type: DateTime},
		},
	}
}

// ShoppingList returns the schema for shopping lists.
func ShoppingList() *Schema {
	return &Schema{
		Entity:   "shopping_list",
		Fallback: ErrShoppingListValidation,
		Fields: []Field{
			{Name: "id", Type: String},
			{Name: "name", Type: String, Required: true, ErrKey: ErrShoppingListNameRequired},
			{Name: "created_at", Type: DateTime},
			{Name: "updated_at", Type: DateTime},
		},
	}
}

// ShoppingListItem returns the schema for shopping list items.
func ShoppingListItem() *Schema {
	return &Schema{
		Entity:   "shopping_list_item",
		Fallback: ErrShoppingListItemValidation,
		Fields: []Field{
			{Name: "id", Type: String},
			{Name: "shopping_list_id", Type: String, Required: true, ErrKey: ErrShoppingListItemShoppingListIDRequired},
			{Name: "product_id", Type: String, Required: true, ErrKey: ErrShoppingListItemProductIDRequired},
			{Name: "quantity", Type: Number},
			{Name: "comment", Type: String},
			{Name: "image_url", Type: String},
			{Name: "created_at", Type: DateTime},
			{Name: "updated_at", Type: DateTime},
		},
	}
}

// Supermarket returns the schema for supermarkets.
func Supermarket() *Schema {
	return &Schema{
		Entity:   "supermarket",
		Fallback: ErrSupermarketValidation,
		Fields: []Field{
			{Name: "id", Type: String},
			{Name: "name", Type: String, Required: true, ErrKey: ErrSupermarketNameRequired},
			{Name: "address", Type: String},
			{Name: "created_at", Type: DateTime},
			{Name: "updated_at", Type: DateTime},
		},
	}
}

// StoreLocation returns the schema for supermarket products. The entity
// validates under the store_location key namespace.
func StoreLocation() *Schema {
	return &Schema{
		Entity:   "store_location",
		Fallback: ErrStoreLocationValidation,
		Fields: []Field{
			{Name: "id", Type: String},
			{Name: "product_id", Type: String, Required: true, ErrKey: ErrStoreLocationProductIDRequired},
			{Name: "supermarket_id", Type: String, Required: true, ErrKey: ErrStoreLocationSupermarketIDRequired},
			{Name: "in_store_location", Type: String},
			{Name: "created_at", Type: DateTime},
			{Name: "updated_at", Type: DateTime},
		},
	}
}
