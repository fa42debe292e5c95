package validate

import (
	"reflect"
	"testing"
)

func TestRequiredFieldKeys(t *testing.T) {
	tests := []struct {
		name    string
		schema  *Schema
		payload map[string]any
		wantKey string
	}{
		{"container missing name", Container(), map[string]any{"id": "c1"}, ErrContainerNameRequired},
		{"container empty name", Container(), map[string]any{"id": "c1", "name": ""}, ErrContainerNameRequired},
		{"container whitespace name", Container(), map[string]any{"id": "c1", "name": "   "}, ErrContainerNameRequired},
		{"product missing name", Product(), map[string]any{"id": "p1"}, ErrProductNameRequired},
		{"product group missing name", ProductGroup(), map[string]any{"id": "pg1"}, ErrProductGroupNameRequired},
		{"grocery item missing product", GroceryItem(), map[string]any{"id": "g1", "container_id": "c1"}, ErrGroceryItemProductIDRequired},
		{"grocery item missing container", GroceryItem(), map[string]any{"id": "g1", "product_id": "p1"}, ErrGroceryItemContainerIDRequired},
		{"shopping list missing name", ShoppingList(), map[string]any{"id": "l1"}, ErrShoppingListNameRequired},
		{"shopping list item missing list", ShoppingListItem(), map[string]any{"id": "i1", "product_id": "p1"}, ErrShoppingListItemShoppingListIDRequired},
		{"shopping list item missing product", ShoppingListItem(), map[string]any{"id": "i1", "shopping_list_id": "l1"}, ErrShoppingListItemProductIDRequired},
		{"supermarket missing name", Supermarket(), map[string]any{"id": "s1"}, ErrSupermarketNameRequired},
		{"store location empty product id", StoreLocation(), map[string]any{"product_id": "", "supermarket_id": "s1"}, ErrStoreLocationProductIDRequired},
		{"store location missing supermarket", StoreLocation(), map[string]any{"product_id": "p1"}, ErrStoreLocationSupermarketIDRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := tt.schema.ValidateInsert(tt.payload)
			if res.Valid {
				t.Fatal("expected invalid result")
			}
			if res.ErrKey != tt.wantKey {
				t.Errorf("error key = %q, want %q", res.ErrKey, tt.wantKey)
			}
		})
	}
}

func TestFirstViolationWins(t *testing.T) {
	// Both required fields are missing; the one declared first is reported.
	res := GroceryItem().ValidateInsert(map[string]any{"id": "g1"})
	if res.Valid {
		t.Fatal("expected invalid result")
	}
	if res.ErrKey != ErrGroceryItemProductIDRequired {
		t.Errorf("error key = %q, want %q", res.ErrKey, ErrGroceryItemProductIDRequired)
	}
}

func TestValidInsertNormalizes(t *testing.T) {
	res := GroceryItem().ValidateInsert(map[string]any{
		"id":            "g1",
		"product_id":    "p1",
		"container_id":  "c1",
		"rest_quantity": 2, // int coerced to float64
		"opened":        false,
		"mystery":       "dropped",
	})
	if !res.Valid {
		t.Fatalf("expected valid result, got key %q", res.ErrKey)
	}
	if _, ok := res.Value["mystery"]; ok {
		t.Error("undeclared field survived normalization")
	}
	if q, ok := res.Value["rest_quantity"].(float64); !ok || q != 2 {
		t.Errorf("rest_quantity = %v (%T), want float64 2", res.Value["rest_quantity"], res.Value["rest_quantity"])
	}
}

func TestValidationIdempotent(t *testing.T) {
	payload := map[string]any{
		"id":            "g1",
		"product_id":    "p1",
		"container_id":  "c1",
		"rest_quantity": 3,
	}
	first := GroceryItem().ValidateInsert(payload)
	if !first.Valid {
		t.Fatalf("first pass invalid: %q", first.ErrKey)
	}
	second := GroceryItem().ValidateInsert(first.Value)
	if !second.Valid {
		t.Fatalf("second pass invalid: %q", second.ErrKey)
	}
	if !reflect.DeepEqual(first.Value, second.Value) {
		t.Errorf("normalization not idempotent: %v vs %v", first.Value, second.Value)
	}
}

func TestUpdateAcceptsPartial(t *testing.T) {
	res := Container().ValidateUpdate(map[string]any{"description": "Main fridge"})
	if !res.Valid {
		t.Fatalf("expected valid result, got key %q", res.ErrKey)
	}
	if res.Value["description"] != "Main fridge" {
		t.Errorf("description = %v, want Main fridge", res.Value["description"])
	}
}

func TestUpdateRejectsEmptyRequired(t *testing.T) {
	// A required field may be omitted from a partial update, but when
	// present it must still satisfy its rules.
	res := Container().ValidateUpdate(map[string]any{"name": ""})
	if res.Valid {
		t.Fatal("expected invalid result")
	}
	if res.ErrKey != ErrContainerNameRequired {
		t.Errorf("error key = %q, want %q", res.ErrKey, ErrContainerNameRequired)
	}
}

func TestTypeViolationsUseFallback(t *testing.T) {
	tests := []struct {
		name    string
		schema  *Schema
		payload map[string]any
		wantKey string
	}{
		{"number as string", GroceryItem(), map[string]any{"id": "g1", "product_id": "p1", "container_id": "c1", "rest_quantity": "three"}, ErrGroceryItemValidation},
		{"bad date-time", GroceryItem(), map[string]any{"id": "g1", "product_id": "p1", "container_id": "c1", "expiration_date": "tomorrow"}, ErrGroceryItemValidation},
		{"bool as string", GroceryItem(), map[string]any{"id": "g1", "product_id": "p1", "container_id": "c1", "opened": "yes"}, ErrGroceryItemValidation},
		{"name not a string", Container(), map[string]any{"id": "c1", "name": 7}, ErrContainerValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := tt.schema.ValidateInsert(tt.payload)
			if res.Valid {
				t.Fatal("expected invalid result")
			}
			if res.ErrKey != tt.wantKey {
				t.Errorf("error key = %q, want %q", res.ErrKey, tt.wantKey)
			}
		})
	}
}

func TestDateTimeAccepted(t *testing.T) {
	res := GroceryItem().ValidateInsert(map[string]any{
		"id":              "g1",
		"product_id":      "p1",
		"container_id":    "c1",
		"expiration_date": "2026-09-15T00:00:00.000Z",
	})
	if !res.Valid {
		t.Fatalf("expected valid result, got key %q", res.ErrKey)
	}
}
