package docstore

import (
	"context"
	"testing"
	"time"
)

func TestStoreRegistersAllCollections(t *testing.T) {
	store := setupStore(t)

	names := []string{
		CollContainers, CollProducts, CollProductGroups, CollGroceryItems,
		CollShoppingLists, CollShoppingListItems, CollSupermarkets,
		CollSupermarketProducts,
	}
	for _, name := range names {
		if store.Collection(name) == nil {
			t.Errorf("collection %q not registered", name)
		}
	}
	if store.Collection("chores") != nil {
		t.Error("unknown collection should be nil")
	}
}

func TestChangesFeedOrder(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	feed := store.Changes()
	defer feed.Close()

	mustInsert(t, store.Containers(), Document{"id": "c1", "name": "Fridge"})
	if _, err := store.Containers().Update(ctx, "c1", Document{"description": "Main"}); err != nil {
		t.Fatalf("update: %v", err)
	}
	mustInsert(t, store.Products(), Document{"id": "p1", "name": "Milk"})
	if err := store.Containers().Delete(ctx, "c1"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	want := []Change{
		{Collection: CollContainers, Action: ActionInsert, ID: "c1"},
		{Collection: CollContainers, Action: ActionUpdate, ID: "c1"},
		{Collection: CollProducts, Action: ActionInsert, ID: "p1"},
		{Collection: CollContainers, Action: ActionDelete, ID: "c1"},
	}
	for i, w := range want {
		select {
		case got := <-feed.C():
			if got != w {
				t.Errorf("event[%d] = %+v, want %+v", i, got, w)
			}
		case <-time.After(waitTimeout):
			t.Fatalf("timeout waiting for event %d", i)
		}
	}
}

func TestChangeFeedCloseStopsDelivery(t *testing.T) {
	store := setupStore(t)

	feed := store.Changes()
	feed.Close()
	feed.Close() // idempotent

	select {
	case _, ok := <-feed.C():
		if ok {
			t.Fatal("expected closed channel after Close")
		}
	case <-time.After(waitTimeout):
		t.Fatal("channel not closed")
	}

	// Writes after Close must not panic on the detached feed.
	mustInsert(t, store.Containers(), Document{"id": "c1", "name": "Fridge"})
}
