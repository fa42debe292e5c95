// Package pantry builds read models over the document store.
package pantry

import (
	"context"
	"log/slog"
	"sync"

	"github.com/larder-app/larder/internal/docstore"
	"github.com/larder-app/larder/internal/model"
)

// DebugRow is one denormalized line of the pantry debug table: a grocery
// item with its product and product-group names resolved. Broken
// references resolve to empty strings.
type DebugRow struct {
	GroceryItemID    string `json:"grocery_item_id"`
	ProductName      string `json:"product_name"`
	ProductGroupName string `json:"product_group_name"`
}

// DebugView is a live projection over grocery items. Each time the grocery
// item set changes, the whole view is recomputed from scratch: products
// and product groups are re-read in full and joined through id lookup
// maps. That is O(items + products + groups) per change, fine at
// household scale.
type DebugView struct {
	store  *docstore.Store
	sub    *docstore.Subscription
	rows   chan []DebugRow
	done   chan struct{}
	once   sync.Once
	logger *slog.Logger
}

// NewDebugView subscribes to the grocery item collection and starts
// delivering row sets. Callers must Close the view when done.
func NewDebugView(store *docstore.Store, logger *slog.Logger) *DebugView {
	v := &DebugView{
		store:  store,
		sub:    store.GroceryItems().Subscribe(nil),
		rows:   make(chan []DebugRow, 1),
		done:   make(chan struct{}),
		logger: logger,
	}
	go v.run()
	return v
}

// Rows returns the delivery channel. A full row set arrives on
// subscription and after every grocery item change. The channel is closed
// after Close.
func (v *DebugView) Rows() <-chan []DebugRow { return v.rows }

// Close tears the view down; no recomputation occurs afterward.
func (v *DebugView) Close() {
	v.once.Do(func() {
		v.sub.Close()
		close(v.done)
	})
}

func (v *DebugView) run() {
	defer close(v.rows)
	for items := range v.sub.C() {
		rows, err := v.build(items)
		if err != nil {
			v.logger.Error("build debug view", "error", err)
			continue
		}
		select {
		case v.rows <- rows:
		case <-v.done:
			return
		}
	}
}

// build joins the delivered grocery items against a fresh read of the
// product and product-group collections. Row order follows the
// subscription's delivery order.
func (v *DebugView) build(items []docstore.Document) ([]DebugRow, error) {
	ctx := context.Background()

	productDocs, err := v.store.Products().Find(ctx, nil)
	if err != nil {
		return nil, err
	}
	groupDocs, err := v.store.ProductGroups().Find(ctx, nil)
	if err != nil {
		return nil, err
	}

	products := make(map[string]model.Product, len(productDocs))
	for _, d := range productDocs {
		p, err := docstore.Decode[model.Product](d)
		if err != nil {
			return nil, err
		}
		products[p.ID] = p
	}
	groups := make(map[string]model.ProductGroup, len(groupDocs))
	for _, d := range groupDocs {
		g, err := docstore.Decode[model.ProductGroup](d)
		if err != nil {
			return nil, err
		}
		groups[g.ID] = g
	}

	rows := make([]DebugRow, 0, len(items))
	for _, item := range items {
		row := DebugRow{GroceryItemID: item.ID()}
		if p, ok := products[item.String("product_id")]; ok {
			row.ProductName = p.Name
			if g, ok := groups[p.ProductGroupID]; ok {
				row.ProductGroupName = g.Name
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}
