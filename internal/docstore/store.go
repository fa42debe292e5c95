package docstore

import (
	"database/sql"
	"log/slog"
	"sync"

	"github.com/larder-app/larder/internal/validate"
)

// Collection names. These match the document schema on disk and must not
// be renamed.
const (
	CollContainers          = "containers"
	CollProducts            = "products"
	CollProductGroups       = "product_groups"
	CollGroceryItems        = "grocery_items"
	CollShoppingLists       = "shopping_lists"
	CollShoppingListItems   = "shopping_list_items"
	CollSupermarkets        = "supermarkets"
	CollSupermarketProducts = "supermarket_products"
)

// Change actions.
const (
	ActionInsert = "insert"
	ActionUpdate = "update"
	ActionDelete = "delete"
)

// Change describes one committed write, for the store-wide change feed.
type Change struct {
	Collection string `json:"collection"`
	Action     string `json:"action"`
	ID         string `json:"id"`
}

// Store owns the eight entity collections over a single SQLite database.
// Each collection is constructed once with its schema, declared indexes,
// and the timestamp hooks.
type Store struct {
	db          *sql.DB
	logger      *slog.Logger
	collections map[string]*Collection
	feed        *feed
}

// New builds the store over an already-opened and migrated database.
func New(db *sql.DB, logger *slog.Logger) *Store {
	s := &Store{
		db:          db,
		logger:      logger,
		collections: make(map[string]*Collection),
		feed:        newFeed(logger),
	}

	open := func(name string, schema *validate.Schema, indexes ...string) {
		s.collections[name] = newCollection(name, db, schema, indexes, s.feed.publish, logger.With("collection", name))
	}

	open(CollContainers, validate.Container(), "name", "parent_container_id")
	open(CollProducts, validate.Product(), "name")
	open(CollProductGroups, validate.ProductGroup(), "name")
	open(CollGroceryItems, validate.GroceryItem(), "product_id", "container_id")
	open(CollShoppingLists, validate.ShoppingList(), "name")
	open(CollShoppingListItems, validate.ShoppingListItem(), "shopping_list_id", "product_id")
	open(CollSupermarkets, validate.Supermarket(), "name")
	open(CollSupermarketProducts, validate.StoreLocation(), "product_id", "supermarket_id")

	return s
}

// Collection returns the named collection, or nil if unknown.
func (s *Store) Collection(name string) *Collection {
	return s.collections[name]
}

func (s *Store) Containers() *Collection { return s.collections[CollContainers] }
func (s *Store) Products() *Collection { return s.collections[CollProducts] }
func (s *Store) ProductGroups() *Collection { return s.collections[CollProductGroups] }
func (s *Store) GroceryItems() *Collection { return s.collections[CollGroceryItems] }
func (s *Store) ShoppingLists() *Collection { return s.collections[CollShoppingLists] }
func (s *Store) ShoppingListItems() *Collection { return s.collections[CollShoppingListItems] }
func (s *Store) Supermarkets() *Collection { return s.collections[CollSupermarkets] }
func (s *Store) SupermarketProducts() *Collection { return s.collections[CollSupermarketProducts] }

// Changes returns a feed of every committed write across all collections,
// in commit order. Close the feed to stop delivery.
func (s *Store) Changes() *ChangeFeed {
	return s.feed.subscribe()
}

// ChangeFeed receives store-wide change events.
type ChangeFeed struct {
	feed *feed
	ch   chan Change
	once sync.Once
}

// C returns the event channel.
func (f *ChangeFeed) C() <-chan Change { return f.ch }

// Close detaches the feed.
func (f *ChangeFeed) Close() {
	f.once.Do(func() { f.feed.remove(f) })
}

const feedBufferSize = 64

// feed fans committed changes out to attached ChangeFeeds. A feed whose
// buffer is full drops the event rather than blocking the writer.
type feed struct {
	mu     sync.RWMutex
	subs   map[*ChangeFeed]struct{}
	logger *slog.Logger
}

func newFeed(logger *slog.Logger) *feed {
	return &feed{subs: make(map[*ChangeFeed]struct{}), logger: logger}
}

func (f *feed) subscribe() *ChangeFeed {
	cf := &ChangeFeed{feed: f, ch: make(chan Change, feedBufferSize)}
	f.mu.Lock()
	f.subs[cf] = struct{}{}
	f.mu.Unlock()
	return cf
}

func (f *feed) remove(cf *ChangeFeed) {
	f.mu.Lock()
	if _, ok := f.subs[cf]; ok {
		delete(f.subs, cf)
		close(cf.ch)
	}
	f.mu.Unlock()
}

func (f *feed) publish(ch Change) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	for cf := range f.subs {
		select {
		case cf.ch <- ch:
		default:
			f.logger.Warn("change feed full, dropping event",
				"collection", ch.Collection, "action", ch.Action, "id", ch.ID)
		}
	}
}
