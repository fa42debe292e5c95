package docstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/larder-app/larder/internal/validate"
)

// Collection is a schema-validated, indexed document store for one entity
// kind. Writes are serialized per collection; subscribers are notified
// asynchronously after each durable commit.
type Collection struct {
	name    string
	db      *sql.DB
	schema  *validate.Schema
	indexes []string

	insertHooks []Hook
	saveHooks   []Hook
	now         func() time.Time

	mu       sync.Mutex
	notifier *notifier
	onChange func(Change)
	logger   *slog.Logger
}

func newCollection(name string, db *sql.DB, schema *validate.Schema, indexes []string, onChange func(Change), logger *slog.Logger) *Collection {
	return &Collection{
		name:        name,
		db:          db,
		schema:      schema,
		indexes:     indexes,
		insertHooks: []Hook{StampCreatedAt},
		saveHooks:   []Hook{StampUpdatedAt},
		now:         time.Now,
		notifier:    newNotifier(),
		onChange:    onChange,
		logger:      logger,
	}
}

// Name returns the collection name.
func (c *Collection) Name() string { return c.name }

// Insert validates payload against the entity schema, stamps timestamps,
// and persists a new document. The payload must carry a non-empty id that
// is unique within the collection.
func (c *Collection) Insert(ctx context.Context, payload Document) (Document, error) {
	res := c.schema.ValidateInsert(payload)
	if !res.Valid {
		return nil, &ValidationError{Entity: c.schema.Entity, Key: res.ErrKey}
	}
	doc := Document(res.Value)
	if doc.ID() == "" {
		return nil, &ValidationError{Entity: c.schema.Entity, Key: c.schema.Fallback}
	}

	c.mu.Lock()
	now := c.now()
	for _, h := range c.insertHooks {
		h(doc, now)
	}
	for _, h := range c.saveHooks {
		h(doc, now)
	}

	var exists int
	err := c.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM documents WHERE collection = ? AND id = ?`,
		c.name, doc.ID(),
	).Scan(&exists)
	if err != nil {
		c.mu.Unlock()
		return nil, fmt.Errorf("check id: %w", err)
	}
	if exists > 0 {
		c.mu.Unlock()
		return nil, fmt.Errorf("%s %q: %w", c.name, doc.ID(), ErrDuplicateKey)
	}

	body, err := json.Marshal(doc)
	if err != nil {
		c.mu.Unlock()
		return nil, fmt.Errorf("marshal document: %w", err)
	}
	_, err = c.db.ExecContext(ctx,
		`INSERT INTO documents (collection, id, body) VALUES (?, ?, ?)`,
		c.name, doc.ID(), string(body),
	)
	c.mu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("insert document: %w", err)
	}

	c.committed(Change{Collection: c.name, Action: ActionInsert, ID: doc.ID()})
	return doc, nil
}

// Update merges a validated partial payload into an existing document and
// advances updated_at. The id and created_at fields are immutable.
func (c *Collection) Update(ctx context.Context, id string, partial Document) (Document, error) {
	res := c.schema.ValidateUpdate(partial)
	if !res.Valid {
		return nil, &ValidationError{Entity: c.schema.Entity, Key: res.ErrKey}
	}

	c.mu.Lock()
	doc, err := c.get(ctx, id)
	if err != nil {
		c.mu.Unlock()
		return nil, err
	}
	for k, v := range res.Value {
		if k == "id" || k == "created_at" {
			continue
		}
		doc[k] = v
	}
	now := c.now()
	for _, h := range c.saveHooks {
		h(doc, now)
	}

	body, err := json.Marshal(doc)
	if err != nil {
		c.mu.Unlock()
		return nil, fmt.Errorf("marshal document: %w", err)
	}
	_, err = c.db.ExecContext(ctx,
		`UPDATE documents SET body = ? WHERE collection = ? AND id = ?`,
		string(body), c.name, id,
	)
	c.mu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("update document: %w", err)
	}

	c.committed(Change{Collection: c.name, Action: ActionUpdate, ID: id})
	return doc, nil
}

// Get returns the document with the given id.
func (c *Collection) Get(ctx context.Context, id string) (Document, error) {
	return c.get(ctx, id)
}

func (c *Collection) get(ctx context.Context, id string) (Document, error) {
	var body string
	err := c.db.QueryRowContext(ctx,
		`SELECT body FROM documents WHERE collection = ? AND id = ?`,
		c.name, id,
	).Scan(&body)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%s %q: %w", c.name, id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get document: %w", err)
	}
	var doc Document
	if err := json.Unmarshal([]byte(body), &doc); err != nil {
		return nil, fmt.Errorf("unmarshal document: %w", err)
	}
	return doc, nil
}

// Delete removes the document with the given id.
func (c *Collection) Delete(ctx context.Context, id string) error {
	c.mu.Lock()
	result, err := c.db.ExecContext(ctx,
		`DELETE FROM documents WHERE collection = ? AND id = ?`,
		c.name, id,
	)
	c.mu.Unlock()
	if err != nil {
		return fmt.Errorf("delete document: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%s %q: %w", c.name, id, ErrNotFound)
	}
	c.committed(Change{Collection: c.name, Action: ActionDelete, ID: id})
	return nil
}

// Find returns the current set of documents matching q, in insertion
// order. Conditions on declared index fields are compiled into the SQL
// query; the rest are filtered during the scan.
func (c *Collection) Find(ctx context.Context, q Query) ([]Document, error) {
	builder := sq.Select("body").
		From("documents").
		Where(sq.Eq{"collection": c.name}).
		OrderBy("rowid ASC")

	var scan Query
	for _, cond := range q {
		if slices.Contains(c.indexes, cond.Field) {
			expr := fmt.Sprintf("json_extract(body, '$.%s') %s ?", cond.Field, cond.Op)
			builder = builder.Where(sq.Expr(expr, cond.Value))
		} else {
			scan = append(scan, cond)
		}
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}
	rows, err := c.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("find documents: %w", err)
	}
	defer rows.Close()

	var docs []Document
	for rows.Next() {
		var body string
		if err := rows.Scan(&body); err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		var doc Document
		if err := json.Unmarshal([]byte(body), &doc); err != nil {
			return nil, fmt.Errorf("unmarshal document: %w", err)
		}
		if scan.Matches(doc) {
			docs = append(docs, doc)
		}
	}
	return docs, rows.Err()
}

// committed fans a change out to live subscriptions and the store-wide
// feed. It runs strictly after the write is durable.
func (c *Collection) committed(ch Change) {
	c.notifier.commit()
	if c.onChange != nil {
		c.onChange(ch)
	}
}
