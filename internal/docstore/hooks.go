package docstore

import "time"

// Hook mutates a document in place before it is persisted. Hooks never
// reject a write.
type Hook func(doc Document, now time.Time)

// StampCreatedAt sets created_at to the current time unless the caller
// already supplied one. Runs pre-insert only, so created_at is written
// exactly once per document.
func StampCreatedAt(doc Document, now time.Time) {
	if _, ok := doc["created_at"]; !ok {
		doc["created_at"] = Timestamp(now)
	}
}

// StampUpdatedAt unconditionally sets updated_at to the current time. Runs
// pre-save, covering both the initial insert and every later update.
func StampUpdatedAt(doc Document, now time.Time) {
	doc["updated_at"] = Timestamp(now)
}
