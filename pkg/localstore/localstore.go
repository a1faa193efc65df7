// Package localstore is the durable local fallback behind the entity
// repositories. Each entity type lives in its own ordered JSON file; every
// mutation rewrites the whole file before returning, so a crash can lose at
// most the mutation in flight. Lookups are linear scans; the store only ever
// holds a single player's data plus the seeded question set.
package localstore

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

const currentUserFile = "current_user"

// Record is implemented by every entity (via model.UUIDBase).
type Record interface {
	RecordID() string
	StampNew(id string, createdAt time.Time)
}

// Store owns the data directory shared by all collections.
type Store struct {
	dir string
	mu  sync.Mutex
}

func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &Store{dir: dir}, nil
}

// Dir returns the data directory the store persists into.
func (s *Store) Dir() string {
	return s.dir
}

// CurrentUserID returns the persisted current-user reference, if any.
func (s *Store) CurrentUserID() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, err := os.ReadFile(filepath.Join(s.dir, currentUserFile))
	if err != nil {
		return "", false
	}
	id := strings.TrimSpace(string(b))
	return id, id != ""
}

// SetCurrentUserID persists the current-user reference.
func (s *Store) SetCurrentUserID(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return os.WriteFile(filepath.Join(s.dir, currentUserFile), []byte(id), 0644)
}

// ClearCurrentUserID drops the reference. The user record itself stays.
func (s *Store) ClearCurrentUserID() {
	s.mu.Lock()
	defer s.mu.Unlock()
	os.Remove(filepath.Join(s.dir, currentUserFile))
}

// Collection is one ordered entity bucket. Insertion order is preserved and
// never re-sorted.
type Collection[T Record] struct {
	store *Store
	name  string
}

func NewCollection[T Record](store *Store, name string) *Collection[T] {
	return &Collection[T]{store: store, name: name}
}

func (c *Collection[T]) path() string {
	return filepath.Join(c.store.dir, c.name+".json")
}

// load reads the whole bucket. A missing or unreadable file reads as empty.
func (c *Collection[T]) load() []T {
	b, err := os.ReadFile(c.path())
	if err != nil {
		return nil
	}
	var items []T
	if err := json.Unmarshal(b, &items); err != nil {
		return nil
	}
	return items
}

func (c *Collection[T]) persist(items []T) error {
	b, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(c.path(), b, 0644)
}

// List returns the full collection in stored (oldest-first) order.
func (c *Collection[T]) List() []T {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()
	return c.load()
}

// Create assigns an id and creation timestamp, appends the record and
// persists the collection.
func (c *Collection[T]) Create(item T) (T, error) {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	item.StampNew(uuid.New().String(), time.Now().UTC())
	items := append(c.load(), item)
	if err := c.persist(items); err != nil {
		var zero T
		return zero, err
	}
	return item, nil
}

// FindByID returns the first record with the given id.
func (c *Collection[T]) FindByID(id string) (T, bool) {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()
	for _, item := range c.load() {
		if item.RecordID() == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// FindBy returns every record the predicate matches, in stored order.
func (c *Collection[T]) FindBy(match func(T) bool) []T {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()
	var out []T
	for _, item := range c.load() {
		if match(item) {
			out = append(out, item)
		}
	}
	return out
}

// Count reports how many records the bucket holds.
func (c *Collection[T]) Count() int {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()
	return len(c.load())
}

// Update locates the record by id and shallow-merges the patch into it.
// Patch keys are JSON column names; untouched fields keep their values.
// The second return is false when no record matches.
func (c *Collection[T]) Update(id string, patch map[string]interface{}) (T, bool, error) {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	var zero T
	items := c.load()
	for i, item := range items {
		if item.RecordID() != id {
			continue
		}
		merged, err := mergePatch(item, patch)
		if err != nil {
			return zero, true, err
		}
		items[i] = merged.(T)
		if err := c.persist(items); err != nil {
			return zero, true, err
		}
		return items[i], true, nil
	}
	return zero, false, nil
}

// mergePatch overlays patch onto the record's JSON form. This is a shallow
// field overwrite, matching last-write-wins semantics everywhere else.
func mergePatch(item interface{}, patch map[string]interface{}) (interface{}, error) {
	b, err := json.Marshal(item)
	if err != nil {
		return nil, err
	}
	var m map[string]interface{}
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	for k, v := range patch {
		m[k] = v
	}
	b, err = json.Marshal(m)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(b, item); err != nil {
		return nil, err
	}
	return item, nil
}
