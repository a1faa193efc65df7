package localstore

import (
	"testing"
	"time"
)

type testRecord struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Name      string    `json:"name"`
	Score     int       `json:"score"`
}

func (r *testRecord) RecordID() string { return r.ID }

func (r *testRecord) StampNew(id string, createdAt time.Time) {
	if r.ID == "" {
		r.ID = id
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = createdAt
	}
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return store
}

func TestCollectionCreateAssignsIDAndOrder(t *testing.T) {
	store := newTestStore(t)
	col := NewCollection[*testRecord](store, "records")

	first, err := col.Create(&testRecord{Name: "a"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if first.ID == "" {
		t.Fatal("Create left ID empty")
	}
	if first.CreatedAt.IsZero() {
		t.Fatal("Create left CreatedAt zero")
	}

	second, err := col.Create(&testRecord{Name: "b"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if second.ID == first.ID {
		t.Fatal("two records share an id")
	}

	items := col.List()
	if len(items) != 2 {
		t.Fatalf("List returned %d items, want 2", len(items))
	}
	if items[0].Name != "a" || items[1].Name != "b" {
		t.Fatalf("List not in insertion order: %q, %q", items[0].Name, items[1].Name)
	}
}

func TestCollectionFindByID(t *testing.T) {
	store := newTestStore(t)
	col := NewCollection[*testRecord](store, "records")

	created, _ := col.Create(&testRecord{Name: "a"})

	got, ok := col.FindByID(created.ID)
	if !ok {
		t.Fatal("FindByID missed an existing record")
	}
	if got.Name != "a" {
		t.Fatalf("FindByID returned %q, want %q", got.Name, "a")
	}

	if _, ok := col.FindByID("missing"); ok {
		t.Fatal("FindByID found a record that does not exist")
	}
}

func TestCollectionUpdateMergesShallow(t *testing.T) {
	store := newTestStore(t)
	col := NewCollection[*testRecord](store, "records")

	created, _ := col.Create(&testRecord{Name: "a", Score: 3})

	updated, found, err := col.Update(created.ID, map[string]interface{}{"score": 7})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if !found {
		t.Fatal("Update did not find the record")
	}
	if updated.Score != 7 {
		t.Fatalf("Score = %d, want 7", updated.Score)
	}
	if updated.Name != "a" {
		t.Fatalf("untouched field changed: Name = %q", updated.Name)
	}
	if updated.ID != created.ID {
		t.Fatalf("id changed across update: %q -> %q", created.ID, updated.ID)
	}

	_, found, err = col.Update("missing", map[string]interface{}{"score": 1})
	if err != nil {
		t.Fatalf("Update(missing): %v", err)
	}
	if found {
		t.Fatal("Update reported a match for a missing id")
	}
}

func TestCollectionSurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	store, err := New(dir)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	col := NewCollection[*testRecord](store, "records")
	created, _ := col.Create(&testRecord{Name: "durable"})

	reopened, err := New(dir)
	if err != nil {
		t.Fatalf("New (reopen): %v", err)
	}
	again := NewCollection[*testRecord](reopened, "records")
	got, ok := again.FindByID(created.ID)
	if !ok {
		t.Fatal("record lost across reopen")
	}
	if got.Name != "durable" {
		t.Fatalf("Name = %q after reopen, want %q", got.Name, "durable")
	}
}

func TestCurrentUserReference(t *testing.T) {
	store := newTestStore(t)

	if _, ok := store.CurrentUserID(); ok {
		t.Fatal("fresh store reported a current user")
	}

	if err := store.SetCurrentUserID("user-1"); err != nil {
		t.Fatalf("SetCurrentUserID: %v", err)
	}
	id, ok := store.CurrentUserID()
	if !ok || id != "user-1" {
		t.Fatalf("CurrentUserID = %q, %v; want user-1, true", id, ok)
	}

	store.ClearCurrentUserID()
	if _, ok := store.CurrentUserID(); ok {
		t.Fatal("reference survived ClearCurrentUserID")
	}
}

func TestCountEmptyAndMissingFile(t *testing.T) {
	store := newTestStore(t)
	col := NewCollection[*testRecord](store, "records")

	if n := col.Count(); n != 0 {
		t.Fatalf("Count on missing file = %d, want 0", n)
	}
	col.Create(&testRecord{Name: "a"})
	if n := col.Count(); n != 1 {
		t.Fatalf("Count = %d, want 1", n)
	}
}
