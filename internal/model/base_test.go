package model

import "testing"

func TestBeforeCreateAssignsID(t *testing.T) {
	var b UUIDBase
	if err := b.BeforeCreate(nil); err != nil {
		t.Fatalf("BeforeCreate: %v", err)
	}
	if b.ID == "" {
		t.Fatal("BeforeCreate left ID empty")
	}

	kept := UUIDBase{ID: "preassigned"}
	if err := kept.BeforeCreate(nil); err != nil {
		t.Fatalf("BeforeCreate: %v", err)
	}
	if kept.ID != "preassigned" {
		t.Fatalf("BeforeCreate overwrote ID: %q", kept.ID)
	}
}
