package repository

import (
	"context"
	"testing"

	"truth_buddy_backend/internal/model"
	"truth_buddy_backend/internal/session"
	"truth_buddy_backend/pkg/localstore"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// deadDB opens a gorm handle whose queries always fail: the DSN points at a
// port nothing listens on, and version initialization is skipped so Open
// itself never dials.
func deadDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(mysql.New(mysql.Config{
		DSN:                       "root:@tcp(127.0.0.1:1)/truth_buddy?charset=utf8mb4&parseTime=true",
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		Logger:               gormlogger.Default.LogMode(gormlogger.Silent),
		DisableAutomaticPing: true,
	})
	if err != nil {
		t.Fatalf("gorm.Open: %v", err)
	}
	return db
}

func TestRemoteFailureDegradesSingleCall(t *testing.T) {
	store, err := localstore.New(t.TempDir())
	if err != nil {
		t.Fatalf("localstore.New: %v", err)
	}
	selector := NewSelector(&countingProber{})
	repo := NewQuestionRepository(deadDB(t), store, selector)
	ctx := context.Background()

	if !selector.UseRemote(ctx) {
		t.Fatal("selector resolved to fallback with a healthy prober")
	}

	created, src := repo.Create(ctx, &model.Question{
		Title:   "degraded create",
		Options: model.StringList{"a", "b"},
	})
	if created == nil {
		t.Fatal("Create returned nil when the fallback store could serve it")
	}
	if src != SourceFallback {
		t.Fatalf("degraded Create source = %v, want fallback", src)
	}

	found, src := repo.FindByID(ctx, created.ID)
	if found == nil {
		t.Fatal("FindByID lost the record the degraded Create wrote")
	}
	if src != SourceFallback {
		t.Fatalf("degraded FindByID source = %v, want fallback", src)
	}

	listed, src := repo.List(ctx)
	if src != SourceFallback {
		t.Fatalf("degraded List source = %v, want fallback", src)
	}
	if len(listed) != 1 {
		t.Fatalf("degraded List returned %d questions, want 1", len(listed))
	}

	// Per-call degrade must not flip the resolved mode.
	if !selector.UseRemote(ctx) {
		t.Fatal("resolved mode flipped to fallback after remote errors")
	}
}

func TestRemoteFailureDegradesUserWrites(t *testing.T) {
	store, err := localstore.New(t.TempDir())
	if err != nil {
		t.Fatalf("localstore.New: %v", err)
	}
	selector := NewSelector(&countingProber{})
	repo := NewUserRepository(deadDB(t), store, selector, session.NewCache(nil))
	ctx := context.Background()

	// Bootstrap goes through the remote path, errors, and lands in the
	// fallback store; the session and reference still work.
	user, src := repo.CurrentUser(ctx)
	if user == nil {
		t.Fatal("CurrentUser returned nil under remote failure")
	}
	if src != SourceFallback {
		t.Fatalf("bootstrap source = %v, want fallback", src)
	}

	updated, src := repo.UpdateCurrentUser(ctx, map[string]interface{}{"nickname": "Survivor"})
	if updated == nil || updated.Nickname != "Survivor" {
		t.Fatalf("degraded update failed: %+v", updated)
	}
	if src != SourceFallback {
		t.Fatalf("degraded update source = %v, want fallback", src)
	}

	if !selector.UseRemote(ctx) {
		t.Fatal("resolved mode flipped to fallback after remote errors")
	}
}
