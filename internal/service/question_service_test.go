package service

import (
	"context"
	"fmt"
	"testing"

	"truth_buddy_backend/internal/model"
	"truth_buddy_backend/internal/util"
)

func TestEnsureSeededPopulatesEmptyStore(t *testing.T) {
	env := newTestEnv(t)
	svc := NewQuestionService(env.questions)
	ctx := context.Background()

	svc.EnsureSeeded(ctx)
	first, _ := svc.List(ctx)
	if len(first) == 0 {
		t.Fatal("EnsureSeeded left the store empty")
	}

	// A second call must not duplicate the pack.
	svc.EnsureSeeded(ctx)
	second, _ := svc.List(ctx)
	if len(second) != len(first) {
		t.Fatalf("second seed changed count: %d -> %d", len(first), len(second))
	}
}

func TestHomeFeedSplitsHotAndRegular(t *testing.T) {
	env := newTestEnv(t)
	svc := NewQuestionService(env.questions)
	ctx := context.Background()
	today := util.TodayDate()

	for i := 0; i < 3; i++ {
		env.questions.Create(ctx, &model.Question{
			Title:   fmt.Sprintf("hot %d", i),
			Options: model.StringList{"a", "b"},
			IsHot:   true,
			HotDate: today,
		})
	}
	// Yesterday's hot question belongs to neither list.
	env.questions.Create(ctx, &model.Question{
		Title:   "stale hot",
		Options: model.StringList{"a", "b"},
		IsHot:   true,
		HotDate: "2020-01-01",
	})
	for i := 0; i < regularFeedSize+2; i++ {
		env.questions.Create(ctx, &model.Question{
			Title:   fmt.Sprintf("regular %d", i),
			Options: model.StringList{"a", "b"},
		})
	}

	feed := svc.HomeFeed(ctx)
	if len(feed.Hot) != 3 {
		t.Fatalf("hot feed has %d questions, want 3", len(feed.Hot))
	}
	if len(feed.Regular) != regularFeedSize {
		t.Fatalf("regular feed has %d questions, want %d", len(feed.Regular), regularFeedSize)
	}
	for _, q := range feed.Hot {
		if !q.HotFor(today) {
			t.Fatalf("hot feed contains %q which is not hot today", q.Title)
		}
	}
	for _, q := range feed.Regular {
		if q.IsHot {
			t.Fatalf("regular feed contains hot question %q", q.Title)
		}
	}
	if feed.Source != "fallback" {
		t.Fatalf("feed source = %q, want fallback", feed.Source)
	}
}

func TestSampleQuestionsShape(t *testing.T) {
	pack := sampleQuestions("2026-08-30")
	if len(pack) < 10 {
		t.Fatalf("sample pack has %d questions", len(pack))
	}

	hot := 0
	for _, q := range pack {
		if q.HotFor("2026-08-30") {
			hot++
		}
		if q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Options) {
			t.Fatalf("%q has correct_answer %d outside its %d options",
				q.Title, q.CorrectAnswer, len(q.Options))
		}
	}
	if hot == 0 {
		t.Fatal("sample pack carries no hot questions for the seed day")
	}
}
