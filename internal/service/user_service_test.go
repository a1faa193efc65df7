package service

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"testing"

	"truth_buddy_backend/internal/util"
)

func TestCurrentReportsPlayStats(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	q := env.addQuestion(t, 0, true)
	if _, err := env.answerService().Submit(ctx, q.ID, 0); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	svc := NewUserService(env.users, env.answers)
	user, stats := svc.Current(ctx)
	if user == nil || stats == nil {
		t.Fatal("Current returned nil")
	}
	if stats.Points != 3 {
		t.Fatalf("stats points = %d, want 3", stats.Points)
	}
	if stats.QuestionsAnswered != 1 {
		t.Fatalf("stats answered = %d, want 1", stats.QuestionsAnswered)
	}
	if stats.HotSolved != 1 {
		t.Fatalf("stats hot solved = %d, want 1", stats.HotSolved)
	}
	if stats.Streak != 1 {
		t.Fatalf("stats streak = %d, want 1", stats.Streak)
	}
}

func TestUpdateProfileOverwritesFields(t *testing.T) {
	env := newTestEnv(t)
	svc := NewUserService(env.users, env.answers)
	ctx := context.Background()

	updated, err := svc.UpdateProfile(ctx, ProfileUpdate{
		Nickname: "QuizHero",
		City:     "Mumbai",
		Avatar:   "🦉",
	})
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if updated.Nickname != "QuizHero" || updated.City != "Mumbai" || updated.Avatar != "🦉" {
		t.Fatalf("profile not saved: %+v", updated)
	}

	// Blank optional fields overwrite too; only nickname is mandatory.
	updated, err = svc.UpdateProfile(ctx, ProfileUpdate{Nickname: "QuizHero"})
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if updated.City != "" {
		t.Fatalf("city survived a blank overwrite: %q", updated.City)
	}
}

// unsignedToken builds a JWT-shaped credential with the given claims and no
// valid signature, which is all the cosmetic login flow looks at.
func unsignedToken(t *testing.T, claims map[string]interface{}) string {
	t.Helper()
	enc := func(v interface{}) string {
		b, err := json.Marshal(v)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		return base64.RawURLEncoding.EncodeToString(b)
	}
	header := map[string]interface{}{"alg": "RS256", "typ": "JWT"}
	return enc(header) + "." + enc(claims) + ".signature"
}

func TestLoginPrefillsProfileFromClaims(t *testing.T) {
	env := newTestEnv(t)
	svc := NewUserService(env.users, env.answers)
	ctx := context.Background()

	credential := unsignedToken(t, map[string]interface{}{
		"sub":  "google-user-1",
		"name": "Asha Mehta",
	})

	user, err := svc.Login(ctx, credential)
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if user.FullName != "Asha Mehta" {
		t.Fatalf("FullName = %q, want Asha Mehta", user.FullName)
	}
}

func TestLoginRejectsGarbageCredential(t *testing.T) {
	env := newTestEnv(t)
	svc := NewUserService(env.users, env.answers)

	if _, err := svc.Login(context.Background(), "not-a-token"); !errors.Is(err, util.ErrInvalidCredential) {
		t.Fatalf("err = %v, want ErrInvalidCredential", err)
	}
}

func TestLogoutDropsSessionOnly(t *testing.T) {
	env := newTestEnv(t)
	svc := NewUserService(env.users, env.answers)
	ctx := context.Background()

	before, _ := svc.Current(ctx)
	svc.Logout(ctx)

	after, _ := svc.Current(ctx)
	if after == nil {
		t.Fatal("no user after logout")
	}
	if after.ID == before.ID {
		t.Fatal("logout kept the same identity")
	}
}
