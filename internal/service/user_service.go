package service

import (
	"context"

	"truth_buddy_backend/internal/model"
	"truth_buddy_backend/internal/repository"
	"truth_buddy_backend/internal/util"
	"truth_buddy_backend/pkg/logger"

	"go.uber.org/zap"
)

// UserService covers the profile screens: current user plus play statistics,
// profile saves, and the cosmetic login/logout flow.
type UserService struct {
	Users   *repository.UserRepository
	Answers *repository.UserAnswerRepository
}

func NewUserService(users *repository.UserRepository, answers *repository.UserAnswerRepository) *UserService {
	return &UserService{Users: users, Answers: answers}
}

// PlayStats summarize the current user's activity for the stats cards.
type PlayStats struct {
	Points            int `json:"points"`
	Streak            int `json:"streak"`
	QuestionsAnswered int `json:"questions_answered"`
	HotSolved         int `json:"hot_solved"`
}

// Current returns the active user together with their stats.
func (s *UserService) Current(ctx context.Context) (*model.User, *PlayStats) {
	user, _ := s.Users.CurrentUser(ctx)
	if user == nil {
		return nil, nil
	}

	answers, _ := s.Answers.FindByUser(ctx, user.ID)
	return user, &PlayStats{
		Points:            user.Points,
		Streak:            user.CurrentStreak,
		QuestionsAnswered: len(answers),
		HotSolved:         user.HotSolved,
	}
}

// ProfileUpdate carries the editable profile fields. All of them overwrite
// the stored values; the repository does no validation of its own.
type ProfileUpdate struct {
	Nickname     string `json:"nickname" binding:"required"`
	Avatar       string `json:"avatar"`
	FullName     string `json:"full_name"`
	City         string `json:"city"`
	PinCode      string `json:"pin_code"`
	LinkedinURL  string `json:"linkedin_url"`
	InstagramURL string `json:"instagram_url"`
	TwitterURL   string `json:"twitter_url"`
	GithubURL    string `json:"github_url"`
}

// UpdateProfile saves the profile form. Unlike the silent degrade everywhere
// else, a failed save is reported so the profile screen can show its banner.
func (s *UserService) UpdateProfile(ctx context.Context, update ProfileUpdate) (*model.User, error) {
	patch := map[string]interface{}{
		"nickname":      update.Nickname,
		"avatar":        update.Avatar,
		"full_name":     update.FullName,
		"city":          update.City,
		"pin_code":      update.PinCode,
		"linkedin_url":  update.LinkedinURL,
		"instagram_url": update.InstagramURL,
		"twitter_url":   update.TwitterURL,
		"github_url":    update.GithubURL,
	}

	updated, src := s.Users.UpdateCurrentUser(ctx, patch)
	if updated == nil {
		return nil, util.ErrUserNotFound
	}
	logger.Log.Info("profile saved", zap.String("nickname", updated.Nickname),
		zap.String("source", src.String()))
	return updated, nil
}

// Login decodes the posted identity credential without verifying it and
// pre-fills the current user's profile from its claims.
func (s *UserService) Login(ctx context.Context, credential string) (*model.User, error) {
	claims, err := util.DecodeIdentityToken(credential)
	if err != nil {
		return nil, err
	}

	patch := map[string]interface{}{}
	if claims.FullName != "" {
		patch["full_name"] = claims.FullName
	}
	if len(patch) == 0 {
		user, _ := s.Users.CurrentUser(ctx)
		return user, nil
	}

	user, _ := s.Users.UpdateCurrentUser(ctx, patch)
	return user, nil
}

// Logout drops the session; the user record stays behind for the next visit.
func (s *UserService) Logout(ctx context.Context) {
	s.Users.ClearSession(ctx)
}

// Refresh re-reads the current user from the backing store.
func (s *UserService) Refresh(ctx context.Context) *model.User {
	user, _ := s.Users.Refresh(ctx)
	return user
}
