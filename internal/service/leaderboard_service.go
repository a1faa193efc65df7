package service

import (
	"context"
	"sort"
	"strings"

	"truth_buddy_backend/internal/model"
	"truth_buddy_backend/internal/repository"
)

// LeaderboardService ranks players by points. Users with no points or no
// nickname are hidden; the rest are sorted best first regardless of which
// store served them (the fallback store keeps insertion order).
type LeaderboardService struct {
	Users *repository.UserRepository
}

func NewLeaderboardService(users *repository.UserRepository) *LeaderboardService {
	return &LeaderboardService{Users: users}
}

func (s *LeaderboardService) Global(ctx context.Context) ([]*model.User, repository.Source) {
	users, src := s.Users.List(ctx)
	return rank(users), src
}

// ByCity ranks only players from the given city, matched case-insensitively.
func (s *LeaderboardService) ByCity(ctx context.Context, city string) ([]*model.User, repository.Source) {
	users, src := s.Users.List(ctx)

	var local []*model.User
	for _, u := range users {
		if u.City != "" && strings.EqualFold(u.City, city) {
			local = append(local, u)
		}
	}
	return rank(local), src
}

func rank(users []*model.User) []*model.User {
	var ranked []*model.User
	for _, u := range users {
		if u.Points > 0 && u.Nickname != "" {
			ranked = append(ranked, u)
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Points > ranked[j].Points
	})
	return ranked
}
