package service

import (
	"context"

	"truth_buddy_backend/internal/model"
	"truth_buddy_backend/internal/repository"
	"truth_buddy_backend/internal/util"
	"truth_buddy_backend/pkg/logger"

	"go.uber.org/zap"
)

const regularFeedSize = 6

// QuestionService assembles the question feeds and seeds the starter pack.
type QuestionService struct {
	Questions *repository.QuestionRepository
}

func NewQuestionService(questions *repository.QuestionRepository) *QuestionService {
	return &QuestionService{Questions: questions}
}

// HomeFeed is what the home screen renders: today's hot carousel plus a
// handful of regular questions.
type HomeFeed struct {
	Hot     []*model.Question `json:"hot"`
	Regular []*model.Question `json:"regular"`
	Source  string            `json:"source"`
}

func (s *QuestionService) HomeFeed(ctx context.Context) *HomeFeed {
	questions, src := s.Questions.List(ctx)
	today := util.TodayDate()

	feed := &HomeFeed{Source: src.String()}
	for _, q := range questions {
		if q.HotFor(today) && len(feed.Hot) < hotSetSize {
			feed.Hot = append(feed.Hot, q)
		} else if !q.IsHot && len(feed.Regular) < regularFeedSize {
			feed.Regular = append(feed.Regular, q)
		}
	}
	return feed
}

// List returns every question from the active store.
func (s *QuestionService) List(ctx context.Context) ([]*model.Question, repository.Source) {
	return s.Questions.List(ctx)
}

// EnsureSeeded inserts the sample question pack when the active store holds
// no questions yet. Going through the repository means whichever store is
// live (database or fallback) receives the seed rows.
func (s *QuestionService) EnsureSeeded(ctx context.Context) {
	existing, src := s.Questions.List(ctx)
	if len(existing) > 0 {
		logger.Log.Debug("questions already seeded",
			zap.Int("count", len(existing)), zap.String("source", src.String()))
		return
	}

	today := util.TodayDate()
	seeded := 0
	for _, q := range sampleQuestions(today) {
		if created, _ := s.Questions.Create(ctx, q); created != nil {
			seeded++
		}
	}
	logger.Log.Info("seeded sample questions",
		zap.Int("count", seeded), zap.String("source", src.String()))
}
