package repository

import (
	"context"

	"truth_buddy_backend/internal/model"
	"truth_buddy_backend/pkg/localstore"
	"truth_buddy_backend/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// UserAnswerRepository stores answer rows. They are append-only: nothing in
// the system updates or deletes a recorded answer.
type UserAnswerRepository struct {
	DB       *gorm.DB
	Local    *localstore.Collection[*model.UserAnswer]
	Selector *Selector
}

func NewUserAnswerRepository(db *gorm.DB, store *localstore.Store, selector *Selector) *UserAnswerRepository {
	return &UserAnswerRepository{
		DB:       db,
		Local:    localstore.NewCollection[*model.UserAnswer](store, "user_answers"),
		Selector: selector,
	}
}

func (r *UserAnswerRepository) List(ctx context.Context) ([]*model.UserAnswer, Source) {
	if !r.Selector.UseRemote(ctx) {
		return r.Local.List(), SourceFallback
	}

	var answers []*model.UserAnswer
	err := r.DB.WithContext(ctx).Order("created_at DESC").Find(&answers).Error
	if err != nil {
		logger.Log.Error("listing answers from database failed", zap.Error(err))
		return r.Local.List(), SourceFallback
	}
	return answers, SourceRemote
}

func (r *UserAnswerRepository) Create(ctx context.Context, a *model.UserAnswer) (*model.UserAnswer, Source) {
	if !r.Selector.UseRemote(ctx) {
		return r.createLocal(a)
	}

	if err := r.DB.WithContext(ctx).Create(a).Error; err != nil {
		logger.Log.Error("creating answer in database failed", zap.Error(err))
		return r.createLocal(a)
	}
	return a, SourceRemote
}

func (r *UserAnswerRepository) createLocal(a *model.UserAnswer) (*model.UserAnswer, Source) {
	created, err := r.Local.Create(a)
	if err != nil {
		logger.Log.Error("creating answer in fallback store failed", zap.Error(err))
		return nil, SourceFallback
	}
	return created, SourceFallback
}

// FindByUser returns every answer the user has recorded, newest-first on the
// remote path.
func (r *UserAnswerRepository) FindByUser(ctx context.Context, userID string) ([]*model.UserAnswer, Source) {
	if !r.Selector.UseRemote(ctx) {
		return r.Local.FindBy(func(a *model.UserAnswer) bool { return a.UserID == userID }), SourceFallback
	}

	var answers []*model.UserAnswer
	err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&answers).Error
	if err != nil {
		logger.Log.Error("finding answers by user failed", zap.Error(err))
		return r.Local.FindBy(func(a *model.UserAnswer) bool { return a.UserID == userID }), SourceFallback
	}
	return answers, SourceRemote
}

func (r *UserAnswerRepository) FindByQuestion(ctx context.Context, questionID string) ([]*model.UserAnswer, Source) {
	if !r.Selector.UseRemote(ctx) {
		return r.Local.FindBy(func(a *model.UserAnswer) bool { return a.QuestionID == questionID }), SourceFallback
	}

	var answers []*model.UserAnswer
	err := r.DB.WithContext(ctx).
		Where("question_id = ?", questionID).
		Order("created_at DESC").
		Find(&answers).Error
	if err != nil {
		logger.Log.Error("finding answers by question failed", zap.Error(err))
		return r.Local.FindBy(func(a *model.UserAnswer) bool { return a.QuestionID == questionID }), SourceFallback
	}
	return answers, SourceRemote
}
