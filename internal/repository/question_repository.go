package repository

import (
	"context"

	"truth_buddy_backend/internal/model"
	"truth_buddy_backend/pkg/localstore"
	"truth_buddy_backend/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// QuestionRepository serves question reads and writes from the database when
// it is reachable, and from the local fallback store otherwise. A remote
// failure degrades that single call only; the resolved storage mode never
// flips mid-run. No method returns an error; callers get the result plus
// the Source that produced it.
type QuestionRepository struct {
	DB       *gorm.DB
	Local    *localstore.Collection[*model.Question]
	Selector *Selector
}

func NewQuestionRepository(db *gorm.DB, store *localstore.Store, selector *Selector) *QuestionRepository {
	return &QuestionRepository{
		DB:       db,
		Local:    localstore.NewCollection[*model.Question](store, "questions"),
		Selector: selector,
	}
}

// List returns every question. The remote path orders newest-first, the
// fallback keeps insertion order; callers must not rely on a consistent
// ordering across modes.
func (r *QuestionRepository) List(ctx context.Context) ([]*model.Question, Source) {
	if !r.Selector.UseRemote(ctx) {
		return r.Local.List(), SourceFallback
	}

	var questions []*model.Question
	err := r.DB.WithContext(ctx).Order("created_at DESC").Find(&questions).Error
	if err != nil {
		logger.Log.Error("listing questions from database failed", zap.Error(err))
		return r.Local.List(), SourceFallback
	}
	return questions, SourceRemote
}

func (r *QuestionRepository) Create(ctx context.Context, q *model.Question) (*model.Question, Source) {
	if !r.Selector.UseRemote(ctx) {
		return r.createLocal(q)
	}

	if err := r.DB.WithContext(ctx).Create(q).Error; err != nil {
		logger.Log.Error("creating question in database failed", zap.Error(err))
		return r.createLocal(q)
	}
	return q, SourceRemote
}

func (r *QuestionRepository) createLocal(q *model.Question) (*model.Question, Source) {
	created, err := r.Local.Create(q)
	if err != nil {
		logger.Log.Error("creating question in fallback store failed", zap.Error(err))
		return nil, SourceFallback
	}
	return created, SourceFallback
}

// FindByID returns nil when no question matches; absence is not a fault.
func (r *QuestionRepository) FindByID(ctx context.Context, id string) (*model.Question, Source) {
	if !r.Selector.UseRemote(ctx) {
		q, _ := r.Local.FindByID(id)
		return q, SourceFallback
	}

	var q model.Question
	err := r.DB.WithContext(ctx).First(&q, "id = ?", id).Error
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			logger.Log.Error("finding question in database failed", zap.Error(err))
			q, _ := r.Local.FindByID(id)
			return q, SourceFallback
		}
		return nil, SourceRemote
	}
	return &q, SourceRemote
}

// Update shallow-merges patch (keyed by column name) into the question.
// Returns nil when no record matches.
func (r *QuestionRepository) Update(ctx context.Context, id string, patch map[string]interface{}) (*model.Question, Source) {
	if !r.Selector.UseRemote(ctx) {
		return r.updateLocal(id, patch)
	}

	tx := r.DB.WithContext(ctx).Model(&model.Question{}).Where("id = ?", id).Updates(patch)
	if tx.Error != nil {
		logger.Log.Error("updating question in database failed", zap.Error(tx.Error))
		return r.updateLocal(id, patch)
	}
	if tx.RowsAffected == 0 {
		return nil, SourceRemote
	}
	q, _ := r.FindByID(ctx, id)
	return q, SourceRemote
}

func (r *QuestionRepository) updateLocal(id string, patch map[string]interface{}) (*model.Question, Source) {
	q, found, err := r.Local.Update(id, patch)
	if err != nil {
		logger.Log.Error("updating question in fallback store failed", zap.Error(err))
		return nil, SourceFallback
	}
	if !found {
		return nil, SourceFallback
	}
	return q, SourceFallback
}
