package repository

import (
	"context"

	"truth_buddy_backend/internal/model"
	"truth_buddy_backend/pkg/localstore"
	"truth_buddy_backend/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// VerificationRequestRepository stores content verification requests,
// append-only like answers.
type VerificationRequestRepository struct {
	DB       *gorm.DB
	Local    *localstore.Collection[*model.VerificationRequest]
	Selector *Selector
}

func NewVerificationRequestRepository(db *gorm.DB, store *localstore.Store, selector *Selector) *VerificationRequestRepository {
	return &VerificationRequestRepository{
		DB:       db,
		Local:    localstore.NewCollection[*model.VerificationRequest](store, "verification_requests"),
		Selector: selector,
	}
}

func (r *VerificationRequestRepository) List(ctx context.Context) ([]*model.VerificationRequest, Source) {
	if !r.Selector.UseRemote(ctx) {
		return r.Local.List(), SourceFallback
	}

	var requests []*model.VerificationRequest
	err := r.DB.WithContext(ctx).Order("created_at DESC").Find(&requests).Error
	if err != nil {
		logger.Log.Error("listing verification requests failed", zap.Error(err))
		return r.Local.List(), SourceFallback
	}
	return requests, SourceRemote
}

func (r *VerificationRequestRepository) Create(ctx context.Context, req *model.VerificationRequest) (*model.VerificationRequest, Source) {
	if !r.Selector.UseRemote(ctx) {
		return r.createLocal(req)
	}

	if err := r.DB.WithContext(ctx).Create(req).Error; err != nil {
		logger.Log.Error("creating verification request failed", zap.Error(err))
		return r.createLocal(req)
	}
	return req, SourceRemote
}

func (r *VerificationRequestRepository) createLocal(req *model.VerificationRequest) (*model.VerificationRequest, Source) {
	created, err := r.Local.Create(req)
	if err != nil {
		logger.Log.Error("creating verification request in fallback store failed", zap.Error(err))
		return nil, SourceFallback
	}
	return created, SourceFallback
}

func (r *VerificationRequestRepository) FindByUser(ctx context.Context, userID string) ([]*model.VerificationRequest, Source) {
	if !r.Selector.UseRemote(ctx) {
		return r.Local.FindBy(func(v *model.VerificationRequest) bool { return v.UserID == userID }), SourceFallback
	}

	var requests []*model.VerificationRequest
	err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&requests).Error
	if err != nil {
		logger.Log.Error("finding verification requests by user failed", zap.Error(err))
		return r.Local.FindBy(func(v *model.VerificationRequest) bool { return v.UserID == userID }), SourceFallback
	}
	return requests, SourceRemote
}
