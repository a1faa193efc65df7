package service

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"time"

	"truth_buddy_backend/internal/model"
	"truth_buddy_backend/internal/repository"
	"truth_buddy_backend/internal/util"
	"truth_buddy_backend/pkg/logger"
	"truth_buddy_backend/pkg/monitoring"

	"go.uber.org/zap"
)

const (
	reliableAnalysis   = "This information appears to be factual and is supported by multiple reliable sources."
	unreliableAnalysis = "This information may be misleading or false. Please verify with additional sources."
)

// VerificationService runs the (simulated) content reliability check and
// records the request. Attachments go through the storage provider.
type VerificationService struct {
	Requests *repository.VerificationRequestRepository
	Users    *repository.UserRepository
	Storage  *StorageService
	rand     *rand.Rand
}

func NewVerificationService(requests *repository.VerificationRequestRepository, users *repository.UserRepository, storage *StorageService) *VerificationService {
	return &VerificationService{
		Requests: requests,
		Users:    users,
		Storage:  storage,
		rand:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Attachment is an optional uploaded file to verify.
type Attachment struct {
	Name        string
	Reader      io.Reader
	Size        int64
	ContentType string
}

// Verify analyses the submitted content and persists the request. At least
// one of contentText or attachment must be present.
func (s *VerificationService) Verify(ctx context.Context, contentText string, attachment *Attachment) (*model.VerificationRequest, error) {
	if contentText == "" && attachment == nil {
		return nil, util.ErrNothingToVerify
	}

	user, _ := s.Users.CurrentUser(ctx)
	if user == nil {
		return nil, util.ErrUserNotFound
	}

	req := &model.VerificationRequest{
		UserID:      user.ID,
		ContentText: contentText,
	}

	if attachment != nil {
		req.FileName = attachment.Name
		stored := fmt.Sprintf("verify/%s/%d_%s", user.ID, time.Now().UnixNano(), attachment.Name)
		url, err := s.Storage.Upload(ctx, stored, attachment.Reader, attachment.Size, attachment.ContentType)
		if err != nil {
			// The analysis still runs; the request just carries no file URL.
			logger.Log.Error("storing verification attachment failed", zap.Error(err))
		} else {
			req.FileURL = url
		}
	}

	req.VerificationResult = s.analyze()

	verdict := "unreliable"
	if req.VerificationResult.IsReliable {
		verdict = "reliable"
	}
	monitoring.VerificationsRun.WithLabelValues(verdict).Inc()

	created, src := s.Requests.Create(ctx, req)
	if created == nil {
		created = req
	}
	logger.Log.Info("verification request recorded",
		zap.String("user_id", user.ID),
		zap.Bool("reliable", created.VerificationResult.IsReliable),
		zap.String("source", src.String()))
	return created, nil
}

// analyze fabricates a verification verdict. The original product shipped
// this as a demo stand-in for a real fact-checking backend; confidence runs
// 70-100%, and reliable verdicts cite 2-4 sources where unreliable ones
// cite a single source.
func (s *VerificationService) analyze() *model.VerificationResult {
	isReliable := s.rand.Float64() > 0.5

	result := &model.VerificationResult{
		IsReliable: isReliable,
		Confidence: s.rand.Intn(30) + 70,
		Sources:    1,
		Analysis:   unreliableAnalysis,
	}
	if isReliable {
		result.Sources = s.rand.Intn(3) + 2
		result.Analysis = reliableAnalysis
	}
	return result
}

// History lists the current user's past verification requests.
func (s *VerificationService) History(ctx context.Context) ([]*model.VerificationRequest, error) {
	user, _ := s.Users.CurrentUser(ctx)
	if user == nil {
		return nil, util.ErrUserNotFound
	}
	requests, _ := s.Requests.FindByUser(ctx, user.ID)
	return requests, nil
}
