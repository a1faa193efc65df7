package service

import (
	"context"
	"time"

	"truth_buddy_backend/internal/model"
	"truth_buddy_backend/internal/repository"
	"truth_buddy_backend/internal/util"
	"truth_buddy_backend/pkg/logger"
	"truth_buddy_backend/pkg/monitoring"

	"go.uber.org/zap"
)

// hotSetSize is how many hot questions rotate per day; finishing the whole
// set flags the user as done with today's hot round.
const hotSetSize = 5

// AnswerService scores submitted answers. Double-crediting is enforced here,
// not by callers: a question already present in attempted_questions, or with
// a prior recorded answer for the same user, earns nothing and records no
// new row.
type AnswerService struct {
	Users     *repository.UserRepository
	Questions *repository.QuestionRepository
	Answers   *repository.UserAnswerRepository
}

func NewAnswerService(users *repository.UserRepository, questions *repository.QuestionRepository, answers *repository.UserAnswerRepository) *AnswerService {
	return &AnswerService{Users: users, Questions: questions, Answers: answers}
}

// SubmitResult is what the client receives after answering.
type SubmitResult struct {
	Answer          *model.UserAnswer `json:"answer,omitempty"`
	User            *model.User       `json:"user"`
	AlreadyAnswered bool              `json:"already_answered"`
}

// Submit records an answer for the current user and applies the scoring rule:
// hot correct = 3, regular correct = 1, incorrect = 0.
func (s *AnswerService) Submit(ctx context.Context, questionID string, selected int) (*SubmitResult, error) {
	user, _ := s.Users.CurrentUser(ctx)
	if user == nil {
		return nil, util.ErrUserNotFound
	}

	question, _ := s.Questions.FindByID(ctx, questionID)
	if question == nil {
		return nil, util.ErrQuestionNotFound
	}
	if selected < 0 || selected >= len(question.Options) {
		return nil, util.ErrInvalidAnswer
	}

	priorAnswers, _ := s.Answers.FindByUser(ctx, user.ID)
	if user.HasAttempted(questionID) || hasAnswered(priorAnswers, questionID) {
		logger.Log.Debug("question already attempted, no points awarded",
			zap.String("question_id", questionID), zap.String("user_id", user.ID))
		monitoring.AnswersSubmitted.WithLabelValues("repeat").Inc()
		return &SubmitResult{User: user, AlreadyAnswered: true}, nil
	}

	isCorrect := selected == question.CorrectAnswer
	points := model.AnswerPoints(question.IsHot, isCorrect)

	answer, _ := s.Answers.Create(ctx, &model.UserAnswer{
		UserID:         user.ID,
		QuestionID:     question.ID,
		SelectedAnswer: selected,
		IsCorrect:      isCorrect,
		PointsEarned:   points,
		IsHotQuestion:  question.IsHot,
	})

	patch := map[string]interface{}{
		"points":                     user.Points + points,
		"number_of_questions_solved": user.NumberOfQuestionsSolved + 1,
		"attempted_questions":        append(append(model.StringList{}, user.AttemptedQuestions...), question.ID),
		"current_streak":             nextStreak(user.CurrentStreak, priorAnswers),
	}
	if question.IsHot {
		hotSolved := user.HotSolved + 1
		patch["hot_solved"] = hotSolved
		if hotSolved >= hotSetSize {
			patch["has_attempted_today_hot"] = true
		}
	}

	updated, _ := s.Users.UpdateCurrentUser(ctx, patch)
	if updated == nil {
		updated = user
	}

	outcome := "incorrect"
	if isCorrect {
		outcome = "correct"
	}
	monitoring.AnswersSubmitted.WithLabelValues(outcome).Inc()

	return &SubmitResult{Answer: answer, User: updated}, nil
}

func hasAnswered(answers []*model.UserAnswer, questionID string) bool {
	for _, a := range answers {
		if a.QuestionID == questionID {
			return true
		}
	}
	return false
}

// nextStreak derives the daily streak from the date of the most recent prior
// answer: answered yesterday extends the streak, answered earlier (or never)
// restarts it at 1, and a same-day answer leaves it alone.
func nextStreak(current int, priorAnswers []*model.UserAnswer) int {
	var latest time.Time
	for _, a := range priorAnswers {
		if a.CreatedAt.After(latest) {
			latest = a.CreatedAt
		}
	}
	if latest.IsZero() {
		return 1
	}

	switch latest.Local().Format("2006-01-02") {
	case util.TodayDate():
		if current < 1 {
			return 1
		}
		return current
	case time.Now().AddDate(0, 0, -1).Format("2006-01-02"):
		return current + 1
	default:
		return 1
	}
}
