package model

// swagger:model UserAnswer
type UserAnswer struct {
	UUIDBase
	UserID         string `gorm:"type:varchar(36);index" json:"user_id"`
	QuestionID     string `gorm:"type:varchar(36);index" json:"question_id"`
	SelectedAnswer int    `gorm:"not null" json:"selected_answer"`
	IsCorrect      bool   `gorm:"not null" json:"is_correct"`
	PointsEarned   int    `gorm:"default:0" json:"points_earned"`
	IsHotQuestion  bool   `gorm:"default:false" json:"is_hot_question"`
}

func (UserAnswer) TableName() string {
	return "user_answers"
}

// AnswerPoints is the full scoring rule: a hot question answered correctly is
// worth 3 points, a regular one 1 point, anything incorrect 0. There is no
// partial credit.
func AnswerPoints(isHot, isCorrect bool) int {
	if !isCorrect {
		return 0
	}
	if isHot {
		return 3
	}
	return 1
}
