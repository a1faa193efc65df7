package model

// swagger:model User
type User struct {
	UUIDBase
	Nickname                string     `gorm:"size:100" json:"nickname"`
	Avatar                  string     `gorm:"size:10" json:"avatar"`
	FullName                string     `gorm:"size:200" json:"full_name"`
	City                    string     `gorm:"size:100;index" json:"city"`
	PinCode                 string     `gorm:"size:20" json:"pin_code"`
	LinkedinURL             string     `gorm:"size:200" json:"linkedin_url"`
	InstagramURL            string     `gorm:"size:200" json:"instagram_url"`
	TwitterURL              string     `gorm:"size:200" json:"twitter_url"`
	GithubURL               string     `gorm:"size:200" json:"github_url"`
	Points                  int        `gorm:"default:0;index:idx_users_points,sort:desc" json:"points"`
	CurrentStreak           int        `gorm:"default:0" json:"current_streak"`
	NumberOfQuestionsSolved int        `gorm:"default:0" json:"number_of_questions_solved"`
	HotSolved               int        `gorm:"default:0" json:"hot_solved"`
	AttemptedQuestions      StringList `gorm:"type:json" json:"attempted_questions"`
	HasAttemptedTodayHot    bool       `gorm:"default:false" json:"has_attempted_today_hot"`
}

func (User) TableName() string {
	return "users"
}

// HasAttempted reports whether the question was already scored for this user.
// Callers use it as an advisory check; AnswerService enforces it again before
// crediting points.
func (u *User) HasAttempted(questionID string) bool {
	return u.AttemptedQuestions.Contains(questionID)
}
