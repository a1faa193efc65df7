package model

type QuestionCategory string

const (
	CategoryGeneral       QuestionCategory = "general"
	CategoryScience       QuestionCategory = "science"
	CategoryTechnology    QuestionCategory = "technology"
	CategoryHistory       QuestionCategory = "history"
	CategorySports        QuestionCategory = "sports"
	CategoryEntertainment QuestionCategory = "entertainment"
	CategoryGeography     QuestionCategory = "geography"
)

type QuestionDifficulty string

const (
	DifficultyEasy   QuestionDifficulty = "easy"
	DifficultyMedium QuestionDifficulty = "medium"
	DifficultyHard   QuestionDifficulty = "hard"
)

// swagger:model Question
type Question struct {
	UUIDBase
	Title         string             `gorm:"type:text;not null" json:"title"`
	Category      QuestionCategory   `gorm:"size:50;index" json:"category"`
	Difficulty    QuestionDifficulty `gorm:"size:20;index" json:"difficulty"`
	Options       StringList         `gorm:"type:json;not null" json:"options"`
	CorrectAnswer int                `gorm:"not null" json:"correct_answer"`
	Explanation   string             `gorm:"type:text" json:"explanation"`
	IsHot         bool               `gorm:"default:false;index:idx_questions_hot" json:"is_hot"`
	HotDate       string             `gorm:"size:10;index:idx_questions_hot" json:"hot_date"`
}

func (Question) TableName() string {
	return "questions"
}

// HotFor reports whether the question belongs to the hot set of the given
// date (YYYY-MM-DD).
func (q *Question) HotFor(date string) bool {
	return q.IsHot && q.HotDate == date
}
