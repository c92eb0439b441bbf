package model

import (
	"time"

	"gorm.io/gorm"
)

// Difficulty tiers carry fixed point values, see service.PointsForDifficulty.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

type Question struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	QuizID      uint           `json:"quiz_id" gorm:"not null;index"`
	Prompt      string         `json:"prompt" gorm:"type:text;not null"`
	Difficulty  Difficulty     `json:"difficulty" gorm:"type:varchar(16);not null"`
	OrderInQuiz int            `json:"order_in_quiz" gorm:"not null"`
	Options     []Option       `json:"options,omitempty" gorm:"foreignKey:QuestionID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

type Option struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	QuestionID uint      `json:"question_id" gorm:"not null;index"`
	Text       string    `json:"text" gorm:"not null"`
	IsCorrect  bool      `json:"is_correct" gorm:"not null;default:false"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
