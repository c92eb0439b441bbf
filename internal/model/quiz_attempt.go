package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type QuizAttempt struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	QuizID      uint           `json:"quiz_id" gorm:"not null;index"`
	Quiz        Quiz           `json:"quiz,omitempty" gorm:"foreignKey:QuizID"`
	StudentID   uuid.UUID      `json:"student_id" gorm:"type:uuid;not null;index"`
	Score       int            `json:"score" gorm:"not null"` // percentage of correct answers, 0-100
	TimeTaken   int            `json:"time_taken" gorm:"not null"`
	Breakdown   ScoreBreakdown `json:"breakdown" gorm:"embedded"`
	SubmittedAt time.Time      `json:"submitted_at" gorm:"autoCreateTime"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
