package model

import (
	"time"

	"gorm.io/gorm"
)

type Quiz struct {
	ID               uint           `gorm:"primarykey" json:"id"`
	Title            string         `json:"title" gorm:"not null;uniqueIndex"` // "HSK 1 Vocabulary Review"
	Description      string         `json:"description,omitempty"`
	TimeLimitSeconds int            `json:"time_limit_seconds" gorm:"not null"`
	Questions        []Question     `json:"questions,omitempty" gorm:"foreignKey:QuizID"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
}
