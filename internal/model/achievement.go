package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Achievement is a catalog entry. The requirement columns are sparse: only
// the thresholds present on an entry are evaluated, and satisfying ANY one
// of them grants the achievement.
type Achievement struct {
	ID                  uint           `gorm:"primarykey" json:"id"`
	Name                string         `json:"name" gorm:"not null;uniqueIndex"`
	Description         string         `json:"description,omitempty"`
	Icon                string         `json:"icon,omitempty"`
	ReqPerfectScore     *bool          `json:"req_perfect_score,omitempty"`
	ReqFastCompletion   *int           `json:"req_fast_completion,omitempty"`   // seconds ceiling
	ReqQuizzesCompleted *int           `json:"req_quizzes_completed,omitempty"` // cumulative attempt count
	PointsReward        int            `json:"points_reward" gorm:"not null;default:0"`
	CreatedAt           time.Time      `json:"created_at"`
	UpdatedAt           time.Time      `json:"updated_at"`
	DeletedAt           gorm.DeletedAt `gorm:"index" json:"-"`
}

// StudentAchievement records a grant. The composite unique index makes the
// store reject duplicate grants, so concurrent evaluator runs cannot award
// the same achievement twice.
type StudentAchievement struct {
	ID            uint        `gorm:"primarykey" json:"id"`
	StudentID     uuid.UUID   `json:"student_id" gorm:"type:uuid;not null;uniqueIndex:idx_student_achievement"`
	AchievementID uint        `json:"achievement_id" gorm:"not null;uniqueIndex:idx_student_achievement"`
	Achievement   Achievement `json:"achievement,omitempty" gorm:"foreignKey:AchievementID"`
	AwardedAt     time.Time   `json:"awarded_at" gorm:"autoCreateTime"`
}
