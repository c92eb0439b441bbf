package dto

import "time"

type AchievementDTO struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	Icon         string `json:"icon,omitempty"`
	PointsReward int    `json:"points_reward"`
}

// AchievementCreateDTO carries the sparse requirement thresholds; at least
// one must be present for the entry to ever be grantable.
type AchievementCreateDTO struct {
	Name                string `json:"name" binding:"required"`
	Description         string `json:"description"`
	Icon                string `json:"icon"`
	ReqPerfectScore     *bool  `json:"req_perfect_score"`
	ReqFastCompletion   *int   `json:"req_fast_completion"`
	ReqQuizzesCompleted *int   `json:"req_quizzes_completed"`
	PointsReward        int    `json:"points_reward" binding:"required,gt=0"`
}

type GrantedAchievementDTO struct {
	AchievementDTO
	AwardedAt time.Time `json:"awarded_at"`
}
