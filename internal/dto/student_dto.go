package dto

import "github.com/google/uuid"

type StudentCreateDTO struct {
	Name string `json:"name" binding:"required"`
}

type BadgeDTO struct {
	Name      string `json:"name"`
	MinPoints int    `json:"min_points"`
	MaxPoints int    `json:"max_points"`
}

type StudentProfileDTO struct {
	ID           uuid.UUID               `json:"id"`
	Name         string                  `json:"name"`
	TotalPoints  int                     `json:"total_points"`
	Badge        *BadgeDTO               `json:"badge,omitempty"`
	Achievements []GrantedAchievementDTO `json:"achievements,omitempty"`
}

type LeaderboardEntryDTO struct {
	StudentID string `json:"student_id"`
	Name      string `json:"name,omitempty"`
	Points    int    `json:"points"`
}
