package dto

import (
	"time"

	"github.com/annamandarin/gamify/internal/model"
	"github.com/google/uuid"
)

// OptionResponseDTO deliberately omits the is_correct flag so quiz details
// never leak the answer key to students.
type OptionResponseDTO struct {
	ID   uint   `json:"id"`
	Text string `json:"text"`
}

type QuestionResponseDTO struct {
	ID          uint                `json:"id"`
	QuizID      uint                `json:"quiz_id"`
	Prompt      string              `json:"prompt"`
	Difficulty  model.Difficulty    `json:"difficulty"`
	OrderInQuiz int                 `json:"order_in_quiz"`
	Options     []OptionResponseDTO `json:"options,omitempty"`
}

type QuizResponseDTO struct {
	ID               uint                  `json:"id"`
	Title            string                `json:"title"`
	Description      string                `json:"description,omitempty"`
	TimeLimitSeconds int                   `json:"time_limit_seconds"`
	Questions        []QuestionResponseDTO `json:"questions,omitempty"`
	CreatedAt        time.Time             `json:"created_at"`
}

type QuizSummaryDTO struct {
	ID               uint      `json:"id"`
	Title            string    `json:"title"`
	Description      string    `json:"description,omitempty"`
	TimeLimitSeconds int       `json:"time_limit_seconds"`
	QuestionCount    int       `json:"question_count"`
	CreatedAt        time.Time `json:"created_at"`
}

// --- Attempt submission and results ---

// ChosenAnswerDTO is one selected option for one question.
type ChosenAnswerDTO struct {
	QuestionID uint `json:"question_id" binding:"required"`
	OptionID   uint `json:"option_id" binding:"required"`
}

type QuizAttemptSubmitDTO struct {
	StudentID uuid.UUID         `json:"student_id" binding:"required"`
	TimeTaken int               `json:"time_taken" binding:"required,gt=0"`
	Answers   []ChosenAnswerDTO `json:"answers" binding:"required,dive"`
}

type QuizAttemptResultDTO struct {
	ID              uint                 `json:"id"`
	QuizID          uint                 `json:"quiz_id"`
	QuizTitle       string               `json:"quiz_title,omitempty"`
	StudentID       uuid.UUID            `json:"student_id"`
	Score           int                  `json:"score"`
	TimeTaken       int                  `json:"time_taken"`
	Breakdown       model.ScoreBreakdown `json:"breakdown"`
	BonusTierLabel  string               `json:"bonus_tier_label,omitempty"`
	NewAchievements []AchievementDTO     `json:"new_achievements,omitempty"`
	SubmittedAt     time.Time            `json:"submitted_at"`
}

type QuizAttemptSummaryDTO struct {
	ID          uint      `json:"id"`
	QuizID      uint      `json:"quiz_id"`
	Score       int       `json:"score"`
	TimeTaken   int       `json:"time_taken"`
	TotalPoints int       `json:"total_points"`
	SubmittedAt time.Time `json:"submitted_at"`
}
