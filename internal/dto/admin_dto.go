package dto

import "github.com/annamandarin/gamify/internal/model"

type OptionCreateDTO struct {
	Text      string `json:"text" binding:"required"`
	IsCorrect bool   `json:"is_correct"`
}

type QuestionCreateDTO struct {
	Prompt      string            `json:"prompt" binding:"required"`
	Difficulty  model.Difficulty  `json:"difficulty" binding:"required"`
	OrderInQuiz int               `json:"order_in_quiz" binding:"required,gt=0"`
	Options     []OptionCreateDTO `json:"options" binding:"required,dive"`
}

type QuizCreateDTO struct {
	Title            string              `json:"title" binding:"required"`
	Description      string              `json:"description"`
	TimeLimitSeconds int                 `json:"time_limit_seconds" binding:"required,gt=0"`
	Questions        []QuestionCreateDTO `json:"questions" binding:"required,dive"`
}

// QuizDraftRequestDTO asks the LLM to draft candidate questions for review;
// drafts are never persisted directly.
type QuizDraftRequestDTO struct {
	Topic      string           `json:"topic" binding:"required"`
	Count      int              `json:"count" binding:"required,gt=0,lte=20"`
	Difficulty model.Difficulty `json:"difficulty" binding:"required"`
}

type DraftOptionDTO struct {
	Text      string `json:"text"`
	IsCorrect bool   `json:"is_correct"`
}

type DraftQuestionDTO struct {
	Prompt  string           `json:"prompt"`
	Options []DraftOptionDTO `json:"options"`
}
