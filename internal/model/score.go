package model

// GradedAnswer is one graded response, consumed once by the score calculator.
type GradedAnswer struct {
	Difficulty Difficulty `json:"difficulty"`
	IsCorrect  bool       `json:"is_correct"`
}

// ScoreBreakdown is the immutable output of the score calculator. Question
// counts are of correct answers per tier; incorrect answers never contribute.
// Embedded into QuizAttempt so the breakdown is persisted with the attempt.
type ScoreBreakdown struct {
	EasyQuestions   int `json:"easy_questions"`
	MediumQuestions int `json:"medium_questions"`
	HardQuestions   int `json:"hard_questions"`
	EasyPoints      int `json:"easy_points"`
	MediumPoints    int `json:"medium_points"`
	HardPoints      int `json:"hard_points"`
	TimeBonus       int `json:"time_bonus"`
	TotalPoints     int `json:"total_points"`
}
