package service

import (
	"strings"
	"testing"

	"github.com/annamandarin/gamify/internal/dto"
	"github.com/annamandarin/gamify/internal/model"
)

func gradingQuiz() *model.Quiz {
	return &model.Quiz{
		ID:               1,
		Title:            "Tones Basics",
		TimeLimitSeconds: 100,
		Questions: []model.Question{
			{
				ID: 10, QuizID: 1, Difficulty: model.DifficultyEasy, OrderInQuiz: 1,
				Options: []model.Option{
					{ID: 101, QuestionID: 10, IsCorrect: true},
					{ID: 102, QuestionID: 10, IsCorrect: false},
				},
			},
			{
				ID: 20, QuizID: 1, Difficulty: model.DifficultyMedium, OrderInQuiz: 2,
				Options: []model.Option{
					{ID: 201, QuestionID: 20, IsCorrect: false},
					{ID: 202, QuestionID: 20, IsCorrect: true},
				},
			},
			{
				ID: 30, QuizID: 1, Difficulty: model.DifficultyHard, OrderInQuiz: 3,
				Options: []model.Option{
					{ID: 301, QuestionID: 30, IsCorrect: true},
					{ID: 302, QuestionID: 30, IsCorrect: false},
				},
			},
		},
	}
}

func TestGradeSubmission(t *testing.T) {
	quiz := gradingQuiz()
	answers := []dto.ChosenAnswerDTO{
		{QuestionID: 10, OptionID: 101}, // correct
		{QuestionID: 20, OptionID: 201}, // wrong
		{QuestionID: 30, OptionID: 301}, // correct
	}

	graded, correct, err := gradeSubmission(quiz, answers)
	if err != nil {
		t.Fatalf("grading failed: %v", err)
	}
	if correct != 2 {
		t.Fatalf("expected 2 correct answers, got %d", correct)
	}
	want := []model.GradedAnswer{
		{Difficulty: model.DifficultyEasy, IsCorrect: true},
		{Difficulty: model.DifficultyMedium, IsCorrect: false},
		{Difficulty: model.DifficultyHard, IsCorrect: true},
	}
	if len(graded) != len(want) {
		t.Fatalf("expected %d graded answers, got %d", len(want), len(graded))
	}
	for i := range want {
		if graded[i] != want[i] {
			t.Errorf("answer %d: got %+v, want %+v", i, graded[i], want[i])
		}
	}
}

func TestGradeSubmissionUnansweredQuestionsAreIncorrect(t *testing.T) {
	quiz := gradingQuiz()
	answers := []dto.ChosenAnswerDTO{
		{QuestionID: 10, OptionID: 101},
	}

	graded, correct, err := gradeSubmission(quiz, answers)
	if err != nil {
		t.Fatalf("grading failed: %v", err)
	}
	if correct != 1 {
		t.Fatalf("expected 1 correct answer, got %d", correct)
	}
	// One graded entry per quiz question, answered or not.
	if len(graded) != 3 {
		t.Fatalf("expected 3 graded answers, got %d", len(graded))
	}
	if graded[1].IsCorrect || graded[2].IsCorrect {
		t.Fatal("unanswered questions must grade as incorrect")
	}
}

func TestGradeSubmissionRejectsForeignQuestion(t *testing.T) {
	quiz := gradingQuiz()
	_, _, err := gradeSubmission(quiz, []dto.ChosenAnswerDTO{
		{QuestionID: 99, OptionID: 101},
	})
	if err == nil || !strings.Contains(err.Error(), "not part of quiz") {
		t.Fatalf("expected foreign-question error, got %v", err)
	}
}

func TestGradeSubmissionRejectsForeignOption(t *testing.T) {
	quiz := gradingQuiz()
	_, _, err := gradeSubmission(quiz, []dto.ChosenAnswerDTO{
		{QuestionID: 10, OptionID: 202}, // belongs to question 20
	})
	if err == nil || !strings.Contains(err.Error(), "not part of question") {
		t.Fatalf("expected foreign-option error, got %v", err)
	}
}

func TestGradeSubmissionRejectsDuplicateAnswer(t *testing.T) {
	quiz := gradingQuiz()
	_, _, err := gradeSubmission(quiz, []dto.ChosenAnswerDTO{
		{QuestionID: 10, OptionID: 101},
		{QuestionID: 10, OptionID: 102},
	})
	if err == nil || !strings.Contains(err.Error(), "answered more than once") {
		t.Fatalf("expected duplicate-answer error, got %v", err)
	}
}
