package service

import (
	"context"
	"fmt"
	"math"

	"github.com/annamandarin/gamify/internal/dto"
	"github.com/annamandarin/gamify/internal/leaderboard"
	"github.com/annamandarin/gamify/internal/model"
	"github.com/annamandarin/gamify/internal/repository"
	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
)

// QuizSubmissionService grades a student's submission, persists the attempt
// with its point breakdown, and triggers the achievement evaluation. The
// attempt is always persisted before the evaluator runs.
type QuizSubmissionService interface {
	SubmitQuiz(quizID uint, req dto.QuizAttemptSubmitDTO) (*dto.QuizAttemptResultDTO, error)
	GetStudentAttempts(studentID uuid.UUID) ([]dto.QuizAttemptSummaryDTO, error)
}

type quizSubmissionService struct {
	quizRepo           repository.QuizRepository
	attemptRepo        repository.QuizAttemptRepository
	studentRepo        repository.StudentRepository
	scoreService       ScoreService
	achievementService AchievementService
	board              leaderboard.Store
}

func NewQuizSubmissionService(
	quizRepo repository.QuizRepository,
	attemptRepo repository.QuizAttemptRepository,
	studentRepo repository.StudentRepository,
	scoreService ScoreService,
	achievementService AchievementService,
	board leaderboard.Store,
) QuizSubmissionService {
	return &quizSubmissionService{
		quizRepo:           quizRepo,
		attemptRepo:        attemptRepo,
		studentRepo:        studentRepo,
		scoreService:       scoreService,
		achievementService: achievementService,
		board:              board,
	}
}

func (s *quizSubmissionService) SubmitQuiz(quizID uint, req dto.QuizAttemptSubmitDTO) (*dto.QuizAttemptResultDTO, error) {
	quiz, err := s.quizRepo.FindByIDWithQuestions(quizID)
	if err != nil {
		log.Error().Err(err).Uint("quizID", quizID).Msg("SubmitQuiz: quiz not found")
		return nil, fmt.Errorf("quiz not found with ID %d: %w", quizID, err)
	}
	if len(quiz.Questions) == 0 {
		return nil, fmt.Errorf("quiz ID %d has no questions, submission is not possible", quizID)
	}

	if _, err := s.studentRepo.FindByID(req.StudentID); err != nil {
		log.Warn().Err(err).Stringer("studentID", req.StudentID).Msg("SubmitQuiz: unknown student")
		return nil, fmt.Errorf("student not found with ID %s: %w", req.StudentID, err)
	}

	graded, correct, err := gradeSubmission(quiz, req.Answers)
	if err != nil {
		return nil, err
	}

	breakdown := s.scoreService.CalculateQuizScore(graded, req.TimeTaken, quiz.TimeLimitSeconds)
	score := int(math.Round(float64(correct) / float64(len(quiz.Questions)) * 100))

	attempt := model.QuizAttempt{
		QuizID:    quizID,
		StudentID: req.StudentID,
		Score:     score,
		TimeTaken: req.TimeTaken,
		Breakdown: breakdown,
	}
	if err := s.attemptRepo.Create(&attempt); err != nil {
		log.Error().Err(err).Uint("quizID", quizID).Stringer("studentID", req.StudentID).Msg("SubmitQuiz: failed to persist attempt")
		return nil, fmt.Errorf("database error recording attempt: %w", err)
	}

	// The attempt's own points feed the cumulative total; achievement
	// rewards come on top of them from the evaluator.
	if err := s.studentRepo.AddPoints(req.StudentID, breakdown.TotalPoints); err != nil {
		log.Error().Err(err).Stringer("studentID", req.StudentID).Int("points", breakdown.TotalPoints).Msg("SubmitQuiz: failed to credit attempt points")
	} else if err := s.board.AddPoints(context.Background(), req.StudentID.String(), breakdown.TotalPoints); err != nil {
		log.Warn().Err(err).Stringer("studentID", req.StudentID).Msg("SubmitQuiz: failed to mirror points into leaderboard")
	}

	awarded, evalErr := s.achievementService.EvaluateForAttempt(req.StudentID, score, req.TimeTaken)
	if evalErr != nil {
		// The attempt stands; missed achievements are picked up by the next
		// evaluator run over the same history.
		log.Error().Err(evalErr).Uint("attemptID", attempt.ID).Msg("SubmitQuiz: achievement evaluation failed")
	}

	resp := dto.QuizAttemptResultDTO{
		ID:          attempt.ID,
		QuizID:      quizID,
		QuizTitle:   quiz.Title,
		StudentID:   req.StudentID,
		Score:       score,
		TimeTaken:   req.TimeTaken,
		Breakdown:   breakdown,
		SubmittedAt: attempt.SubmittedAt,
	}
	if tier := s.scoreService.GetTimeBonusTier(req.TimeTaken, quiz.TimeLimitSeconds); tier != nil {
		resp.BonusTierLabel = tier.Label
	}
	if len(awarded) > 0 {
		resp.NewAchievements = make([]dto.AchievementDTO, len(awarded))
		for i, a := range awarded {
			if err := copier.Copy(&resp.NewAchievements[i], &a); err != nil {
				log.Error().Err(err).Msg("SubmitQuiz: error copying achievement to DTO")
			}
		}
	}
	return &resp, nil
}

func (s *quizSubmissionService) GetStudentAttempts(studentID uuid.UUID) ([]dto.QuizAttemptSummaryDTO, error) {
	attempts, err := s.attemptRepo.FindAllByStudent(studentID)
	if err != nil {
		log.Error().Err(err).Stringer("studentID", studentID).Msg("GetStudentAttempts: failed to load attempts")
		return nil, fmt.Errorf("error fetching attempts for student %s: %w", studentID, err)
	}

	dtos := make([]dto.QuizAttemptSummaryDTO, 0, len(attempts))
	for _, attempt := range attempts {
		dtos = append(dtos, dto.QuizAttemptSummaryDTO{
			ID:          attempt.ID,
			QuizID:      attempt.QuizID,
			Score:       attempt.Score,
			TimeTaken:   attempt.TimeTaken,
			TotalPoints: attempt.Breakdown.TotalPoints,
			SubmittedAt: attempt.SubmittedAt,
		})
	}
	return dtos, nil
}

// gradeSubmission checks each chosen option against the answer key and
// returns one graded answer per quiz question; unanswered questions grade
// as incorrect. The int result is the number of correct answers.
func gradeSubmission(quiz *model.Quiz, answers []dto.ChosenAnswerDTO) ([]model.GradedAnswer, int, error) {
	options := make(map[uint]map[uint]bool, len(quiz.Questions)) // questionID -> optionID -> isCorrect
	for _, q := range quiz.Questions {
		byID := make(map[uint]bool, len(q.Options))
		for _, o := range q.Options {
			byID[o.ID] = o.IsCorrect
		}
		options[q.ID] = byID
	}

	chosen := make(map[uint]uint, len(answers)) // questionID -> optionID
	for _, a := range answers {
		byID, ok := options[a.QuestionID]
		if !ok {
			return nil, 0, fmt.Errorf("question %d is not part of quiz %d", a.QuestionID, quiz.ID)
		}
		if _, ok := byID[a.OptionID]; !ok {
			return nil, 0, fmt.Errorf("option %d is not part of question %d", a.OptionID, a.QuestionID)
		}
		if _, dup := chosen[a.QuestionID]; dup {
			return nil, 0, fmt.Errorf("question %d answered more than once", a.QuestionID)
		}
		chosen[a.QuestionID] = a.OptionID
	}

	graded := make([]model.GradedAnswer, 0, len(quiz.Questions))
	correct := 0
	for _, q := range quiz.Questions {
		isCorrect := false
		if optionID, ok := chosen[q.ID]; ok {
			isCorrect = options[q.ID][optionID]
		}
		if isCorrect {
			correct++
		}
		graded = append(graded, model.GradedAnswer{Difficulty: q.Difficulty, IsCorrect: isCorrect})
	}
	return graded, correct, nil
}
