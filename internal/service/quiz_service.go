package service

import (
	"fmt"

	"github.com/annamandarin/gamify/internal/dto"
	"github.com/annamandarin/gamify/internal/repository"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
)

type QuizService interface {
	GetAllQuizzes() ([]dto.QuizSummaryDTO, error)
	GetQuizDetails(quizID uint) (*dto.QuizResponseDTO, error)
}

type quizService struct {
	quizRepo repository.QuizRepository
}

func NewQuizService(quizRepo repository.QuizRepository) QuizService {
	return &quizService{quizRepo: quizRepo}
}

func (s *quizService) GetAllQuizzes() ([]dto.QuizSummaryDTO, error) {
	quizzesWithCount, err := s.quizRepo.FindAllWithQuestionCount()
	if err != nil {
		log.Error().Err(err).Msg("Failed to get quizzes with question count from repository")
		return nil, fmt.Errorf("error fetching quizzes: %w", err)
	}

	var dtos []dto.QuizSummaryDTO
	for _, qwc := range quizzesWithCount {
		dtos = append(dtos, dto.QuizSummaryDTO{
			ID:               qwc.Quiz.ID,
			Title:            qwc.Quiz.Title,
			Description:      qwc.Quiz.Description,
			TimeLimitSeconds: qwc.Quiz.TimeLimitSeconds,
			QuestionCount:    qwc.QuestionCount,
			CreatedAt:        qwc.Quiz.CreatedAt,
		})
	}
	return dtos, nil
}

// GetQuizDetails returns the quiz with its questions and options. The DTO
// strips the is_correct flags, so the answer key never reaches the client.
func (s *quizService) GetQuizDetails(quizID uint) (*dto.QuizResponseDTO, error) {
	quiz, err := s.quizRepo.FindByIDWithQuestions(quizID)
	if err != nil {
		log.Error().Err(err).Uint("quizID", quizID).Msg("Failed to get quiz details from repository")
		return nil, fmt.Errorf("quiz not found with ID %d: %w", quizID, err)
	}

	var resp dto.QuizResponseDTO
	if err := copier.Copy(&resp, quiz); err != nil {
		log.Error().Err(err).Msg("Failed to copy Quiz model to QuizResponseDTO")
		return nil, fmt.Errorf("error preparing quiz details response: %w", err)
	}
	return &resp, nil
}
