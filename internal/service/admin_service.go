package service

import (
	"fmt"

	"github.com/annamandarin/gamify/internal/dto"
	"github.com/annamandarin/gamify/internal/model"
	"github.com/annamandarin/gamify/internal/repository"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
)

type AdminService interface {
	CreateQuiz(req dto.QuizCreateDTO) (*dto.QuizResponseDTO, error)
	CreateAchievement(req dto.AchievementCreateDTO) (*dto.AchievementDTO, error)
	ListAchievements() ([]dto.AchievementDTO, error)
	CreateStudent(req dto.StudentCreateDTO) (*model.Student, error)
}

type adminService struct {
	quizRepo        repository.QuizRepository
	achievementRepo repository.AchievementRepository
	studentRepo     repository.StudentRepository
}

func NewAdminService(
	quizRepo repository.QuizRepository,
	achievementRepo repository.AchievementRepository,
	studentRepo repository.StudentRepository,
) AdminService {
	return &adminService{
		quizRepo:        quizRepo,
		achievementRepo: achievementRepo,
		studentRepo:     studentRepo,
	}
}

func (s *adminService) CreateQuiz(req dto.QuizCreateDTO) (*dto.QuizResponseDTO, error) {
	if len(req.Questions) == 0 {
		return nil, fmt.Errorf("a quiz must have at least one question")
	}

	orderMap := make(map[int]bool)
	var questionsToCreate []model.Question

	for _, qDto := range req.Questions {
		if orderMap[qDto.OrderInQuiz] {
			return nil, fmt.Errorf("duplicate OrderInQuiz %d found in questions", qDto.OrderInQuiz)
		}
		orderMap[qDto.OrderInQuiz] = true

		if !qDto.Difficulty.Valid() {
			return nil, fmt.Errorf("invalid difficulty %q for question %d; must be easy, medium or hard", qDto.Difficulty, qDto.OrderInQuiz)
		}
		if len(qDto.Options) < 2 {
			return nil, fmt.Errorf("question %d must have at least two options", qDto.OrderInQuiz)
		}

		correctCount := 0
		var optionsToCreate []model.Option
		for _, oDto := range qDto.Options {
			if oDto.IsCorrect {
				correctCount++
			}
			optionsToCreate = append(optionsToCreate, model.Option{Text: oDto.Text, IsCorrect: oDto.IsCorrect})
		}
		if correctCount != 1 {
			return nil, fmt.Errorf("question %d must have exactly one correct option, got %d", qDto.OrderInQuiz, correctCount)
		}

		questionsToCreate = append(questionsToCreate, model.Question{
			Prompt:      qDto.Prompt,
			Difficulty:  qDto.Difficulty,
			OrderInQuiz: qDto.OrderInQuiz,
			Options:     optionsToCreate,
		})
	}

	quizModel := model.Quiz{
		Title:            req.Title,
		Description:      req.Description,
		TimeLimitSeconds: req.TimeLimitSeconds,
		Questions:        questionsToCreate,
	}

	if err := s.quizRepo.Create(&quizModel); err != nil {
		log.Error().Err(err).Msg("Failed to create quiz in database")
		return nil, fmt.Errorf("database error creating quiz: %w", err)
	}

	createdQuiz, err := s.quizRepo.FindByIDWithQuestions(quizModel.ID)
	if err != nil {
		log.Error().Err(err).Uint("quizID", quizModel.ID).Msg("Failed to reload created quiz for response")
		var fallbackResp dto.QuizResponseDTO
		copier.Copy(&fallbackResp, &quizModel)
		return &fallbackResp, nil
	}

	var resp dto.QuizResponseDTO
	if err := copier.Copy(&resp, createdQuiz); err != nil {
		log.Error().Err(err).Msg("Failed to copy created Quiz model to QuizResponseDTO")
		return nil, fmt.Errorf("error preparing response data: %w", err)
	}
	return &resp, nil
}

func (s *adminService) CreateAchievement(req dto.AchievementCreateDTO) (*dto.AchievementDTO, error) {
	if req.ReqPerfectScore == nil && req.ReqFastCompletion == nil && req.ReqQuizzesCompleted == nil {
		return nil, fmt.Errorf("achievement %q has no requirement and could never be granted", req.Name)
	}
	if req.ReqFastCompletion != nil && *req.ReqFastCompletion <= 0 {
		return nil, fmt.Errorf("fast completion threshold must be positive, got %d", *req.ReqFastCompletion)
	}
	if req.ReqQuizzesCompleted != nil && *req.ReqQuizzesCompleted <= 0 {
		return nil, fmt.Errorf("quizzes completed threshold must be positive, got %d", *req.ReqQuizzesCompleted)
	}

	achievement := model.Achievement{
		Name:                req.Name,
		Description:         req.Description,
		Icon:                req.Icon,
		ReqPerfectScore:     req.ReqPerfectScore,
		ReqFastCompletion:   req.ReqFastCompletion,
		ReqQuizzesCompleted: req.ReqQuizzesCompleted,
		PointsReward:        req.PointsReward,
	}
	if err := s.achievementRepo.Create(&achievement); err != nil {
		log.Error().Err(err).Str("name", req.Name).Msg("Failed to create achievement in database")
		return nil, fmt.Errorf("database error creating achievement: %w", err)
	}

	var resp dto.AchievementDTO
	if err := copier.Copy(&resp, &achievement); err != nil {
		log.Error().Err(err).Msg("Failed to copy Achievement model to DTO")
		return nil, fmt.Errorf("error preparing response data: %w", err)
	}
	return &resp, nil
}

func (s *adminService) ListAchievements() ([]dto.AchievementDTO, error) {
	achievements, err := s.achievementRepo.FindAll()
	if err != nil {
		log.Error().Err(err).Msg("Failed to list achievements from repository")
		return nil, fmt.Errorf("error fetching achievements: %w", err)
	}

	dtos := make([]dto.AchievementDTO, 0, len(achievements))
	for _, a := range achievements {
		var d dto.AchievementDTO
		if err := copier.Copy(&d, &a); err != nil {
			log.Error().Err(err).Uint("achievementID", a.ID).Msg("Error copying achievement to DTO")
			continue
		}
		dtos = append(dtos, d)
	}
	return dtos, nil
}

func (s *adminService) CreateStudent(req dto.StudentCreateDTO) (*model.Student, error) {
	student := model.Student{Name: req.Name}
	if err := s.studentRepo.Create(&student); err != nil {
		log.Error().Err(err).Str("name", req.Name).Msg("Failed to create student in database")
		return nil, fmt.Errorf("database error creating student: %w", err)
	}
	return &student, nil
}
