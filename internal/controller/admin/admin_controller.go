package admin

import (
	"net/http"

	"github.com/annamandarin/gamify/internal/dto"
	"github.com/annamandarin/gamify/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type AdminController struct {
	adminService service.AdminService
	draftService service.QuizDraftService
}

func NewAdminController(adminService service.AdminService, draftService service.QuizDraftService) *AdminController {
	return &AdminController{adminService: adminService, draftService: draftService}
}

// CreateQuiz godoc
// @Summary (Admin) Create a new quiz
// @Description Create a quiz with its questions and answer options. Each question needs exactly one correct option.
// @Tags Admin
// @Accept json
// @Produce json
// @Param quiz body dto.QuizCreateDTO true "Quiz definition"
// @Success 201 {object} dto.QuizResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Validation failure"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/quizzes [post]
func (c *AdminController) CreateQuiz(ctx *gin.Context) {
	var req dto.QuizCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Admin CreateQuiz: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	quiz, err := c.adminService.CreateQuiz(req)
	if err != nil {
		log.Error().Err(err).Msg("Admin CreateQuiz: service error")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	ctx.JSON(http.StatusCreated, quiz)
}

// DraftQuiz godoc
// @Summary (Admin) Draft quiz questions with AI
// @Description Ask the LLM for candidate multiple-choice questions on a topic. Drafts are for review, nothing is persisted.
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body dto.QuizDraftRequestDTO true "Topic, question count and difficulty"
// @Success 200 {array} dto.DraftQuestionDTO
// @Failure 400 {object} dto.ErrorResponse "Validation failure"
// @Failure 502 {object} dto.ErrorResponse "LLM unavailable or returned malformed drafts"
// @Router /admin/quizzes/draft [post]
func (c *AdminController) DraftQuiz(ctx *gin.Context) {
	var req dto.QuizDraftRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Admin DraftQuiz: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	drafts, err := c.draftService.DraftQuestions(req.Topic, req.Count, req.Difficulty)
	if err != nil {
		log.Error().Err(err).Str("topic", req.Topic).Msg("Admin DraftQuiz: draft service error")
		ctx.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, drafts)
}

// CreateAchievement godoc
// @Summary (Admin) Create an achievement catalog entry
// @Description Add an achievement with its requirement thresholds and point reward.
// @Tags Admin
// @Accept json
// @Produce json
// @Param achievement body dto.AchievementCreateDTO true "Achievement definition"
// @Success 201 {object} dto.AchievementDTO
// @Failure 400 {object} dto.ErrorResponse "Validation failure"
// @Router /admin/achievements [post]
func (c *AdminController) CreateAchievement(ctx *gin.Context) {
	var req dto.AchievementCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Admin CreateAchievement: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	achievement, err := c.adminService.CreateAchievement(req)
	if err != nil {
		log.Error().Err(err).Msg("Admin CreateAchievement: service error")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	ctx.JSON(http.StatusCreated, achievement)
}

// ListAchievements godoc
// @Summary (Admin) List the achievement catalog
// @Tags Admin
// @Produce json
// @Success 200 {array} dto.AchievementDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/achievements [get]
func (c *AdminController) ListAchievements(ctx *gin.Context) {
	achievements, err := c.adminService.ListAchievements()
	if err != nil {
		log.Error().Err(err).Msg("Admin ListAchievements: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, achievements)
}

// CreateStudent godoc
// @Summary (Admin) Register a student
// @Tags Admin
// @Accept json
// @Produce json
// @Param student body dto.StudentCreateDTO true "Student name"
// @Success 201 {object} model.Student
// @Failure 400 {object} dto.ErrorResponse "Validation failure"
// @Router /admin/students [post]
func (c *AdminController) CreateStudent(ctx *gin.Context) {
	var req dto.StudentCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Admin CreateStudent: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	student, err := c.adminService.CreateStudent(req)
	if err != nil {
		log.Error().Err(err).Msg("Admin CreateStudent: service error")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	ctx.JSON(http.StatusCreated, student)
}
