package student

import (
	"net/http"
	"strconv"

	"github.com/annamandarin/gamify/internal/dto"
	"github.com/annamandarin/gamify/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type StudentController struct {
	quizService       service.QuizService
	submissionService service.QuizSubmissionService
	studentService    service.StudentService
}

func NewStudentController(
	quizService service.QuizService,
	submissionService service.QuizSubmissionService,
	studentService service.StudentService,
) *StudentController {
	return &StudentController{
		quizService:       quizService,
		submissionService: submissionService,
		studentService:    studentService,
	}
}

// GetAllQuizzes godoc
// @Summary List all available quizzes
// @Tags Quizzes & Attempts
// @Produce json
// @Success 200 {array} dto.QuizSummaryDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /quizzes [get]
func (c *StudentController) GetAllQuizzes(ctx *gin.Context) {
	quizzes, err := c.quizService.GetAllQuizzes()
	if err != nil {
		log.Error().Err(err).Msg("GetAllQuizzes: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, quizzes)
}

// GetQuizDetails godoc
// @Summary Get a quiz with its questions
// @Description Full quiz details for starting an attempt. Answer keys are not included.
// @Tags Quizzes & Attempts
// @Produce json
// @Param quiz_id path int true "Quiz ID"
// @Success 200 {object} dto.QuizResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid Quiz ID format"
// @Failure 404 {object} dto.ErrorResponse "Quiz not found"
// @Router /quizzes/{quiz_id} [get]
func (c *StudentController) GetQuizDetails(ctx *gin.Context) {
	quizID, err := strconv.ParseUint(ctx.Param("quiz_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid Quiz ID format"})
		return
	}
	quiz, err := c.quizService.GetQuizDetails(uint(quizID))
	if err != nil {
		log.Warn().Err(err).Uint64("quizID", quizID).Msg("GetQuizDetails: quiz not found or service error")
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, quiz)
}

// SubmitQuizAttempt godoc
// @Summary Submit answers for a quiz
// @Description Grades the chosen options, persists the attempt with its point breakdown, and evaluates achievements.
// @Tags Quizzes & Attempts
// @Accept json
// @Produce json
// @Param quiz_id path int true "Quiz ID"
// @Param submission body dto.QuizAttemptSubmitDTO true "Student ID, elapsed seconds and chosen options"
// @Success 200 {object} dto.QuizAttemptResultDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 500 {object} dto.ErrorResponse "Error processing submission"
// @Router /quizzes/{quiz_id}/attempts [post]
func (c *StudentController) SubmitQuizAttempt(ctx *gin.Context) {
	quizID, err := strconv.ParseUint(ctx.Param("quiz_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid Quiz ID format"})
		return
	}

	var req dto.QuizAttemptSubmitDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("SubmitQuizAttempt: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	if len(req.Answers) == 0 {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Submission must contain at least one answer."})
		return
	}

	log.Info().Uint64("quizID", quizID).Stringer("studentID", req.StudentID).Int("answerCount", len(req.Answers)).Msg("Received quiz attempt submission")

	result, err := c.submissionService.SubmitQuiz(uint(quizID), req)
	if err != nil {
		log.Error().Err(err).Uint64("quizID", quizID).Msg("SubmitQuizAttempt: service error")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// GetStudentAttempts godoc
// @Summary List a student's attempt history
// @Tags Students
// @Produce json
// @Param student_id path string true "Student ID (UUID)"
// @Success 200 {array} dto.QuizAttemptSummaryDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid Student ID format"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{student_id}/attempts [get]
func (c *StudentController) GetStudentAttempts(ctx *gin.Context) {
	studentID, err := uuid.Parse(ctx.Param("student_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid Student ID format"})
		return
	}

	attempts, err := c.submissionService.GetStudentAttempts(studentID)
	if err != nil {
		log.Error().Err(err).Stringer("studentID", studentID).Msg("GetStudentAttempts: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, attempts)
}

// GetStudentProfile godoc
// @Summary Get a student's profile
// @Description Cumulative points, current badge from the point ladder, and granted achievements.
// @Tags Students
// @Produce json
// @Param student_id path string true "Student ID (UUID)"
// @Success 200 {object} dto.StudentProfileDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid Student ID format"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{student_id}/profile [get]
func (c *StudentController) GetStudentProfile(ctx *gin.Context) {
	studentID, err := uuid.Parse(ctx.Param("student_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid Student ID format"})
		return
	}

	profile, err := c.studentService.GetProfile(studentID)
	if err != nil {
		log.Warn().Err(err).Stringer("studentID", studentID).Msg("GetStudentProfile: student not found or service error")
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, profile)
}

// GetLeaderboard godoc
// @Summary Class leaderboard by cumulative points
// @Tags Students
// @Produce json
// @Param limit query int false "Number of entries to return (default 10)"
// @Success 200 {array} dto.LeaderboardEntryDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /leaderboard [get]
func (c *StudentController) GetLeaderboard(ctx *gin.Context) {
	limit := int64(10)
	if raw := ctx.Query("limit"); raw != "" {
		val, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || val <= 0 {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid limit format"})
			return
		}
		limit = val
	}

	entries, err := c.studentService.GetLeaderboard(limit)
	if err != nil {
		log.Error().Err(err).Msg("GetLeaderboard: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, entries)
}
