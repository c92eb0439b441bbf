package webhook

import (
	"fmt"
	"net/http"

	"github.com/annamandarin/gamify/internal/dto"
	"github.com/annamandarin/gamify/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// AttemptRecord mirrors the row payload the attempt-recording flow posts
// after persisting a new quiz attempt.
type AttemptRecord struct {
	StudentID string `json:"student_id"`
	Score     *int   `json:"score"`
	TimeTaken *int   `json:"time_taken"`
}

type AwardRequest struct {
	Record *AttemptRecord `json:"record"`
}

// AwardController exposes the achievement evaluator as a webhook, invoked
// once per completed quiz attempt.
type AwardController struct {
	achievementService service.AchievementService
}

func NewAwardController(achievementService service.AchievementService) *AwardController {
	return &AwardController{achievementService: achievementService}
}

// AwardAchievements godoc
// @Summary Evaluate achievements for a completed attempt
// @Description Scans the catalog against the student's cumulative stats and grants every newly satisfied achievement.
// @Tags Webhooks
// @Accept json
// @Produce json
// @Param request body webhook.AwardRequest true "Triggering attempt record"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse "Missing record or data store failure"
// @Router /functions/v1/award-achievement [post]
func (c *AwardController) AwardAchievements(ctx *gin.Context) {
	var req AwardRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("AwardAchievements: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
		return
	}
	if req.Record == nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "No record found in request"})
		return
	}
	if req.Record.Score == nil || req.Record.TimeTaken == nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Record must contain score and time_taken"})
		return
	}

	studentID, err := uuid.Parse(req.Record.StudentID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid student_id in record"})
		return
	}

	awarded, err := c.achievementService.EvaluateForAttempt(studentID, *req.Record.Score, *req.Record.TimeTaken)
	if err != nil {
		log.Error().Err(err).Stringer("studentID", studentID).Msg("AwardAchievements: evaluation failed")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{
		Message: fmt.Sprintf("Awarded %d new achievement(s)", len(awarded)),
	})
}

// Preflight answers CORS preflight with an empty 200, matching what callers
// of the original hosted function expect.
func (c *AwardController) Preflight(ctx *gin.Context) {
	ctx.Status(http.StatusOK)
}
