package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"pathfinders/internal/models/request_models"
	"pathfinders/internal/models/response_models"
	"pathfinders/internal/quiz"
	"pathfinders/internal/services"
	"pathfinders/pkg/utils"
)

type QuizController struct {
	funnelService   services.FunnelServiceInterface
	analysisService services.AnalysisServiceInterface
}

func NewQuizController(
	funnelService services.FunnelServiceInterface,
	analysisService services.AnalysisServiceInterface,
) *QuizController {
	return &QuizController{
		funnelService:   funnelService,
		analysisService: analysisService,
	}
}

// Analyze godoc
// @Summary Analyze quiz answers
// @Description Turn a full answer set into a personalized analysis. Public: the funnel posts here right after the last step.
// @Tags Quiz
// @Accept json
// @Produce json
// @Param request body request_models.AnalyzeRequest true "Answers keyed by step index"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Router /quiz/analyze [post]
func (q *QuizController) Analyze(c *gin.Context) {
	var req request_models.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	answers := quiz.Answers{}
	for key, value := range req.Answers {
		index, err := strconv.Atoi(key)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, "Answer keys must be step indexes")
			return
		}
		answers[index] = value
	}

	result, err := q.analysisService.Analyze(c.Request.Context(), answers)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Analysis completed")
}

// State godoc
// @Summary Get funnel state
// @Tags Quiz
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /quiz/state [get]
func (q *QuizController) State(c *gin.Context) {
	profileID, ok := currentProfileID(c)
	if !ok {
		return
	}

	state, err := q.funnelService.State(c.Request.Context(), profileID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewQuizStateResponse(state), "Quiz state fetched")
}

// SetAnswer godoc
// @Summary Answer the current step
// @Tags Quiz
// @Accept json
// @Produce json
// @Param request body request_models.SetAnswerRequest true "Answer for the current step"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /quiz/answer [post]
func (q *QuizController) SetAnswer(c *gin.Context) {
	profileID, ok := currentProfileID(c)
	if !ok {
		return
	}

	var req request_models.SetAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	state, err := q.funnelService.SetAnswer(c.Request.Context(), profileID, req.Value)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewQuizStateResponse(state), "Answer recorded")
}

// Next godoc
// @Summary Advance the funnel
// @Description Moves to the next step; completing the last step marks the quiz finished.
// @Tags Quiz
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /quiz/next [post]
func (q *QuizController) Next(c *gin.Context) {
	profileID, ok := currentProfileID(c)
	if !ok {
		return
	}

	state, err := q.funnelService.Next(c.Request.Context(), profileID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewQuizStateResponse(state), "Moved to next step")
}

// Back godoc
// @Summary Go back one step
// @Tags Quiz
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /quiz/back [post]
func (q *QuizController) Back(c *gin.Context) {
	profileID, ok := currentProfileID(c)
	if !ok {
		return
	}

	state, err := q.funnelService.Back(c.Request.Context(), profileID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewQuizStateResponse(state), "Moved to previous step")
}

// Reset godoc
// @Summary Reset funnel progress
// @Tags Quiz
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /quiz/reset [post]
func (q *QuizController) Reset(c *gin.Context) {
	profileID, ok := currentProfileID(c)
	if !ok {
		return
	}

	if err := q.funnelService.Reset(c.Request.Context(), profileID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Quiz state reset")
}

// Result godoc
// @Summary Analyze the stored answers
// @Description Runs the analysis on the signed-in user's completed funnel.
// @Tags Quiz
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Security BearerAuth
// @Router /quiz/result [get]
func (q *QuizController) Result(c *gin.Context) {
	profileID, ok := currentProfileID(c)
	if !ok {
		return
	}

	answers, err := q.funnelService.CompletedAnswers(c.Request.Context(), profileID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	result, err := q.analysisService.Analyze(c.Request.Context(), answers)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Analysis completed")
}

// currentProfileID pulls the authenticated user's id out of the gin context.
// The JWT middleware guarantees the key exists on protected routes.
func currentProfileID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
		return uuid.Nil, false
	}
	return id, true
}
