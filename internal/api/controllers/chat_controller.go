package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"pathfinders/internal/models/request_models"
	"pathfinders/internal/services"
	"pathfinders/pkg/utils"
)

type ChatController struct {
	chatService    services.ChatServiceInterface
	accountService services.AccountServiceInterface
}

func NewChatController(
	chatService services.ChatServiceInterface,
	accountService services.AccountServiceInterface,
) *ChatController {
	return &ChatController{
		chatService:    chatService,
		accountService: accountService,
	}
}

// Chat godoc
// @Summary Ask the career assistant
// @Description Streams the assistant's reply as plain text chunks. Premium only.
// @Tags Chat
// @Accept json
// @Produce plain
// @Param request body request_models.ChatRequest true "User message"
// @Success 200 {string} string "streamed reply"
// @Failure 400 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 503 {object} utils.APIResponse
// @Security BearerAuth
// @Router /chat [post]
func (ch *ChatController) Chat(c *gin.Context) {
	profileID, ok := currentProfileID(c)
	if !ok {
		return
	}

	account, err := ch.accountService.Me(c.Request.Context(), profileID.String())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	if !account.IsPremium {
		utils.HandleServiceError(c, utils.ErrPremiumRequired)
		return
	}

	var req request_models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	// Headers are committed with the first token; errors before that still
	// get a JSON error response, errors after can only truncate the stream.
	streamed := false
	err = ch.chatService.Stream(c.Request.Context(), req.Message, func(token string) error {
		if !streamed {
			c.Header("Content-Type", "text/plain; charset=utf-8")
			c.Header("Cache-Control", "no-cache")
			c.Header("X-Accel-Buffering", "no")
			c.Status(http.StatusOK)
			streamed = true
		}
		if _, werr := c.Writer.WriteString(token); werr != nil {
			return werr
		}
		c.Writer.Flush()
		return nil
	})
	if err != nil {
		if !streamed {
			utils.HandleServiceError(c, err)
		}
		return
	}
	if !streamed {
		c.Status(http.StatusOK)
	}
}
