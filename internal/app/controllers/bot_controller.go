package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"placementhub/internal/app/models/dto"
	"placementhub/internal/app/services"
	"placementhub/internal/middleware"
)

// BotController handles the FAQ assistant
type BotController struct {
	botService services.BotService
}

// NewBotController creates a new BotController
func NewBotController(botService services.BotService) *BotController {
	return &BotController{
		botService: botService,
	}
}

// Ask answers a question against the FAQ corpus
// @Summary Ask the FAQ assistant
// @Description Ranks the FAQ corpus against the question and returns the best answer
// @Tags bot
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.AskRequest true "Question"
// @Success 200 {object} dto.APIResponse{data=dto.AskResponse} "Answer"
// @Failure 400 {object} dto.ErrorResponse "Missing question"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /bot/ask [post]
func (c *BotController) Ask(ctx *gin.Context) {
	var req dto.AskRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	resp, err := c.botService.Ask(ctx, req.Question)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      resp,
		Timestamp: time.Now(),
	})
}
