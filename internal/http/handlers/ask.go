package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/msc-superfriend/refgateway/internal/http/response"
	"github.com/msc-superfriend/refgateway/internal/platform/logger"
	"github.com/msc-superfriend/refgateway/internal/services"
)

type AskHandler struct {
	log        *logger.Logger
	askService services.AskService
}

func NewAskHandler(log *logger.Logger, askService services.AskService) *AskHandler {
	handlerLog := log.With("handler", "AskHandler")
	return &AskHandler{log: handlerLog, askService: askService}
}

type askRequest struct {
	Question string `json:"question" binding:"required,min=1,max=2000"`
}

// POST /api/ask
func (h *AskHandler) Ask(c *gin.Context) {
	var req askRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}

	answer, err := h.askService.Ask(c.Request.Context(), req.Question)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, answer)
}
