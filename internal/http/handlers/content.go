package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/msc-superfriend/refgateway/internal/http/response"
	"github.com/msc-superfriend/refgateway/internal/platform/logger"
	"github.com/msc-superfriend/refgateway/internal/services"
)

type ContentHandler struct {
	log            *logger.Logger
	contentService services.ContentService
}

func NewContentHandler(log *logger.Logger, contentService services.ContentService) *ContentHandler {
	handlerLog := log.With("handler", "ContentHandler")
	return &ContentHandler{log: handlerLog, contentService: contentService}
}

// GET /api/content/doctrine
func (h *ContentHandler) GetDoctrine(c *gin.Context) {
	response.RespondOK(c, h.contentService.Doctrine(c.Request.Context()))
}

// GET /api/content/toolkit
func (h *ContentHandler) GetToolkit(c *gin.Context) {
	response.RespondOK(c, h.contentService.Toolkit(c.Request.Context()))
}
