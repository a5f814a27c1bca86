package handlers

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/msc-superfriend/refgateway/internal/http/response"
	"github.com/msc-superfriend/refgateway/internal/platform/logger"
	"github.com/msc-superfriend/refgateway/internal/services"
)

type DocumentHandler struct {
	log             *logger.Logger
	documentService services.DocumentService
	searchService   services.DocSearchService
}

func NewDocumentHandler(log *logger.Logger, documentService services.DocumentService, searchService services.DocSearchService) *DocumentHandler {
	handlerLog := log.With("handler", "DocumentHandler")
	return &DocumentHandler{log: handlerLog, documentService: documentService, searchService: searchService}
}

// GET /api/docs/:filename
func (h *DocumentHandler) GetDocument(c *gin.Context) {
	doc, err := h.documentService.Open(c.Request.Context(), c.Param("filename"))
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}

	disposition := "inline"
	if c.Query("download") == "1" {
		disposition = "attachment"
	}
	c.Header("Content-Type", doc.ContentType)
	c.Header("Content-Disposition", fmt.Sprintf("%s; filename=%q", disposition, doc.Filename))
	c.Header("Cache-Control", "public, max-age=300")
	c.File(doc.Path)
}

// GET /api/docs/:filename/search
func (h *DocumentHandler) SearchDocument(c *gin.Context) {
	resp, err := h.searchService.Search(c.Request.Context(), c.Param("filename"), c.Query("q"))
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, resp)
}
