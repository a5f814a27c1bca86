package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/msc-superfriend/refgateway/internal/http/response"
)

// AppMeta is the feature-flag surface clients read at startup.
type AppMeta struct {
	Version       string `json:"version,omitempty"`
	RateAppURL    string `json:"rate_app_url,omitempty"`
	OfflineWorker bool   `json:"offline_worker"`
	ChatEnabled   bool   `json:"chat_enabled"`
}

type MetaHandler struct {
	meta AppMeta
}

func NewMetaHandler(meta AppMeta) *MetaHandler {
	return &MetaHandler{meta: meta}
}

// GET /api/meta
func (h *MetaHandler) GetMeta(c *gin.Context) {
	response.RespondOK(c, h.meta)
}
