package http

import (
	"github.com/gin-gonic/gin"

	httpH "github.com/msc-superfriend/refgateway/internal/http/handlers"
	httpMW "github.com/msc-superfriend/refgateway/internal/http/middleware"
	"github.com/msc-superfriend/refgateway/internal/platform/logger"
)

type RouterConfig struct {
	Log *logger.Logger

	ExtraCORSOrigins []string

	HealthHandler   *httpH.HealthHandler
	ContentHandler  *httpH.ContentHandler
	DocumentHandler *httpH.DocumentHandler
	AskHandler      *httpH.AskHandler
	MetaHandler     *httpH.MetaHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(httpMW.AttachRequestContext())
	if cfg.Log != nil {
		r.Use(httpMW.RequestLog(cfg.Log))
	}
	r.Use(httpMW.CORS(cfg.ExtraCORSOrigins))

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}

	api := r.Group("/api")
	{
		// Content listings
		if cfg.ContentHandler != nil {
			api.GET("/content/doctrine", cfg.ContentHandler.GetDoctrine)
			api.GET("/content/toolkit", cfg.ContentHandler.GetToolkit)
		}

		// Documents
		if cfg.DocumentHandler != nil {
			api.GET("/docs/:filename", cfg.DocumentHandler.GetDocument)
			api.GET("/docs/:filename/search", cfg.DocumentHandler.SearchDocument)
		}

		// Chat
		if cfg.AskHandler != nil {
			api.POST("/ask", cfg.AskHandler.Ask)
		}

		// Feature flags
		if cfg.MetaHandler != nil {
			api.GET("/meta", cfg.MetaHandler.GetMeta)
		}
	}

	return r
}
