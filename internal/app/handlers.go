package app

import (
	httpH "github.com/msc-superfriend/refgateway/internal/http/handlers"
	"github.com/msc-superfriend/refgateway/internal/platform/logger"
)

type Handlers struct {
	Health   *httpH.HealthHandler
	Content  *httpH.ContentHandler
	Document *httpH.DocumentHandler
	Ask      *httpH.AskHandler
	Meta     *httpH.MetaHandler
}

func wireHandlers(log *logger.Logger, cfg Config, serviceset Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health:   httpH.NewHealthHandler(),
		Content:  httpH.NewContentHandler(log, serviceset.Content),
		Document: httpH.NewDocumentHandler(log, serviceset.Document, serviceset.DocSearch),
		Ask:      httpH.NewAskHandler(log, serviceset.Ask),
		Meta: httpH.NewMetaHandler(httpH.AppMeta{
			Version:       cfg.AppVersion,
			RateAppURL:    cfg.RateAppURL,
			OfflineWorker: cfg.EnableOfflineWorker,
			ChatEnabled:   serviceset.Ask.Enabled(),
		}),
	}
}
