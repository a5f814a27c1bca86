package app

import (
	"fmt"

	"github.com/msc-superfriend/refgateway/internal/clients/answer"
	"github.com/msc-superfriend/refgateway/internal/platform/logger"
	"github.com/msc-superfriend/refgateway/internal/services"
)

type Services struct {
	Content   services.ContentService
	Document  services.DocumentService
	DocSearch services.DocSearchService
	Ask       services.AskService
}

func wireServices(log *logger.Logger, cfg Config) (Services, error) {
	log.Info("Wiring services...")

	var askClient answer.Client
	if cfg.AnswerAPIBaseURL != "" {
		var err error
		askClient, err = answer.New(log, answer.Config{BaseURL: cfg.AnswerAPIBaseURL})
		if err != nil {
			return Services{}, fmt.Errorf("init answer client: %w", err)
		}
	} else {
		log.Info("No answer service configured, chat disabled")
	}

	return Services{
		Content: services.NewContentService(log, services.ContentConfig{
			DoctrineCandidates: cfg.DoctrineCandidates,
			ToolkitCandidates:  cfg.ToolkitCandidates,
			DocBaseURL:         cfg.DocBaseURL,
		}),
		Document: services.NewDocumentService(log, services.DocumentConfig{
			DocsDirs: cfg.DocsDirs,
		}),
		DocSearch: services.NewDocSearchService(log, services.SearchConfig{
			MetaCandidates: cfg.MetaCandidates,
		}),
		Ask: services.NewAskService(log, askClient),
	}, nil
}
