package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/msc-superfriend/refgateway/internal/clients/answer"
	"github.com/msc-superfriend/refgateway/internal/domain"
	"github.com/msc-superfriend/refgateway/internal/platform/apierr"
	"github.com/msc-superfriend/refgateway/internal/platform/logger"
)

// AskService fronts the external question-answering service. When no client
// is configured the feature is disabled rather than broken.
type AskService interface {
	Enabled() bool
	Ask(ctx context.Context, question string) (*domain.AskAnswer, error)
}

type askService struct {
	log    *logger.Logger
	client answer.Client
}

// NewAskService accepts a nil client, which disables the feature.
func NewAskService(log *logger.Logger, client answer.Client) AskService {
	serviceLog := log.With("service", "AskService")
	return &askService{log: serviceLog, client: client}
}

func (s *askService) Enabled() bool {
	return s.client != nil
}

func (s *askService) Ask(ctx context.Context, question string) (*domain.AskAnswer, error) {
	if s.client == nil {
		return nil, apierr.New(http.StatusServiceUnavailable, "chat_disabled", fmt.Errorf("no answer service configured"))
	}
	out, err := s.client.Ask(ctx, question)
	if err != nil {
		return nil, err
	}
	return out, nil
}
