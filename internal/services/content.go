package services

import (
	"context"
	"os"

	"github.com/msc-superfriend/refgateway/internal/content"
	"github.com/msc-superfriend/refgateway/internal/domain"
	"github.com/msc-superfriend/refgateway/internal/platform/fspath"
	"github.com/msc-superfriend/refgateway/internal/platform/logger"
)

// ContentService serves the doctrine and toolkit listings. Both endpoints
// prefer on-disk data and fall back to bundled samples so the listings never
// come back empty.
type ContentService interface {
	Doctrine(ctx context.Context) domain.LoadResult
	Toolkit(ctx context.Context) domain.LoadResult
}

type ContentConfig struct {
	// Candidate file paths, probed in order. The first regular file wins.
	DoctrineCandidates []string
	ToolkitCandidates  []string
	// DocBaseURL prefixes hrefs for locally served documents.
	DocBaseURL string
}

type contentService struct {
	log *logger.Logger
	cfg ContentConfig
}

func NewContentService(log *logger.Logger, cfg ContentConfig) ContentService {
	serviceLog := log.With("service", "ContentService")
	return &contentService{log: serviceLog, cfg: cfg}
}

func (s *contentService) Doctrine(ctx context.Context) domain.LoadResult {
	path, ok := fspath.FirstExisting(s.cfg.DoctrineCandidates)
	if !ok {
		s.log.Warn("doctrine csv not found, serving samples", "candidates", s.cfg.DoctrineCandidates)
		return fallbackResult("doctrine file not found", content.SampleDoctrine(s.cfg.DocBaseURL))
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		s.log.Error("doctrine csv unreadable, serving samples", "path", path, "error", err)
		return fallbackResult("doctrine file unreadable", content.SampleDoctrine(s.cfg.DocBaseURL))
	}

	items := content.MapDoctrine(string(raw), s.cfg.DocBaseURL)
	if len(items) == 0 {
		s.log.Warn("doctrine csv yielded no items, serving samples", "path", path)
		return fallbackResult("doctrine file empty", content.SampleDoctrine(s.cfg.DocBaseURL))
	}

	s.log.Debug("doctrine loaded", "path", path, "items", len(items))
	return domain.LoadResult{Source: domain.LoadedFromFile, Items: items}
}

func (s *contentService) Toolkit(ctx context.Context) domain.LoadResult {
	path, ok := fspath.FirstExisting(s.cfg.ToolkitCandidates)
	if !ok {
		s.log.Warn("toolkit json not found, serving samples", "candidates", s.cfg.ToolkitCandidates)
		return fallbackResult("toolkit file not found", content.SampleToolkit(s.cfg.DocBaseURL))
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		s.log.Error("toolkit json unreadable, serving samples", "path", path, "error", err)
		return fallbackResult("toolkit file unreadable", content.SampleToolkit(s.cfg.DocBaseURL))
	}

	items, err := content.MapToolkit(raw, s.cfg.DocBaseURL)
	if err != nil {
		s.log.Error("toolkit json malformed, serving samples", "path", path, "error", err)
		return fallbackResult("toolkit file malformed", content.SampleToolkit(s.cfg.DocBaseURL))
	}
	if len(items) == 0 {
		s.log.Warn("toolkit json yielded no items, serving samples", "path", path)
		return fallbackResult("toolkit file empty", content.SampleToolkit(s.cfg.DocBaseURL))
	}
	curated := content.ToolkitCuration.Apply(items, s.cfg.DocBaseURL)
	if len(curated) == 0 {
		s.log.Warn("toolkit curation matched nothing, serving samples", "path", path, "items", len(items))
		return fallbackResult("toolkit curation empty", content.SampleToolkit(s.cfg.DocBaseURL))
	}

	s.log.Debug("toolkit loaded", "path", path, "items", len(curated))
	return domain.LoadResult{Source: domain.LoadedFromFile, Items: curated}
}

func fallbackResult(reason string, items []domain.DisplayItem) domain.LoadResult {
	return domain.LoadResult{Source: domain.LoadedFromSample, Reason: reason, Items: items}
}
