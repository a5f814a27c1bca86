package services

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/msc-superfriend/refgateway/internal/platform/apierr"
	"github.com/msc-superfriend/refgateway/internal/platform/fspath"
	"github.com/msc-superfriend/refgateway/internal/platform/logger"
)

// Document describes a resolved local file ready to be streamed to a client.
type Document struct {
	Path        string
	Filename    string
	ContentType string
	Size        int64
}

// DocumentService resolves requested filenames against the configured
// document directories.
type DocumentService interface {
	Open(ctx context.Context, name string) (*Document, error)
}

type DocumentConfig struct {
	// Directories probed in order for the requested file.
	DocsDirs []string
}

type documentService struct {
	log *logger.Logger
	cfg DocumentConfig
}

func NewDocumentService(log *logger.Logger, cfg DocumentConfig) DocumentService {
	serviceLog := log.With("service", "DocumentService")
	return &documentService{log: serviceLog, cfg: cfg}
}

var contentTypes = map[string]string{
	".pdf":  "application/pdf",
	".xlsx": "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	".csv":  "text/csv",
	".json": "application/json",
	".txt":  "text/plain",
}

// ContentTypeFor returns the MIME type for a filename by extension.
func ContentTypeFor(name string) string {
	if ct, ok := contentTypes[strings.ToLower(filepath.Ext(name))]; ok {
		return ct
	}
	return "application/octet-stream"
}

func (s *documentService) Open(ctx context.Context, name string) (*Document, error) {
	clean, err := sanitizeFilename(name)
	if err != nil {
		return nil, err
	}

	full, ok := fspath.FirstExistingIn(s.cfg.DocsDirs, clean)
	if !ok {
		s.log.Debug("document not found", "filename", clean)
		return nil, apierr.New(http.StatusNotFound, "file_not_found", fmt.Errorf("no such document: %s", clean))
	}

	info, err := os.Stat(full)
	if err != nil {
		return nil, apierr.New(http.StatusNotFound, "file_not_found", err)
	}

	return &Document{
		Path:        full,
		Filename:    clean,
		ContentType: ContentTypeFor(clean),
		Size:        info.Size(),
	}, nil
}

// sanitizeFilename reduces the request to a bare base name and rejects
// anything that could escape the document directories. The check runs before
// any filesystem access.
func sanitizeFilename(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", apierr.New(http.StatusBadRequest, "invalid_filename", fmt.Errorf("empty filename"))
	}
	if strings.Contains(trimmed, "..") {
		return "", apierr.New(http.StatusBadRequest, "invalid_filename", fmt.Errorf("path traversal rejected: %q", name))
	}
	base := path.Base(strings.ReplaceAll(trimmed, "\\", "/"))
	if base == "." || base == "/" || base == "" {
		return "", apierr.New(http.StatusBadRequest, "invalid_filename", fmt.Errorf("unusable filename: %q", name))
	}
	return base, nil
}
