package app

import (
	"path/filepath"

	"github.com/msc-superfriend/refgateway/internal/platform/envutil"
	"github.com/msc-superfriend/refgateway/internal/platform/logger"
)

// Config is built once at startup and handed to components as parameters.
// Nothing below this layer reads the environment.
type Config struct {
	Port    string
	LogMode string

	// ContentRoot anchors the candidate deployment layouts.
	ContentRoot string

	DoctrineCandidates []string
	ToolkitCandidates  []string
	DocsDirs           []string
	MetaCandidates     []string

	// DocBaseURL prefixes hrefs for locally served documents; empty means
	// relative /docs/ links.
	DocBaseURL string

	// AnswerAPIBaseURL enables the chat feature when set.
	AnswerAPIBaseURL string

	AppVersion          string
	RateAppURL          string
	EnableOfflineWorker bool
}

func LoadConfig(log *logger.Logger) Config {
	root := envutil.Str("CONTENT_ROOT", ".")

	cfg := Config{
		Port:        envutil.Str("PORT", "8080"),
		LogMode:     envutil.Str("LOG_MODE", "development"),
		ContentRoot: root,

		DoctrineCandidates: []string{
			filepath.Join(root, "web", "public", "data", "afi41_seed.csv"),
			filepath.Join(root, "frontend", "content", "afi41_seed.csv"),
			filepath.Join(root, "content", "afi41_seed.csv"),
		},
		ToolkitCandidates: []string{
			filepath.Join(root, "frontend", "content", "toolkit.json"),
			filepath.Join(root, "content", "toolkit.json"),
		},

		DocBaseURL:       envutil.Str("DOC_BASE_URL", ""),
		AnswerAPIBaseURL: envutil.Str("ANSWER_API_BASE_URL", ""),

		AppVersion:          envutil.Str("APP_VERSION", ""),
		RateAppURL:          envutil.Str("RATE_APP_URL", ""),
		EnableOfflineWorker: envutil.Bool("ENABLE_OFFLINE_WORKER", false),
	}

	if docsDir := envutil.Str("DOCS_DIR", ""); docsDir != "" {
		cfg.DocsDirs = []string{docsDir}
	} else {
		cfg.DocsDirs = []string{
			filepath.Join(root, "backend", "data", "toolkit_docs"),
			filepath.Join(root, "frontend", "docs"),
		}
	}

	if indexDir := envutil.Str("INDEX_DIR", ""); indexDir != "" {
		cfg.MetaCandidates = []string{filepath.Join(indexDir, "meta.json")}
	} else {
		cfg.MetaCandidates = []string{
			filepath.Join(root, "backend", "data", "index", "meta.json"),
			filepath.Join(root, "index", "meta.json"),
		}
	}

	log.Info("Configuration loaded",
		"content_root", cfg.ContentRoot,
		"docs_dirs", cfg.DocsDirs,
		"meta_candidates", cfg.MetaCandidates,
		"chat_enabled", cfg.AnswerAPIBaseURL != "",
	)
	return cfg
}
