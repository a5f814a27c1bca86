package services

import (
	"context"
	"encoding/json"
	"os"
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/msc-superfriend/refgateway/internal/domain"
	"github.com/msc-superfriend/refgateway/internal/platform/fspath"
	"github.com/msc-superfriend/refgateway/internal/platform/logger"
)

// DocSearchService answers in-document keyword queries against the pre-built
// metadata index. It locates pages and sections for a viewer; it is not a
// full-text ranking engine.
type DocSearchService interface {
	Search(ctx context.Context, filename, query string) (*domain.SearchResponse, error)
}

type SearchConfig struct {
	// Candidate paths for the metadata index file, probed in order.
	MetaCandidates []string
	// MaxResults caps each result set. Zero means the default of 20.
	MaxResults int
}

type docSearchService struct {
	log *logger.Logger
	cfg SearchConfig
}

func NewDocSearchService(log *logger.Logger, cfg SearchConfig) DocSearchService {
	serviceLog := log.With("service", "DocSearchService")
	if cfg.MaxResults <= 0 {
		cfg.MaxResults = 20
	}
	return &docSearchService{log: serviceLog, cfg: cfg}
}

func (s *docSearchService) Search(ctx context.Context, filename, query string) (*domain.SearchResponse, error) {
	query = strings.TrimSpace(query)
	resp := &domain.SearchResponse{Query: query, Results: []domain.SearchHit{}}
	if query == "" {
		return resp, nil
	}

	chunks, err := s.loadIndex()
	if err != nil {
		return nil, err
	}
	if len(chunks) == 0 {
		return resp, nil
	}

	scoped := filterByFilename(chunks, filename)
	if len(scoped) == 0 {
		s.log.Debug("no chunks matched filename", "filename", filename, "chunks", len(chunks))
		return resp, nil
	}

	lowered := strings.ToLower(query)

	hits := scoreExact(scoped, lowered)
	matchType := "exact"
	if len(hits) == 0 {
		hits = scoreTokens(scoped, lowered)
		matchType = "token"
	}
	if len(hits) == 0 {
		return resp, nil
	}

	sort.SliceStable(hits, func(i, j int) bool { return hits[i].score > hits[j].score })
	if len(hits) > s.cfg.MaxResults {
		hits = hits[:s.cfg.MaxResults]
	}

	resp.MatchType = matchType
	for _, h := range hits {
		resp.Results = append(resp.Results, domain.SearchHit{
			ChunkID:    h.chunk.ChunkID,
			Title:      h.chunk.Title,
			Snippet:    snippet(h.chunk.Text, lowered),
			Page:       h.chunk.Page,
			Section:    h.chunk.Section,
			Subsection: h.chunk.Subsection,
		})
	}
	resp.Count = len(resp.Results)
	return resp, nil
}

// loadIndex reads the first existing metadata index candidate. A missing
// index is an empty result set, not an error.
func (s *docSearchService) loadIndex() ([]domain.SearchMetaRecord, error) {
	path, ok := fspath.FirstExisting(s.cfg.MetaCandidates)
	if !ok {
		s.log.Debug("metadata index not found", "candidates", s.cfg.MetaCandidates)
		return nil, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		s.log.Warn("metadata index unreadable", "path", path, "error", err)
		return nil, nil
	}
	var chunks []domain.SearchMetaRecord
	if err := json.Unmarshal(raw, &chunks); err != nil {
		s.log.Warn("metadata index malformed", "path", path, "error", err)
		return nil, nil
	}
	return chunks, nil
}

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// policyNumber splits a compact policy identifier like "afi41-209" into its
// letter prefix and numeric remainder.
var policyNumber = regexp.MustCompile(`^([a-z]+)\s*([0-9][0-9-]*)$`)

func alnumOnly(s string) string {
	return nonAlnum.ReplaceAllString(strings.ToLower(s), "")
}

// filenameAliases derives the lowered textual forms under which a document
// may be referenced in the index: the filename itself, its extension-stripped
// stem, and spaced/compacted variants of policy-number identifiers so
// "AFI 41-209" and "afi41-209" find each other.
func filenameAliases(filename string) []string {
	lowered := strings.ToLower(strings.TrimSpace(filename))
	if lowered == "" {
		return nil
	}
	aliases := []string{lowered}
	stem := lowered
	if i := strings.LastIndex(stem, "."); i > 0 {
		stem = stem[:i]
		aliases = append(aliases, stem)
	}
	compact := strings.ReplaceAll(stem, " ", "")
	if compact != stem {
		aliases = append(aliases, compact)
	}
	if m := policyNumber.FindStringSubmatch(compact); m != nil {
		aliases = append(aliases, m[1]+" "+m[2])
	}
	return aliases
}

func filterByFilename(chunks []domain.SearchMetaRecord, filename string) []domain.SearchMetaRecord {
	aliases := filenameAliases(filename)
	if len(aliases) == 0 {
		return nil
	}
	stemAlnum := alnumOnly(aliases[len(aliases)-1])

	var out []domain.SearchMetaRecord
	for _, c := range chunks {
		if chunkReferences(c, aliases, stemAlnum) {
			out = append(out, c)
		}
	}
	return out
}

func chunkReferences(c domain.SearchMetaRecord, aliases []string, stemAlnum string) bool {
	fields := []string{c.SourceID, c.Title, c.URL, c.LocalPath}
	for _, f := range fields {
		if f == "" {
			continue
		}
		lowered := strings.ToLower(f)
		for _, a := range aliases {
			if strings.Contains(lowered, a) {
				return true
			}
		}
		if stemAlnum != "" && strings.Contains(alnumOnly(f), stemAlnum) {
			return true
		}
	}
	return false
}

type scoredChunk struct {
	chunk domain.SearchMetaRecord
	score int
}

func scoreExact(chunks []domain.SearchMetaRecord, loweredQuery string) []scoredChunk {
	var hits []scoredChunk
	for _, c := range chunks {
		n := strings.Count(strings.ToLower(c.Text), loweredQuery)
		if n > 0 {
			hits = append(hits, scoredChunk{chunk: c, score: n})
		}
	}
	return hits
}

func scoreTokens(chunks []domain.SearchMetaRecord, loweredQuery string) []scoredChunk {
	var terms []string
	for _, t := range strings.Fields(loweredQuery) {
		if len(t) >= 2 {
			terms = append(terms, t)
		}
	}
	if len(terms) == 0 {
		return nil
	}
	var hits []scoredChunk
	for _, c := range chunks {
		text := strings.ToLower(c.Text)
		score := 0
		for _, t := range terms {
			score += strings.Count(text, t)
		}
		if score > 0 {
			hits = append(hits, scoredChunk{chunk: c, score: score})
		}
	}
	return hits
}

const (
	snippetBefore   = 80
	snippetAfter    = 120
	snippetFallback = 260
)

// snippet extracts a window around the first occurrence of the query, or the
// head of the chunk when the phrase does not appear verbatim. The match is
// located in the original text so offsets stay valid where case folding
// changes byte length.
func snippet(text, loweredQuery string) string {
	idx, matchLen := indexFold(text, loweredQuery)
	if idx < 0 {
		if len(text) <= snippetFallback {
			return strings.TrimSpace(text)
		}
		cut := snippetFallback
		for cut > 0 && !utf8.RuneStart(text[cut]) {
			cut--
		}
		return strings.TrimSpace(text[:cut]) + "..."
	}

	start := idx - snippetBefore
	if start < 0 {
		start = 0
	}
	for start > 0 && !utf8.RuneStart(text[start]) {
		start--
	}
	end := idx + matchLen + snippetAfter
	if end > len(text) {
		end = len(text)
	}
	for end < len(text) && !utf8.RuneStart(text[end]) {
		end++
	}

	out := strings.TrimSpace(text[start:end])
	if start > 0 {
		out = "..." + out
	}
	if end < len(text) {
		out = out + "..."
	}
	return out
}

// indexFold finds the first case-insensitive occurrence of query in text and
// returns the byte offset and length of the match within text itself.
func indexFold(text, query string) (int, int) {
	queryRunes := []rune(query)
	if len(queryRunes) == 0 {
		return -1, 0
	}
	for start := 0; start < len(text); {
		end := start
		matched := true
		for _, qr := range queryRunes {
			r, size := utf8.DecodeRuneInString(text[end:])
			if size == 0 || unicode.ToLower(r) != unicode.ToLower(qr) {
				matched = false
				break
			}
			end += size
		}
		if matched {
			return start, end - start
		}
		_, size := utf8.DecodeRuneInString(text[start:])
		start += size
	}
	return -1, 0
}
