package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeIndex(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "meta.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write index: %v", err)
	}
	return path
}

func newSearchService(t *testing.T, indexPath string) DocSearchService {
	t.Helper()
	return NewDocSearchService(testLogger(t), SearchConfig{MetaCandidates: []string{indexPath}})
}

func TestSearchEmptyQuerySkipsIndex(t *testing.T) {
	// Point at a path that would fail loudly if ever read.
	svc := newSearchService(t, "/definitely/not/meta.json")
	resp, err := svc.Search(context.Background(), "afi41-209.pdf", "   ")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if resp.Count != 0 || len(resp.Results) != 0 {
		t.Fatalf("empty query: %+v", resp)
	}
}

func TestSearchMissingIndexIsEmptyNotError(t *testing.T) {
	svc := newSearchService(t, filepath.Join(t.TempDir(), "meta.json"))
	resp, err := svc.Search(context.Background(), "afi41-209.pdf", "risk")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if resp.Count != 0 {
		t.Fatalf("expected empty results, got %+v", resp)
	}
}

func TestSearchExactPhraseEndToEnd(t *testing.T) {
	index := writeIndex(t, `[
		{"chunk_id": "c1", "source_id": "afi41-209.pdf",
		 "text": "Commanders shall review risk annually. Risk review cadence is annual.", "page": 4},
		{"chunk_id": "c2", "source_id": "afi41-210.pdf",
		 "text": "Risk review belongs to a different publication.", "page": 9}
	]`)
	svc := newSearchService(t, index)

	resp, err := svc.Search(context.Background(), "AFI41-209.pdf", "risk review")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if resp.MatchType != "exact" {
		t.Fatalf("match type: got=%q want=%q", resp.MatchType, "exact")
	}
	if resp.Count != 1 {
		t.Fatalf("count: got=%d want=1 (%+v)", resp.Count, resp.Results)
	}
	hit := resp.Results[0]
	if hit.ChunkID != "c1" || hit.Page != 4 {
		t.Fatalf("hit: %+v", hit)
	}
	if !strings.Contains(hit.Snippet, "Risk review cadence is annual.") {
		t.Fatalf("snippet: got=%q", hit.Snippet)
	}
}

func TestSearchSortsByOccurrenceAndCaps(t *testing.T) {
	var chunks []string
	// 25 chunks where chunk i repeats the phrase i+1 times.
	for i := 0; i < 25; i++ {
		text := strings.TrimSpace(strings.Repeat("risk review. ", i+1))
		chunks = append(chunks, fmt.Sprintf(
			`{"chunk_id": "c%d", "source_id": "afi41-209.pdf", "text": %q, "page": %d}`, i, text, i))
	}
	index := writeIndex(t, "["+strings.Join(chunks, ",")+"]")
	svc := newSearchService(t, index)

	resp, err := svc.Search(context.Background(), "afi41-209.pdf", "risk review")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if resp.Count != 20 {
		t.Fatalf("cap: got=%d want=20", resp.Count)
	}
	if resp.Results[0].ChunkID != "c24" {
		t.Fatalf("expected highest-occurrence chunk first, got %q", resp.Results[0].ChunkID)
	}
}

func TestSearchTokenFallback(t *testing.T) {
	index := writeIndex(t, `[
		{"chunk_id": "c1", "source_id": "afi41-209.pdf",
		 "text": "Annual review occurs each fiscal year. Risk owners attend.", "page": 2}
	]`)
	svc := newSearchService(t, index)

	// The phrase never appears verbatim, but both terms do.
	resp, err := svc.Search(context.Background(), "afi41-209.pdf", "risk review")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if resp.MatchType != "token" {
		t.Fatalf("match type: got=%q want=%q", resp.MatchType, "token")
	}
	if resp.Count != 1 {
		t.Fatalf("count: got=%d (%+v)", resp.Count, resp.Results)
	}
	if !strings.HasPrefix(resp.Results[0].Snippet, "Annual review") {
		t.Fatalf("token snippet should be the chunk head, got %q", resp.Results[0].Snippet)
	}
}

func TestSearchFilenameAliases(t *testing.T) {
	index := writeIndex(t, `[
		{"chunk_id": "spaced", "title": "AFI 41-209 Medical Logistics", "text": "risk review", "page": 1},
		{"chunk_id": "compact", "local_path": "backend/data/docs/afi41-209.pdf", "text": "risk review", "page": 2},
		{"chunk_id": "other", "source_id": "afi41-210.pdf", "text": "risk review", "page": 3}
	]`)
	svc := newSearchService(t, index)

	resp, err := svc.Search(context.Background(), "AFI41-209.pdf", "risk review")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if resp.Count != 2 {
		t.Fatalf("alias filtering: got=%d want=2 (%+v)", resp.Count, resp.Results)
	}
	for _, hit := range resp.Results {
		if hit.ChunkID == "other" {
			t.Fatalf("chunk for a different publication leaked in")
		}
	}
}

func TestSearchSnippetOffsetsSurviveCaseFolding(t *testing.T) {
	// Lowercasing "İ" (U+0130) grows from two bytes to three, so offsets
	// computed in a lowered copy drift off the original text.
	long := strings.Repeat("İ", 40) + " " + strings.Repeat("x", 100) +
		" the needle phrase sits here " + strings.Repeat("y", 200)
	index := writeIndex(t, fmt.Sprintf(
		`[{"chunk_id": "c1", "source_id": "doc.pdf", "text": %q, "page": 1}]`, long))
	svc := newSearchService(t, index)

	resp, err := svc.Search(context.Background(), "doc.pdf", "needle phrase")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if resp.Count != 1 {
		t.Fatalf("count: %+v", resp)
	}
	if !strings.Contains(resp.Results[0].Snippet, "needle phrase") {
		t.Fatalf("snippet drifted off the match: %q", resp.Results[0].Snippet)
	}
}

func TestSearchSnippetWindowing(t *testing.T) {
	long := strings.Repeat("x", 200) + " the needle phrase sits here " + strings.Repeat("y", 300)
	index := writeIndex(t, fmt.Sprintf(
		`[{"chunk_id": "c1", "source_id": "doc.pdf", "text": %q, "page": 1}]`, long))
	svc := newSearchService(t, index)

	resp, err := svc.Search(context.Background(), "doc.pdf", "needle phrase")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if resp.Count != 1 {
		t.Fatalf("count: %+v", resp)
	}
	snip := resp.Results[0].Snippet
	if !strings.HasPrefix(snip, "...") || !strings.HasSuffix(snip, "...") {
		t.Fatalf("expected ellipses on both ends, got %q", snip)
	}
	if !strings.Contains(snip, "needle phrase") {
		t.Fatalf("snippet lost the match: %q", snip)
	}
}
