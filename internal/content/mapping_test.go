package content

import (
	"strings"
	"testing"

	"github.com/msc-superfriend/refgateway/internal/domain"
)

const doctrineSeed = "pub,title,msc_functional_area,official_publication_pdf\n" +
	"AFI 41-209,MEDICAL LOGISTICS SUPPORT,LOGISTICS,https://static.e-publishing.af.mil/afi41-209.pdf\n" +
	"AFI 41-210,\"TRICARE OPERATIONS, PATIENT ADMIN\",PATIENT ADMINISTRATION,reports/afi41-210.pdf\n" +
	",No Link Here,training,\n"

func TestMapDoctrine(t *testing.T) {
	t.Parallel()

	items := MapDoctrine(doctrineSeed, "")
	if len(items) != 2 {
		t.Fatalf("expected 2 items (unlinked record dropped), got=%d: %v", len(items), items)
	}

	first := items[0]
	if first.ID != "AFI 41-209" {
		t.Fatalf("id: got=%q", first.ID)
	}
	if first.Title != "Medical Logistics Support" {
		t.Fatalf("title: got=%q", first.Title)
	}
	if first.Tag != "Logistics" {
		t.Fatalf("tag: got=%q", first.Tag)
	}
	if first.LinkType != domain.LinkExternal {
		t.Fatalf("link type: got=%q", first.LinkType)
	}

	second := items[1]
	if second.LinkType != domain.LinkLocal {
		t.Fatalf("second link type: got=%q", second.LinkType)
	}
	if second.Href != "/docs/afi41-210.pdf" || second.Filename != "afi41-210.pdf" {
		t.Fatalf("second link: href=%q filename=%q", second.Href, second.Filename)
	}
	// Quoted comma must not split the title.
	if !strings.Contains(second.Title, "Tricare Operations, Patient Admin") {
		t.Fatalf("second title: got=%q", second.Title)
	}
}

func TestMapDoctrinePositionalID(t *testing.T) {
	t.Parallel()

	seed := "pub,title,msc_functional_area,official_publication_pdf\n" +
		",Some Title,,https://example.mil/a.pdf\n"
	items := MapDoctrine(seed, "")
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got=%v", items)
	}
	if items[0].ID != "doctrine-1" {
		t.Fatalf("positional id: got=%q", items[0].ID)
	}
	if items[0].Tag != "Doctrine" {
		t.Fatalf("default tag: got=%q", items[0].Tag)
	}
}

func TestMapToolkit(t *testing.T) {
	t.Parallel()

	raw := []byte(`[
		{"title": "MSC CAREER PROGRESSION GUIDE", "summary": "  Milestones  by grade ", "type": "GUIDE",
		 "official_links": [{"label": "Open", "url": "https://example.mil/career"}]},
		{"title": "Local handbook", "path": "docs/handbook.pdf"},
		{"title": "No link at all"}
	]`)

	items, err := MapToolkit(raw, "")
	if err != nil {
		t.Fatalf("MapToolkit: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items (unlinked entry dropped), got=%v", items)
	}

	first := items[0]
	if first.Title != "MSC career progression guide" {
		t.Fatalf("title: got=%q", first.Title)
	}
	if first.Description != "Milestones by grade" {
		t.Fatalf("description: got=%q", first.Description)
	}
	if first.Tag != "Guide" {
		t.Fatalf("tag: got=%q", first.Tag)
	}
	if first.ID != "toolkit-1" {
		t.Fatalf("id: got=%q", first.ID)
	}

	second := items[1]
	if second.LinkType != domain.LinkLocal || second.Filename != "handbook.pdf" {
		t.Fatalf("second item: %+v", second)
	}
	if second.Tag != "Resource" {
		t.Fatalf("default tag: got=%q", second.Tag)
	}
}

func TestMapToolkitLinkPriority(t *testing.T) {
	t.Parallel()

	raw := []byte(`[{"title": "Both links",
		"official_links": [{"url": "https://example.mil/official"}],
		"web_links": [{"url": "https://example.mil/web"}],
		"path": "docs/fallback.pdf"}]`)
	items, err := MapToolkit(raw, "")
	if err != nil {
		t.Fatalf("MapToolkit: %v", err)
	}
	if len(items) != 1 || items[0].Href != "https://example.mil/official" {
		t.Fatalf("official link should win: %+v", items)
	}
}

func TestMapToolkitRejectsNonArray(t *testing.T) {
	t.Parallel()

	if _, err := MapToolkit([]byte(`{"not": "an array"}`), ""); err == nil {
		t.Fatalf("expected error for non-array JSON")
	}
}

func TestCurationApply(t *testing.T) {
	t.Parallel()

	cur := Curation{
		Pinned: []PinnedCard{
			{Title: "Official MSC Landing Page", Summary: "AFMS page", Tag: "Official",
				URL: "https://www.airforcemedicine.af.mil/msc/"},
			{Title: "DHA Strategy", Summary: "Strategy page", Tag: "Official",
				URL: "https://www.dha.mil/About-DHA/DHA-Strategy"},
		},
		Picks: []Pick{
			{Match: "career progression", Retitle: "MSC Career Progression Guide"},
			{Match: "mentorship"},
			{Match: "never matches anything"},
		},
	}

	items := []domain.DisplayItem{
		{ID: "toolkit-1", Title: "Extra item nobody picked", Href: "https://x.mil/a"},
		{ID: "toolkit-2", Title: "MSC career progression guide", Href: "https://x.mil/b"},
		{ID: "toolkit-3", Title: "Mentorship program overview", Href: "https://x.mil/c"},
	}

	got := cur.Apply(items, "")
	if len(got) != 4 {
		t.Fatalf("expected 2 pinned + 2 picks, got=%d: %v", len(got), got)
	}
	if got[0].Title != "Official MSC Landing Page" || got[1].Title != "DHA Strategy" {
		t.Fatalf("pinned order wrong: %v", got[:2])
	}
	if got[2].ID != "toolkit-2" || got[2].Title != "MSC Career Progression Guide" {
		t.Fatalf("retitled pick wrong: %+v", got[2])
	}
	if got[3].ID != "toolkit-3" || got[3].Title != "Mentorship program overview" {
		t.Fatalf("plain pick wrong: %+v", got[3])
	}
	for _, item := range got {
		if item.ID == "toolkit-1" {
			t.Fatalf("unmatched item leaked into curated output: %+v", item)
		}
	}
}

func TestCurationConsumesItemOnce(t *testing.T) {
	t.Parallel()

	cur := Curation{Picks: []Pick{{Match: "guide"}, {Match: "guide"}}}
	items := []domain.DisplayItem{{ID: "toolkit-1", Title: "Only guide"}}
	if got := cur.Apply(items, ""); len(got) != 1 {
		t.Fatalf("item consumed more than once: %v", got)
	}
}

func TestPackagedCurationParses(t *testing.T) {
	t.Parallel()

	if len(ToolkitCuration.Pinned) != 2 {
		t.Fatalf("packaged curation pinned: got=%d want=2", len(ToolkitCuration.Pinned))
	}
	if len(ToolkitCuration.Picks) == 0 {
		t.Fatalf("packaged curation has no picks")
	}
}

func TestSamplesClassified(t *testing.T) {
	t.Parallel()

	for _, item := range SampleDoctrine("") {
		if item.Href == "" {
			t.Fatalf("sample doctrine item missing href: %+v", item)
		}
	}
	toolkit := SampleToolkit("https://api.example.mil")
	var sawLocal bool
	for _, item := range toolkit {
		if item.Href == "" {
			t.Fatalf("sample toolkit item missing href: %+v", item)
		}
		if item.LinkType == domain.LinkLocal {
			sawLocal = true
			if !strings.HasPrefix(item.Href, "https://api.example.mil/docs/") {
				t.Fatalf("local sample href missing api base: %q", item.Href)
			}
		}
	}
	if !sawLocal {
		t.Fatalf("expected at least one local toolkit sample")
	}
}
