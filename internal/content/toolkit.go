package content

import (
	"encoding/json"
	"strconv"

	"github.com/msc-superfriend/refgateway/internal/domain"
	"github.com/msc-superfriend/refgateway/internal/normalization"
)

const toolkitDefaultTag = "Resource"

type toolkitLink struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// toolkitEntry matches the loosely-shaped records in toolkit.json. Sources
// disagree on where the link lives, so every known field is read and the
// first usable one wins.
type toolkitEntry struct {
	Title         string        `json:"title"`
	Summary       string        `json:"summary"`
	Type          string        `json:"type"`
	Tags          []string      `json:"tags"`
	OfficialLinks []toolkitLink `json:"official_links"`
	WebLinks      []toolkitLink `json:"web_links"`
	Path          string        `json:"path"`
	LocalPath     string        `json:"local_path"`
	File          string        `json:"file"`
}

func (e toolkitEntry) primaryLink() string {
	if len(e.OfficialLinks) > 0 && e.OfficialLinks[0].URL != "" {
		return e.OfficialLinks[0].URL
	}
	if len(e.WebLinks) > 0 && e.WebLinks[0].URL != "" {
		return e.WebLinks[0].URL
	}
	for _, candidate := range []string{e.Path, e.LocalPath, e.File} {
		if candidate != "" {
			return candidate
		}
	}
	return ""
}

// MapToolkit parses toolkit.json and maps each entry into a display item.
// Entries without a usable link are skipped. Returns an error only when the
// blob is not a JSON array; the resolver downgrades that to fallback.
func MapToolkit(raw []byte, docBase string) ([]domain.DisplayItem, error) {
	var entries []toolkitEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, err
	}

	items := make([]domain.DisplayItem, 0, len(entries))
	for i, entry := range entries {
		link, ok := ClassifyLink(entry.primaryLink(), docBase)
		if !ok {
			continue
		}

		title := normalization.ToSentenceCase(entry.Title)
		if title == "" {
			title = "Untitled"
		}
		tag := normalization.ToSentenceCase(entry.Type)
		if tag == "" {
			tag = toolkitDefaultTag
		}

		items = append(items, domain.DisplayItem{
			ID:          "toolkit-" + strconv.Itoa(i+1),
			Title:       title,
			Description: normalization.CleanText(entry.Summary),
			Tag:         tag,
			LinkType:    link.Type,
			Href:        link.Href,
			Filename:    link.Filename,
		})
	}
	return items, nil
}
