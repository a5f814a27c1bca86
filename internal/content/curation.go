package content

import (
	_ "embed"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/msc-superfriend/refgateway/internal/domain"
)

//go:embed curation.yaml
var curationYAML []byte

// PinnedCard is an always-present editorial card placed ahead of loaded
// toolkit items.
type PinnedCard struct {
	Title   string `yaml:"title"`
	Summary string `yaml:"summary"`
	Tag     string `yaml:"tag"`
	URL     string `yaml:"url"`
}

// Pick selects one loaded toolkit item by case-insensitive title substring,
// optionally renaming it to a canonical display title.
type Pick struct {
	Match   string `yaml:"match"`
	Retitle string `yaml:"retitle"`
}

// Curation is the toolkit's editorial ordering. Doctrine listings have no
// analogous pass.
type Curation struct {
	Pinned []PinnedCard `yaml:"pinned"`
	Picks  []Pick       `yaml:"picks"`
}

// ToolkitCuration is the packaged editorial configuration.
var ToolkitCuration = mustParseCuration(curationYAML)

func mustParseCuration(data []byte) Curation {
	var c Curation
	if err := yaml.Unmarshal(data, &c); err != nil {
		panic("content: invalid embedded curation.yaml: " + err.Error())
	}
	return c
}

// Apply runs the curation pass over freshly mapped toolkit items: pinned
// cards first, then picked items in pick order, each source item consumed
// at most once. Unmatched items are excluded from the curated output.
func (cur Curation) Apply(items []domain.DisplayItem, docBase string) []domain.DisplayItem {
	out := make([]domain.DisplayItem, 0, len(cur.Pinned)+len(cur.Picks))
	for i, card := range cur.Pinned {
		link, ok := ClassifyLink(card.URL, docBase)
		if !ok {
			continue
		}
		out = append(out, domain.DisplayItem{
			ID:          "pinned-" + strconv.Itoa(i+1),
			Title:       card.Title,
			Description: card.Summary,
			Tag:         card.Tag,
			LinkType:    link.Type,
			Href:        link.Href,
			Filename:    link.Filename,
		})
	}

	used := make([]bool, len(items))
	for _, pick := range cur.Picks {
		needle := strings.ToLower(strings.TrimSpace(pick.Match))
		if needle == "" {
			continue
		}
		for i, item := range items {
			if used[i] || !strings.Contains(strings.ToLower(item.Title), needle) {
				continue
			}
			used[i] = true
			if pick.Retitle != "" {
				item.Title = pick.Retitle
			}
			out = append(out, item)
			break
		}
	}
	return out
}
