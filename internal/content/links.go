package content

import (
	"net/url"
	"path"
	"regexp"
	"strings"

	"github.com/msc-superfriend/refgateway/internal/domain"
	"github.com/msc-superfriend/refgateway/internal/normalization"
)

var externalPattern = regexp.MustCompile(`(?i)^https?://`)

// Link is a classified reference: either an external URL passed through
// unchanged, or a local document rewritten to a gateway route.
type Link struct {
	Type     domain.LinkType
	Href     string
	Filename string
}

// ClassifyLink decides whether a raw reference is an external hyperlink or
// a document this service must serve. docBase, when set, prefixes local
// hrefs so clients can reach a separately-hosted gateway. A reference that
// yields no usable filename fails classification and the record is dropped
// by the caller.
func ClassifyLink(raw, docBase string) (Link, bool) {
	cleaned := normalization.CleanText(raw)
	if cleaned == "" {
		return Link{}, false
	}
	if externalPattern.MatchString(cleaned) {
		return Link{Type: domain.LinkExternal, Href: cleaned}, true
	}

	name := baseName(cleaned)
	if name == "" {
		return Link{}, false
	}
	return Link{
		Type:     domain.LinkLocal,
		Href:     docBase + "/docs/" + url.PathEscape(name),
		Filename: name,
	}, true
}

// baseName extracts the final path segment, tolerating Windows separators.
func baseName(ref string) string {
	normalized := strings.ReplaceAll(ref, "\\", "/")
	if strings.HasSuffix(normalized, "/") {
		return ""
	}
	name := path.Base(normalized)
	if name == "." || name == "/" {
		return ""
	}
	return name
}
