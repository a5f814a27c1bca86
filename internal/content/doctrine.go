package content

import (
	"strconv"

	"github.com/msc-superfriend/refgateway/internal/delimited"
	"github.com/msc-superfriend/refgateway/internal/domain"
	"github.com/msc-superfriend/refgateway/internal/normalization"
)

// Seed file columns for doctrine publications.
const (
	doctrineColPub   = "pub"
	doctrineColTitle = "title"
	doctrineColArea  = "msc_functional_area"
	doctrineColPDF   = "official_publication_pdf"
)

const doctrineDefaultTag = "Doctrine"

// MapDoctrine turns the doctrine seed blob into display items. Records
// whose publication link cannot be classified are dropped.
func MapDoctrine(raw string, docBase string) []domain.DisplayItem {
	records := delimited.Records(raw)
	items := make([]domain.DisplayItem, 0, len(records))
	for i, record := range records {
		link, ok := ClassifyLink(record[doctrineColPDF], docBase)
		if !ok {
			continue
		}

		id := normalization.CleanText(record[doctrineColPub])
		if id == "" {
			id = "doctrine-" + strconv.Itoa(i+1)
		}
		title := normalization.ToPublicationTitleCase(record[doctrineColTitle])
		if title == "" {
			title = "Untitled"
		}
		tag := normalization.ToSentenceCase(record[doctrineColArea])
		if tag == "" {
			tag = doctrineDefaultTag
		}

		items = append(items, domain.DisplayItem{
			ID:          id,
			Title:       title,
			Description: normalization.CleanText(record[doctrineColPub]),
			Tag:         tag,
			LinkType:    link.Type,
			Href:        link.Href,
			Filename:    link.Filename,
		})
	}
	return items
}
