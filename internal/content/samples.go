package content

import (
	"strconv"

	"github.com/msc-superfriend/refgateway/internal/domain"
)

// sampleRecord is one bundled fallback entry. The raw link runs through the
// same classifier as real data so the fallback set has the same shape.
type sampleRecord struct {
	id    string
	title string
	desc  string
	tag   string
	link  string
}

var doctrineSamples = []sampleRecord{
	{
		id:    "AFI 41-209",
		title: "Medical Logistics Support",
		desc:  "AFI 41-209",
		tag:   "Logistics",
		link:  "https://static.e-publishing.af.mil/production/1/af_sg/publication/afi41-209/afi41-209.pdf",
	},
	{
		id:    "AFI 41-210",
		title: "Tricare Operations and Patient Administration Functions",
		desc:  "AFI 41-210",
		tag:   "Patient administration",
		link:  "https://static.e-publishing.af.mil/production/1/af_sg/publication/afi41-210/afi41-210.pdf",
	},
	{
		id:    "AFI 41-104",
		title: "Professional Board and National Certification Examinations",
		desc:  "AFI 41-104",
		tag:   "Education and training",
		link:  "https://static.e-publishing.af.mil/production/1/af_sg/publication/afi41-104/afi41-104.pdf",
	},
}

var toolkitSamples = []sampleRecord{
	{
		title: "MSC career progression guide",
		desc:  "Milestones and development targets by grade",
		tag:   "Career",
		link:  "career_progression_guide.pdf",
	},
	{
		title: "New officer checklist",
		desc:  "First 90 days for newly assigned MSC officers",
		tag:   "Onboarding",
		link:  "new_officer_checklist.pdf",
	},
	{
		title: "Mentorship program overview",
		desc:  "How to find a mentor and what to expect",
		tag:   "Mentorship",
		link:  "https://www.airforcemedicine.af.mil/About-Us/Medical-Branches/Medical-Service-Corps/",
	},
}

// SampleDoctrine returns the bundled doctrine fallback set.
func SampleDoctrine(docBase string) []domain.DisplayItem {
	return mapSamples(doctrineSamples, "doctrine", docBase)
}

// SampleToolkit returns the bundled toolkit fallback set.
func SampleToolkit(docBase string) []domain.DisplayItem {
	return mapSamples(toolkitSamples, "toolkit", docBase)
}

func mapSamples(records []sampleRecord, kind, docBase string) []domain.DisplayItem {
	items := make([]domain.DisplayItem, 0, len(records))
	for i, rec := range records {
		link, ok := ClassifyLink(rec.link, docBase)
		if !ok {
			continue
		}
		id := rec.id
		if id == "" {
			id = kind + "-" + strconv.Itoa(i+1)
		}
		items = append(items, domain.DisplayItem{
			ID:          id,
			Title:       rec.title,
			Description: rec.desc,
			Tag:         rec.tag,
			LinkType:    link.Type,
			Href:        link.Href,
			Filename:    link.Filename,
		})
	}
	return items
}
