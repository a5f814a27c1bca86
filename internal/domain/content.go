package domain

// LinkType says whether a display item points outside the application or at
// a document the gateway serves itself.
type LinkType string

const (
	LinkExternal LinkType = "external"
	LinkLocal    LinkType = "local"
)

// DisplayItem is the unified record the client lists render. Local items
// always carry the base filename so the document gateway can re-resolve the
// file server-side.
type DisplayItem struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tag         string   `json:"tag"`
	LinkType    LinkType `json:"link_type"`
	Href        string   `json:"href"`
	Filename    string   `json:"filename,omitempty"`
}

// LoadSource tags how a listing was produced.
type LoadSource string

const (
	LoadedFromFile   LoadSource = "file"
	LoadedFromSample LoadSource = "fallback"
)

// LoadResult is the resolver output. Fallback is a valid outcome, not an
// error; Reason explains why the sample set was served.
type LoadResult struct {
	Source LoadSource    `json:"source"`
	Reason string        `json:"reason,omitempty"`
	Items  []DisplayItem `json:"items"`
}
