package domain

// SearchMetaRecord is one pre-indexed text chunk from the metadata index
// file. The index is built offline by the ingestion pipeline; this service
// only reads it.
type SearchMetaRecord struct {
	ChunkID    string `json:"chunk_id"`
	SourceID   string `json:"source_id"`
	Title      string `json:"title"`
	URL        string `json:"url"`
	LocalPath  string `json:"local_path"`
	Text       string `json:"text"`
	Page       int    `json:"page"`
	Section    string `json:"section,omitempty"`
	Subsection string `json:"subsection,omitempty"`
}

// SearchHit is one scored chunk returned to the viewer.
type SearchHit struct {
	ChunkID    string `json:"chunk_id"`
	Title      string `json:"title"`
	Snippet    string `json:"snippet"`
	Page       int    `json:"page"`
	Section    string `json:"section,omitempty"`
	Subsection string `json:"subsection,omitempty"`
}

// SearchResponse is the wire shape of the in-document search endpoint.
type SearchResponse struct {
	Query     string      `json:"query"`
	Count     int         `json:"count"`
	MatchType string      `json:"match_type,omitempty"`
	Results   []SearchHit `json:"results"`
}
