package domain

// Citation is one supporting source returned by the answer service.
type Citation struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Snippet string `json:"snippet"`
}

// AskAnswer is the answer service response for one question.
type AskAnswer struct {
	Answer    string     `json:"answer"`
	Citations []Citation `json:"citations,omitempty"`
}
