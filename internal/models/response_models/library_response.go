package response_models

type LibraryItemResponse struct {
	ID      string   `json:"id"`
	Slug    string   `json:"slug"`
	Title   string   `json:"title"`
	Summary string   `json:"summary"`
	Tags    []string `json:"tags,omitempty"`
	Premium bool     `json:"premium"`
	// Body carries the teaser for free-tier callers and the full article for
	// premium ones.
	Body   string `json:"body,omitempty"`
	Locked bool   `json:"locked"`
}

type RelatedItemResponse struct {
	ID         string  `json:"id"`
	Slug       string  `json:"slug"`
	Title      string  `json:"title"`
	Summary    string  `json:"summary"`
	Similarity float64 `json:"similarity"`
}
