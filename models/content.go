package models

// PageContent is a static informational page (delivery, payment, about).
type PageContent struct {
	Slug     string        `json:"slug"`
	Title    string        `json:"title"`
	Sections []PageSection `json:"sections"`
}

type PageSection struct {
	Heading string   `json:"heading,omitempty"`
	Body    []string `json:"body"`
}
