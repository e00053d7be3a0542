package models

// Department is read-only from the gateway's perspective.
type Department struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}
