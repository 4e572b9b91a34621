package domain

// Category is a recyclable material classification, usable as a search filter.
type Category struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	ImageURL string `json:"image_url"`
}
