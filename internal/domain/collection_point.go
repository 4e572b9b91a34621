package domain

// CollectionPoint is a physical place accepting some categories of material.
type CollectionPoint struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	ImageURL  string  `json:"image_url"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// PointSearch is the filter of a point search. Items holds category IDs;
// an empty list means every category.
type PointSearch struct {
	City  string
	UF    string
	Items []int64
}

// PointInfo is the detailed record of a single collection point.
type PointInfo struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Image     string  `json:"image"`
	ImageURL  string  `json:"image_url"`
	Email     string  `json:"email"`
	Whatsapp  string  `json:"whatsapp"`
	City      string  `json:"city"`
	UF        string  `json:"uf"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type ItemTitle struct {
	Title string `json:"title"`
}

// PointDetail is the body of GET /points/:id. The "point" key is shared with
// the list endpoint where it holds an array.
type PointDetail struct {
	Point PointInfo   `json:"point"`
	Items []ItemTitle `json:"items"`
}

// MailDraft is handed to the mail composer collaborator.
type MailDraft struct {
	Subject    string
	Recipients []string
}
