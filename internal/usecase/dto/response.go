package dto

import (
	"github.com/ecoleta-discovery/internal/domain"
)

// CategoryView - category chip with its selected state
type CategoryView struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	ImageURL string `json:"image_url"`
	Selected bool   `json:"selected"`
}

// DiscoveryResponse - view model as served to the renderer
type DiscoveryResponse struct {
	SessionID  string                   `json:"session_id"`
	Categories []CategoryView           `json:"categories"`
	Selection  []int64                  `json:"selection"`
	Position   domain.GeoPosition       `json:"position"`
	Points     []domain.CollectionPoint `json:"points"`
	Loading    domain.LoadingFlags      `json:"loading"`
	LastError  *domain.ErrorView        `json:"last_error,omitempty"`
	Search     domain.SearchStats       `json:"search"`
}

func NewDiscoveryResponse(vm domain.DiscoveryViewModel) DiscoveryResponse {
	categories := make([]CategoryView, 0, len(vm.Categories))
	for _, c := range vm.Categories {
		categories = append(categories, CategoryView{
			ID:       c.ID,
			Title:    c.Title,
			ImageURL: c.ImageURL,
			Selected: vm.IsSelected(c.ID),
		})
	}

	return DiscoveryResponse{
		SessionID:  vm.SessionID,
		Categories: categories,
		Selection:  vm.Selection,
		Position:   vm.Position,
		Points:     vm.Points,
		Loading:    vm.Loading,
		LastError:  vm.LastError,
		Search:     vm.Search,
	}
}

// PointDetailResponse - detail screen payload
type PointDetailResponse struct {
	Point      domain.PointInfo   `json:"point"`
	Items      []domain.ItemTitle `json:"items"`
	ItemTitles string             `json:"item_titles"`
	Address    string             `json:"address"`
}

// ContactResponse - what was handed to the contact dispatcher
type ContactResponse struct {
	Action string `json:"action"`
	Target string `json:"target"`
}
