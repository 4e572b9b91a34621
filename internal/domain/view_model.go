package domain

// ErrorKind classifies a failed fetch for the renderer.
type ErrorKind string

const (
	ErrorKindCatalog        ErrorKind = "catalog-error"
	ErrorKindLocationDenied ErrorKind = "location-denied"
	ErrorKindLocation       ErrorKind = "location-error"
	ErrorKindPoints         ErrorKind = "points-error"
	ErrorKindDetail         ErrorKind = "detail-error"
)

// ErrorView is the last failure surfaced to the user. Blocking errors must be
// explained before the map shows real data.
type ErrorView struct {
	Kind     ErrorKind `json:"kind"`
	Message  string    `json:"message"`
	Blocking bool      `json:"blocking"`
}

type LoadingFlags struct {
	Catalog  bool `json:"catalog"`
	Location bool `json:"location"`
	Points   bool `json:"points"`
}

// SearchStats counts point searches by outcome. Discarded results belong to
// searches superseded by a newer request.
type SearchStats struct {
	Issued    uint64 `json:"issued"`
	Applied   uint64 `json:"applied"`
	Discarded uint64 `json:"discarded"`
	Failed    uint64 `json:"failed"`
}

// DiscoveryViewModel is the single read-only state the renderer draws from.
type DiscoveryViewModel struct {
	SessionID  string            `json:"session_id"`
	Categories []Category        `json:"categories"`
	Selection  []int64           `json:"selection"`
	Position   GeoPosition       `json:"position"`
	Points     []CollectionPoint `json:"points"`
	Loading    LoadingFlags      `json:"loading"`
	LastError  *ErrorView        `json:"last_error,omitempty"`
	Search     SearchStats       `json:"search"`
}

// Clone returns a deep copy safe to hand out to readers.
func (vm DiscoveryViewModel) Clone() DiscoveryViewModel {
	cp := vm
	cp.Categories = cloneSlice(vm.Categories)
	cp.Selection = cloneSlice(vm.Selection)
	cp.Points = cloneSlice(vm.Points)
	if vm.LastError != nil {
		e := *vm.LastError
		cp.LastError = &e
	}
	return cp
}

// IsSelected reports whether the category chip with id is toggled on.
func (vm DiscoveryViewModel) IsSelected(id int64) bool {
	for _, sel := range vm.Selection {
		if sel == id {
			return true
		}
	}
	return false
}

// cloneSlice copies s, keeping nil and empty distinct.
func cloneSlice[T any](s []T) []T {
	if s == nil {
		return nil
	}
	out := make([]T, len(s))
	copy(out, s)
	return out
}
