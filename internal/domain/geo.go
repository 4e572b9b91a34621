package domain

// PositionStatus is the lifecycle of the device position within a session.
type PositionStatus string

const (
	PositionUnknown  PositionStatus = "unknown"
	PositionResolved PositionStatus = "resolved"
	PositionDenied   PositionStatus = "denied"
	// PositionFailed means permission was granted but resolution failed.
	PositionFailed PositionStatus = "failed"
)

type GeoPosition struct {
	Status    PositionStatus `json:"status"`
	Latitude  float64        `json:"latitude,omitempty"`
	Longitude float64        `json:"longitude,omitempty"`
}

func UnknownPosition() GeoPosition {
	return GeoPosition{Status: PositionUnknown}
}

func ResolvedPosition(lat, lon float64) GeoPosition {
	return GeoPosition{Status: PositionResolved, Latitude: lat, Longitude: lon}
}

func (p GeoPosition) Resolved() bool {
	return p.Status == PositionResolved
}

// PermissionStatus is the answer of the geolocation permission prompt.
type PermissionStatus string

const (
	PermissionGranted PermissionStatus = "granted"
	PermissionDenied  PermissionStatus = "denied"
)

// DefaultRegion is where the map is centered before the device position is known.
var DefaultRegion = Point{Lat: -8.4718959, Lon: -35.7314862}

type Point struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}
