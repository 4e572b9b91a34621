package dto

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/ecoleta-discovery/internal/domain"
	"github.com/ecoleta-discovery/internal/pkg/utils"
)

const (
	KindPoint  = "collection_point"
	KindDevice = "device"
	KindCenter = "map_center"
)

// NewMarkersFeatureCollection renders the points of vm as GeoJSON for the map.
// The device position is appended when resolved, otherwise the default map
// region is appended as the center.
func NewMarkersFeatureCollection(vm domain.DiscoveryViewModel) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	for _, p := range vm.Points {
		f := geojson.NewFeature(orb.Point{p.Longitude, p.Latitude})
		f.ID = p.ID
		f.Properties["kind"] = KindPoint
		f.Properties["name"] = p.Name
		f.Properties["image_url"] = p.ImageURL
		if vm.Position.Resolved() {
			f.Properties["distance_km"] = utils.HaversineDistance(
				vm.Position.Latitude, vm.Position.Longitude, p.Latitude, p.Longitude)
		}
		fc.Append(f)
	}

	if vm.Position.Resolved() {
		f := geojson.NewFeature(orb.Point{vm.Position.Longitude, vm.Position.Latitude})
		f.Properties["kind"] = KindDevice
		fc.Append(f)
	} else {
		f := geojson.NewFeature(orb.Point{domain.DefaultRegion.Lon, domain.DefaultRegion.Lat})
		f.Properties["kind"] = KindCenter
		fc.Append(f)
	}

	return fc
}
