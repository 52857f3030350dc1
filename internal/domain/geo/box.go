// Package geo provides the coordinate types used by proximity searches.
package geo

// BoundingBox is an axis-aligned search area in degrees.
type BoundingBox struct {
	MinLat float64
	MaxLat float64
	MinLon float64
	MaxLon float64
}

// NewBoundingBox returns the box centered on (latitude, longitude) whose
// half-side is radius degrees.
func NewBoundingBox(latitude, longitude, radius float64) BoundingBox {
	return BoundingBox{
		MinLat: latitude - radius,
		MaxLat: latitude + radius,
		MinLon: longitude - radius,
		MaxLon: longitude + radius,
	}
}

// Contains reports whether the point lies strictly inside the box.
// Points on the boundary do not match.
func (b BoundingBox) Contains(latitude, longitude float64) bool {
	return latitude > b.MinLat && latitude < b.MaxLat &&
		longitude > b.MinLon && longitude < b.MaxLon
}
