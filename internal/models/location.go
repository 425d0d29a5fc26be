package models

// Point is a WGS84 coordinate pair, longitude first like GeoJSON.
type Point struct {
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
}

func (p Point) Valid() bool {
	if p.Longitude < -180 || p.Longitude > 180 {
		return false
	}
	if p.Latitude < -90 || p.Latitude > 90 {
		return false
	}
	return true
}
