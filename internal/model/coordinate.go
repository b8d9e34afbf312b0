package model

import "fmt"

// Coordinate is a point on the Earth surface expressed in decimal degrees.
type Coordinate struct {
	// Latitude is the latitude in decimal degrees.
	Latitude float64

	// Longitude is the longitude in decimal degrees.
	Longitude float64
}

// String formats the coordinate the way we print it to users.
func (c Coordinate) String() string {
	return fmt.Sprintf("(%.4f, %.4f)", c.Latitude, c.Longitude)
}
