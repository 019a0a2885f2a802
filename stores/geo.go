package stores

import "math"

const earthRadiusKm = 6371.0

// haversineKm computes the spherical (great-circle) distance in kilometres
// between two [longitude, latitude] points given in degrees.
func haversineKm(lon1, lat1, lon2, lat2 float64) float64 {
	dLat := radians(lat2 - lat1)
	dLon := radians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(radians(lat1))*math.Cos(radians(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusKm * math.Asin(math.Sqrt(a))
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
