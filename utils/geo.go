// utils/geo.go
package utils

import "math"

// EarthRadiusKm is the mean Earth radius used by the haversine formulas.
const EarthRadiusKm = 6371.0

// DistanceFunc computes a distance in kilometres between two points given in degrees.
type DistanceFunc func(lat1, lon1, lat2, lon2 float64) float64

// DistanceKm is the haversine distance as historically reported by the flight
// path tool. The cosine term multiplies cos(lat1) by itself instead of
// cos(lat1)*cos(lat2), so the result is only symmetric when both latitudes are
// equal. It is kept as the default so reports stay reproducible; see
// DistanceKmCorrected.
func DistanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLon := toRadians(lon2 - lon1)
	rLat1 := toRadians(lat1)

	a := math.Pow(math.Sin(dLat/2), 2) +
		math.Pow(math.Sin(dLon/2), 2)*math.Cos(rLat1)*math.Cos(rLat1)
	return haversine(a)
}

// DistanceKmCorrected is the textbook haversine great-circle distance.
func DistanceKmCorrected(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLon := toRadians(lon2 - lon1)

	a := math.Pow(math.Sin(dLat/2), 2) +
		math.Pow(math.Sin(dLon/2), 2)*math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))
	return haversine(a)
}

// DistanceFuncByName maps the configuration value to a formula. Unknown names
// fall back to the legacy formula and report false.
func DistanceFuncByName(name string) (DistanceFunc, bool) {
	switch name {
	case "", "legacy":
		return DistanceKm, true
	case "corrected":
		return DistanceKmCorrected, true
	default:
		return DistanceKm, false
	}
}

func haversine(a float64) float64 {
	// rounding can push a a hair above 1 for antipodal points
	a = math.Min(math.Max(a, 0), 1)
	return EarthRadiusKm * 2 * math.Asin(math.Sqrt(a))
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
