package repository

import "math"

const earthRadiusKM = 6371

// greatCircleKM computes the distance in kilometers between two points on
// the Earth's surface using the spherical law of cosines.
func greatCircleKM(lat1, lon1, lat2, lon2 float64) float64 {
	rlat1 := lat1 * math.Pi / 180
	rlat2 := lat2 * math.Pi / 180
	dlon := (lon2 - lon1) * math.Pi / 180

	cosine := math.Sin(rlat1)*math.Sin(rlat2) + math.Cos(rlat1)*math.Cos(rlat2)*math.Cos(dlon)
	// Rounding can push the argument just outside acos's domain for
	// identical or antipodal points.
	if cosine > 1 {
		cosine = 1
	} else if cosine < -1 {
		cosine = -1
	}

	return math.Acos(cosine) * earthRadiusKM
}
