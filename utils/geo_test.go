package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceKm_ZeroForIdenticalPoints(t *testing.T) {
	points := [][2]float64{
		{0, 0},
		{51.4706, -0.461941},
		{5.605186, -0.166786},
		{-33.946111, 151.177222},
		{89.9, 179.9},
	}
	for _, p := range points {
		assert.Zero(t, DistanceKm(p[0], p[1], p[0], p[1]))
		assert.Zero(t, DistanceKmCorrected(p[0], p[1], p[0], p[1]))
	}
}

func TestDistanceKmCorrected_Symmetric(t *testing.T) {
	cases := [][4]float64{
		{51.4706, -0.461941, 5.605186, -0.166786},
		{49.012779, 2.55, 40.639751, -73.778925},
		{-33.946111, 151.177222, 35.552258, 139.779694},
		{0, 0, 0, 180},
	}
	for _, c := range cases {
		ab := DistanceKmCorrected(c[0], c[1], c[2], c[3])
		ba := DistanceKmCorrected(c[2], c[3], c[0], c[1])
		assert.InDelta(t, ab, ba, 1e-9)
		assert.GreaterOrEqual(t, ab, 0.0)
	}
}

func TestDistanceKm_LegacyMatchesCorrectedOnSameLatitude(t *testing.T) {
	legacy := DistanceKm(10, 20, 10, 45)
	corrected := DistanceKmCorrected(10, 20, 10, 45)
	assert.InDelta(t, corrected, legacy, 1e-9)

	// symmetric as long as the latitudes agree
	assert.InDelta(t, legacy, DistanceKm(10, 45, 10, 20), 1e-9)
}

func TestDistanceKm_KnownDistances(t *testing.T) {
	// LHR -> ACC is roughly 5100 km
	d := DistanceKmCorrected(51.4706, -0.461941, 5.605186, -0.166786)
	assert.InDelta(t, 5100, d, 15)

	// a quarter of the equator
	q := DistanceKmCorrected(0, 0, 0, 90)
	assert.InDelta(t, math.Pi*EarthRadiusKm/2, q, 1e-6)

	// the legacy formula is deterministic and never negative
	first := DistanceKm(51.4706, -0.461941, 5.605186, -0.166786)
	assert.Equal(t, first, DistanceKm(51.4706, -0.461941, 5.605186, -0.166786))
	assert.Greater(t, first, 0.0)
}

func TestDistanceFuncByName(t *testing.T) {
	f, ok := DistanceFuncByName("corrected")
	assert.True(t, ok)
	assert.InDelta(t, DistanceKmCorrected(1, 2, 3, 4), f(1, 2, 3, 4), 1e-12)

	f, ok = DistanceFuncByName("")
	assert.True(t, ok)
	assert.InDelta(t, DistanceKm(1, 2, 3, 4), f(1, 2, 3, 4), 1e-12)

	_, ok = DistanceFuncByName("vincenty")
	assert.False(t, ok)
}
