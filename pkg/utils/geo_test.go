package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineZeroForIdenticalPoints(t *testing.T) {
	assert.Zero(t, Haversine(31.95, 35.91, 31.95, 35.91))
}

func TestHaversineIsSymmetric(t *testing.T) {
	ab := Haversine(31.95, 35.91, 30.33, 35.44)
	ba := Haversine(30.33, 35.44, 31.95, 35.91)
	assert.InDelta(t, ab, ba, 1e-9)
}

func TestHaversineOneDegreeOfLongitudeAtEquator(t *testing.T) {
	// One degree along the equator is about 111.19 km for R = 6371.
	assert.InDelta(t, 111.195, Haversine(0, 0, 0, 1), 0.01)
}
