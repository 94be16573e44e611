package services

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NourAlnujoom/Asfar-tourism-assistant/pkg/utils"
)

func TestCachingGeocoderMemoizesAndNormalizesKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "locations.json")
	cache, err := NewFileCoordinateCache(path)
	require.NoError(t, err)

	provider := &fakeGeocoder{coords: map[string]Coordinate{
		"petra": {Lat: 30.3285, Lon: 35.4444},
	}}
	geocoder := NewCachingGeocoder(provider, cache)

	first, err := geocoder.Resolve(context.Background(), "Petra")
	require.NoError(t, err)
	assert.Equal(t, 1, provider.calls)

	// Same place with different casing and padding hits the cache.
	second, err := geocoder.Resolve(context.Background(), "  PETRA ")
	require.NoError(t, err)
	assert.Equal(t, 1, provider.calls)
	assert.Equal(t, first, second)
}

func TestCachingGeocoderDoesNotCacheFailures(t *testing.T) {
	path := filepath.Join(t.TempDir(), "locations.json")
	cache, err := NewFileCoordinateCache(path)
	require.NoError(t, err)

	provider := &fakeGeocoder{coords: map[string]Coordinate{}}
	geocoder := NewCachingGeocoder(provider, cache)

	_, err = geocoder.Resolve(context.Background(), "Atlantis")
	assert.ErrorIs(t, err, utils.ErrLocationNotFound)

	_, err = geocoder.Resolve(context.Background(), "Atlantis")
	assert.ErrorIs(t, err, utils.ErrLocationNotFound)
	assert.Equal(t, 2, provider.calls)
}

func TestFileCoordinateCachePersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "locations.json")

	cache, err := NewFileCoordinateCache(path)
	require.NoError(t, err)
	require.NoError(t, cache.Put("petra", Coordinate{Lat: 30.3285, Lon: 35.4444}))

	reloaded, err := NewFileCoordinateCache(path)
	require.NoError(t, err)

	coord, ok := reloaded.Get("petra")
	require.True(t, ok)
	assert.InDelta(t, 30.3285, coord.Lat, 1e-9)
	assert.InDelta(t, 35.4444, coord.Lon, 1e-9)
}

func TestFileCoordinateCacheMissingFileStartsEmpty(t *testing.T) {
	cache, err := NewFileCoordinateCache(filepath.Join(t.TempDir(), "absent.json"))
	require.NoError(t, err)

	_, ok := cache.Get("petra")
	assert.False(t, ok)
}
