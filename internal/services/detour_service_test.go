package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NourAlnujoom/Asfar-tourism-assistant/pkg/utils"
)

func TestSelectDetourPrefersOnTheWayCandidate(t *testing.T) {
	geocoder := &fakeGeocoder{coords: map[string]Coordinate{
		"Amman": {Lat: 0.5, Lon: 0},
		"Petra": {Lat: -0.5, Lon: 0},
		"Near":  {Lat: 0.027, Lon: 0}, // ~3 km off the waypoint
		"Far":   {Lat: 0.45, Lon: 0},  // ~50 km off
	}}
	routes := &fakeRouteProvider{waypoints: []Coordinate{{Lat: 0, Lon: 0}}}

	svc := NewDetourService(geocoder, routes)
	pick, err := svc.SelectDetour(context.Background(), "Amman", []string{"Far", "Near"}, "Petra")
	require.NoError(t, err)
	assert.Equal(t, "Near", pick)
}

func TestSelectDetourFallsBackToClosestCandidate(t *testing.T) {
	geocoder := &fakeGeocoder{coords: map[string]Coordinate{
		"Amman":  {Lat: 0.5, Lon: 0},
		"Petra":  {Lat: -0.5, Lon: 0},
		"Closer": {Lat: 0.09, Lon: 0}, // ~10 km, past the on-the-way cutoff
		"Far":    {Lat: 0.45, Lon: 0},
	}}
	routes := &fakeRouteProvider{waypoints: []Coordinate{{Lat: 0, Lon: 0}}}

	svc := NewDetourService(geocoder, routes)
	pick, err := svc.SelectDetour(context.Background(), "Amman", []string{"Far", "Closer"}, "Petra")
	require.NoError(t, err)
	assert.Equal(t, "Closer", pick)
}

func TestSelectDetourSkipsUnresolvableCandidates(t *testing.T) {
	geocoder := &fakeGeocoder{coords: map[string]Coordinate{
		"Amman": {Lat: 0.5, Lon: 0},
		"Petra": {Lat: -0.5, Lon: 0},
		"Near":  {Lat: 0.027, Lon: 0},
	}}
	routes := &fakeRouteProvider{waypoints: []Coordinate{{Lat: 0, Lon: 0}}}

	svc := NewDetourService(geocoder, routes)
	pick, err := svc.SelectDetour(context.Background(), "Amman", []string{"Nowhere", "Near"}, "Petra")
	require.NoError(t, err)
	assert.Equal(t, "Near", pick)
}

func TestSelectDetourAllCandidatesUnresolvable(t *testing.T) {
	geocoder := &fakeGeocoder{coords: map[string]Coordinate{
		"Amman": {Lat: 0.5, Lon: 0},
		"Petra": {Lat: -0.5, Lon: 0},
	}}
	routes := &fakeRouteProvider{waypoints: []Coordinate{{Lat: 0, Lon: 0}}}

	svc := NewDetourService(geocoder, routes)
	_, err := svc.SelectDetour(context.Background(), "Amman", []string{"Nowhere", "Lost"}, "Petra")
	assert.ErrorIs(t, err, utils.ErrNoDetourCandidates)
}

func TestSelectDetourUnresolvableOriginIsNotAnError(t *testing.T) {
	geocoder := &fakeGeocoder{coords: map[string]Coordinate{
		"Petra": {Lat: -0.5, Lon: 0},
	}}
	routes := &fakeRouteProvider{waypoints: []Coordinate{{Lat: 0, Lon: 0}}}

	svc := NewDetourService(geocoder, routes)
	pick, err := svc.SelectDetour(context.Background(), "Atlantis", []string{"Near"}, "Petra")
	require.NoError(t, err)
	assert.Empty(t, pick)
}

func TestSelectDetourEmptyRoute(t *testing.T) {
	geocoder := &fakeGeocoder{coords: map[string]Coordinate{
		"Amman": {Lat: 0.5, Lon: 0},
		"Petra": {Lat: -0.5, Lon: 0},
		"Near":  {Lat: 0.027, Lon: 0},
	}}
	routes := &fakeRouteProvider{waypoints: nil}

	svc := NewDetourService(geocoder, routes)
	pick, err := svc.SelectDetour(context.Background(), "Amman", []string{"Near"}, "Petra")
	require.NoError(t, err)
	assert.Empty(t, pick)
}
