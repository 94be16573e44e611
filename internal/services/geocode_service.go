package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/NourAlnujoom/Asfar-tourism-assistant/pkg/utils"
)

// Coordinate is a WGS84 latitude/longitude pair.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Geocoder resolves a free-text place name to coordinates.
type Geocoder interface {
	Resolve(ctx context.Context, name string) (Coordinate, error)
}

// googleGeocoder calls the Google Maps Geocoding API. No retries: an
// ambiguous, empty, or failed result surfaces as ErrLocationNotFound.
type googleGeocoder struct {
	http    *http.Client
	apiKey  string
	baseURL string
}

func NewGoogleGeocoder(apiKey string) Geocoder {
	return &googleGeocoder{
		http:    &http.Client{Timeout: 15 * time.Second},
		apiKey:  apiKey,
		baseURL: "https://maps.googleapis.com/maps/api/geocode/json",
	}
}

func (g *googleGeocoder) Resolve(ctx context.Context, name string) (Coordinate, error) {
	q := url.Values{}
	q.Set("address", name)
	q.Set("key", g.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return Coordinate{}, fmt.Errorf("geocode request: %w", err)
	}
	resp, err := g.http.Do(req)
	if err != nil {
		return Coordinate{}, fmt.Errorf("geocode http error: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return Coordinate{}, fmt.Errorf("geocode bad status: %s", resp.Status)
	}

	var payload struct {
		Status  string `json:"status"`
		Results []struct {
			Geometry struct {
				Location struct {
					Lat float64 `json:"lat"`
					Lng float64 `json:"lng"`
				} `json:"location"`
			} `json:"geometry"`
		} `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return Coordinate{}, fmt.Errorf("geocode decode: %w", err)
	}

	if payload.Status != "OK" || len(payload.Results) == 0 {
		return Coordinate{}, utils.ErrLocationNotFound
	}

	loc := payload.Results[0].Geometry.Location
	return Coordinate{Lat: loc.Lat, Lon: loc.Lng}, nil
}

// cachingGeocoder memoizes successful lookups in a durable coordinate cache.
// Keys are lower-cased and trimmed before any lookup.
type cachingGeocoder struct {
	provider Geocoder
	cache    CoordinateCache
}

func NewCachingGeocoder(provider Geocoder, cache CoordinateCache) Geocoder {
	return &cachingGeocoder{provider: provider, cache: cache}
}

func (g *cachingGeocoder) Resolve(ctx context.Context, name string) (Coordinate, error) {
	key := strings.ToLower(strings.TrimSpace(name))

	if coord, ok := g.cache.Get(key); ok {
		return coord, nil
	}

	coord, err := g.provider.Resolve(ctx, key)
	if err != nil {
		return Coordinate{}, err
	}

	if err := g.cache.Put(key, coord); err != nil {
		// A failed flush only loses the memoization, not the result.
		log.Printf("coordinate cache persist failed for %q: %v", key, err)
	}
	return coord, nil
}
