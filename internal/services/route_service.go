package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"
)

// RouteProvider returns the ordered waypoints of a driving route between two
// named places. An empty slice means "no route available" and is distinct
// from "no detour found" downstream.
type RouteProvider interface {
	Route(ctx context.Context, origin, destination string) ([]Coordinate, error)
}

type googleDirections struct {
	http    *http.Client
	apiKey  string
	baseURL string
}

func NewGoogleDirections(apiKey string) RouteProvider {
	return &googleDirections{
		http:    &http.Client{Timeout: 15 * time.Second},
		apiKey:  apiKey,
		baseURL: "https://maps.googleapis.com/maps/api/directions/json",
	}
}

// Route takes the end location of every step of the first leg of the first
// route. A non-OK provider status is logged and yields an empty result.
func (g *googleDirections) Route(ctx context.Context, origin, destination string) ([]Coordinate, error) {
	q := url.Values{}
	q.Set("origin", origin)
	q.Set("destination", destination)
	q.Set("key", g.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("directions request: %w", err)
	}
	resp, err := g.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("directions http error: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("directions bad status: %s", resp.Status)
	}

	var payload struct {
		Status string `json:"status"`
		Routes []struct {
			Legs []struct {
				Steps []struct {
					EndLocation struct {
						Lat float64 `json:"lat"`
						Lng float64 `json:"lng"`
					} `json:"end_location"`
				} `json:"steps"`
			} `json:"legs"`
		} `json:"routes"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("directions decode: %w", err)
	}

	if payload.Status != "OK" || len(payload.Routes) == 0 || len(payload.Routes[0].Legs) == 0 {
		log.Printf("directions lookup failed for %q -> %q: status %s", origin, destination, payload.Status)
		return nil, nil
	}

	steps := payload.Routes[0].Legs[0].Steps
	points := make([]Coordinate, 0, len(steps))
	for _, step := range steps {
		points = append(points, Coordinate{Lat: step.EndLocation.Lat, Lon: step.EndLocation.Lng})
	}
	return points, nil
}
