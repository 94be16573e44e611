package services

import (
	"context"
	"log"
	"math/rand"

	"github.com/NourAlnujoom/Asfar-tourism-assistant/pkg/utils"
)

// onTheWayKm is the qualifying distance between a candidate site and the
// nearest route waypoint.
const onTheWayKm = 5.0

// DetourSelector picks one lesser-known site worth a side trip between an
// origin and a destination. An empty name with a nil error means no detour
// could be offered for this trip.
type DetourSelector interface {
	SelectDetour(ctx context.Context, origin string, candidates []string, destination string) (string, error)
}

type detourService struct {
	geocoder Geocoder
	routes   RouteProvider
}

func NewDetourService(geocoder Geocoder, routes RouteProvider) DetourSelector {
	return &detourService{geocoder: geocoder, routes: routes}
}

func (s *detourService) SelectDetour(ctx context.Context, origin string, candidates []string, destination string) (string, error) {
	if _, err := s.geocoder.Resolve(ctx, origin); err != nil {
		log.Printf("detour: origin %q did not resolve: %v", origin, err)
		return "", nil
	}
	if _, err := s.geocoder.Resolve(ctx, destination); err != nil {
		log.Printf("detour: destination %q did not resolve: %v", destination, err)
		return "", nil
	}

	waypoints, err := s.routes.Route(ctx, origin, destination)
	if err != nil {
		log.Printf("detour: route %q -> %q failed: %v", origin, destination, err)
		return "", nil
	}
	if len(waypoints) == 0 {
		// No route is not the same as no detour found; the reply simply
		// omits the recommendation.
		return "", nil
	}

	var onTheWay []string
	var ranked []string // resolution order, for the argmin tie-break
	minDistance := make(map[string]float64)

	for _, candidate := range candidates {
		coord, err := s.geocoder.Resolve(ctx, candidate)
		if err != nil {
			continue
		}

		closest := -1.0
		for _, wp := range waypoints {
			d := utils.Haversine(coord.Lat, coord.Lon, wp.Lat, wp.Lon)
			if closest < 0 || d < closest {
				closest = d
			}
		}

		ranked = append(ranked, candidate)
		minDistance[candidate] = closest
		if closest < onTheWayKm {
			onTheWay = append(onTheWay, candidate)
		}
	}

	if len(onTheWay) > 0 {
		return onTheWay[rand.Intn(len(onTheWay))], nil
	}

	if len(ranked) == 0 {
		return "", utils.ErrNoDetourCandidates
	}

	best := ranked[0]
	for _, name := range ranked[1:] {
		if minDistance[name] < minDistance[best] {
			best = name
		}
	}
	return best, nil
}
