package services

import (
	"context"
	"log"
	"time"

	"github.com/NourAlnujoom/Asfar-tourism-assistant/internal/repositories"
)

// WeatherAssessment classifies one sample for the reply narrative.
// Unfavorable weather triggers the alternate-time search; cold weather is
// informational only.
type WeatherAssessment struct {
	Narrative   string
	Unfavorable bool
}

func AssessWeather(s WeatherSample) WeatherAssessment {
	switch {
	case s.Temperature > 35:
		return WeatherAssessment{Narrative: "very hot", Unfavorable: true}
	case severeWeatherCodes[s.Code]:
		return WeatherAssessment{Narrative: "rain or thunderstorms expected", Unfavorable: true}
	case s.Temperature < 10:
		return WeatherAssessment{Narrative: "cold; dress warmly or consider indoor sites", Unfavorable: false}
	default:
		return WeatherAssessment{Narrative: "good for a visit", Unfavorable: false}
	}
}

// DetourInfo is the detour recommendation enriched with repository data.
type DetourInfo struct {
	Name        string
	Category    string
	Description string
}

// VisitAdvice is the structured decision handed to the synthesizer. It always
// references either the originally requested hour or a later one on the same
// day before closing time.
type VisitAdvice struct {
	Site        string
	RequestedAt time.Time
	Weather     WeatherSample
	Assessment  WeatherAssessment

	// Unfavorable-weather outcome.
	SkipToday     bool
	AlternateSlot *WeatherSample

	// Crowd outcome at the recommended time.
	CrowdLevel  CrowdLevel
	CrowdCaveat bool

	// Favorable-weather, high-crowd outcome.
	BetterTime    *time.Time
	NoQuieterSlot bool

	Detour *DetourInfo
}

type SchedulingAdvisor interface {
	Advise(ctx context.Context, site string, at time.Time, crowd CrowdLevel, weather WeatherSample, detourSite string) (*VisitAdvice, error)
}

type advisorService struct {
	weather WeatherProvider
	crowd   CrowdPredictor
	sites   repositories.SiteRepository
}

func NewAdvisorService(weather WeatherProvider, crowd CrowdPredictor, sites repositories.SiteRepository) SchedulingAdvisor {
	return &advisorService{weather: weather, crowd: crowd, sites: sites}
}

func (s *advisorService) Advise(ctx context.Context, site string, at time.Time, crowd CrowdLevel, weather WeatherSample, detourSite string) (*VisitAdvice, error) {
	advice := &VisitAdvice{
		Site:        site,
		RequestedAt: at,
		Weather:     weather,
		Assessment:  AssessWeather(weather),
		CrowdLevel:  crowd,
	}

	if advice.Assessment.Unfavorable {
		slot, err := s.weather.NextAcceptable(ctx, site, at)
		if err != nil {
			return nil, err
		}
		if slot == nil {
			advice.SkipToday = true
			advice.CrowdLevel = CrowdLow
		} else {
			advice.AlternateSlot = slot
			level, err := s.crowd.Predict(ctx, site, slot.Time)
			if err != nil {
				return nil, err
			}
			advice.CrowdLevel = level
			advice.CrowdCaveat = level == CrowdHigh
		}
	} else if crowd == CrowdHigh {
		closing := time.Date(at.Year(), at.Month(), at.Day(), closingHour, 0, 0, 0, at.Location())
		for candidate := hourOf(at); !candidate.After(closing); candidate = candidate.Add(time.Hour) {
			level, err := s.crowd.Predict(ctx, site, candidate)
			if err != nil {
				return nil, err
			}
			if level != CrowdHigh {
				t := candidate
				advice.BetterTime = &t
				break
			}
		}
		if advice.BetterTime == nil {
			advice.NoQuieterSlot = true
		}
	}

	if detourSite != "" {
		advice.Detour = s.detourInfo(ctx, detourSite)
	}

	return advice, nil
}

// detourInfo never fails: a site unknown to the repository falls back to a
// generic description.
func (s *advisorService) detourInfo(ctx context.Context, name string) *DetourInfo {
	info := &DetourInfo{
		Name:        name,
		Category:    "General",
		Description: "a place of interest",
	}

	site, err := s.sites.GetByName(ctx, name)
	if err != nil {
		log.Printf("detour site lookup failed for %q: %v", name, err)
		return info
	}
	if site != nil {
		info.Category = site.Category
		info.Description = site.Description
	}
	return info
}
