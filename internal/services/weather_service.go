package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/NourAlnujoom/Asfar-tourism-assistant/pkg/utils"
)

// closingHour bounds every alternate-time search: sites close at 18:00.
const closingHour = 18

// severeWeatherCodes are the WMO rain/thunderstorm codes treated as
// unfavorable regardless of temperature.
var severeWeatherCodes = map[int]bool{
	61: true,
	63: true,
	65: true,
	95: true,
}

// WeatherSample is one hour of forecast. Samples are fetched fresh per
// request and never cached.
type WeatherSample struct {
	Time        time.Time
	Temperature float64 // °C
	Code        int     // WMO weather code
}

// Acceptable reports whether the hour is fine for an outdoor visit.
func (s WeatherSample) Acceptable() bool {
	return s.Temperature < 35 || !severeWeatherCodes[s.Code]
}

// hourOf floors a time to the top of its local hour.
func hourOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), 0, 0, 0, t.Location())
}

type WeatherProvider interface {
	// HourlyForecast returns today's hourly samples for the site.
	HourlyForecast(ctx context.Context, site string) ([]WeatherSample, error)
	// SampleAt returns the sample matching the queried hour exactly, or nil
	// when the hour is not in the series.
	SampleAt(ctx context.Context, site string, at time.Time) (*WeatherSample, error)
	// NextAcceptable inspects the hour immediately after the queried one. It
	// returns that sample when it falls before closing time and is
	// acceptable; a failed first candidate ends the search with nil.
	NextAcceptable(ctx context.Context, site string, after time.Time) (*WeatherSample, error)
}

type openMeteoProvider struct {
	http     *http.Client
	baseURL  string
	geocoder Geocoder
}

func NewOpenMeteoProvider(geocoder Geocoder) WeatherProvider {
	return &openMeteoProvider{
		http:     &http.Client{Timeout: 15 * time.Second},
		baseURL:  "https://api.open-meteo.com/v1/forecast",
		geocoder: geocoder,
	}
}

// NewOpenMeteoProviderAt points the client at a custom endpoint; used by tests.
func NewOpenMeteoProviderAt(baseURL string, geocoder Geocoder) WeatherProvider {
	return &openMeteoProvider{
		http:     &http.Client{Timeout: 15 * time.Second},
		baseURL:  baseURL,
		geocoder: geocoder,
	}
}

func (p *openMeteoProvider) HourlyForecast(ctx context.Context, site string) ([]WeatherSample, error) {
	coord, err := p.geocoder.Resolve(ctx, site)
	if err != nil {
		return nil, err
	}

	q := url.Values{}
	q.Set("latitude", fmt.Sprintf("%f", coord.Lat))
	q.Set("longitude", fmt.Sprintf("%f", coord.Lon))
	q.Set("hourly", "temperature_2m,weathercode")
	q.Set("timezone", "auto")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("forecast request: %w", err)
	}
	resp, err := p.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrWeatherUnavailable, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("%w: status %s", utils.ErrWeatherUnavailable, resp.Status)
	}

	var payload struct {
		Hourly struct {
			Time        []string  `json:"time"`
			Temperature []float64 `json:"temperature_2m"`
			WeatherCode []int     `json:"weathercode"`
		} `json:"hourly"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("forecast decode: %w", err)
	}

	samples := make([]WeatherSample, 0, len(payload.Hourly.Time))
	for i, raw := range payload.Hourly.Time {
		if i >= len(payload.Hourly.Temperature) || i >= len(payload.Hourly.WeatherCode) {
			break
		}
		t, err := time.ParseInLocation("2006-01-02T15:04", raw, time.Local)
		if err != nil {
			return nil, fmt.Errorf("forecast time %q: %w", raw, err)
		}
		samples = append(samples, WeatherSample{
			Time:        t,
			Temperature: payload.Hourly.Temperature[i],
			Code:        payload.Hourly.WeatherCode[i],
		})
	}
	return samples, nil
}

func (p *openMeteoProvider) SampleAt(ctx context.Context, site string, at time.Time) (*WeatherSample, error) {
	samples, err := p.HourlyForecast(ctx, site)
	if err != nil {
		return nil, err
	}
	target := hourOf(at)
	for i := range samples {
		if samples[i].Time.Equal(target) {
			return &samples[i], nil
		}
	}
	return nil, nil
}

func (p *openMeteoProvider) NextAcceptable(ctx context.Context, site string, after time.Time) (*WeatherSample, error) {
	samples, err := p.HourlyForecast(ctx, site)
	if err != nil {
		return nil, err
	}

	target := hourOf(after)
	idx := -1
	for i := range samples {
		if samples[i].Time.Equal(target) {
			idx = i
			break
		}
	}
	if idx == -1 || idx+1 >= len(samples) {
		return nil, nil
	}

	// Only the slot right after the requested hour is considered; rejecting
	// it means advising against the whole day rather than skipping further
	// ahead.
	candidate := samples[idx+1]
	closing := time.Date(target.Year(), target.Month(), target.Day(), closingHour, 0, 0, 0, target.Location())
	if candidate.Time.Before(closing) && candidate.Acceptable() {
		return &candidate, nil
	}
	return nil, nil
}
