package services

import (
	"context"
	"time"

	"github.com/NourAlnujoom/Asfar-tourism-assistant/internal/models/db_models"
	"github.com/NourAlnujoom/Asfar-tourism-assistant/pkg/utils"
)

// fakeGeocoder resolves from a fixed map and counts provider hits.
type fakeGeocoder struct {
	coords map[string]Coordinate
	calls  int
}

func (g *fakeGeocoder) Resolve(_ context.Context, name string) (Coordinate, error) {
	g.calls++
	if coord, ok := g.coords[name]; ok {
		return coord, nil
	}
	return Coordinate{}, utils.ErrLocationNotFound
}

type fakeRouteProvider struct {
	waypoints []Coordinate
	err       error
}

func (r *fakeRouteProvider) Route(context.Context, string, string) ([]Coordinate, error) {
	return r.waypoints, r.err
}

// fakeWeatherProvider returns canned samples; only the methods the advisor
// touches are meaningful.
type fakeWeatherProvider struct {
	samples    []WeatherSample
	nextSlot   *WeatherSample
	forecastEr error
}

func (w *fakeWeatherProvider) HourlyForecast(context.Context, string) ([]WeatherSample, error) {
	return w.samples, w.forecastEr
}

func (w *fakeWeatherProvider) SampleAt(_ context.Context, _ string, at time.Time) (*WeatherSample, error) {
	target := hourOf(at)
	for i := range w.samples {
		if w.samples[i].Time.Equal(target) {
			return &w.samples[i], nil
		}
	}
	return nil, nil
}

func (w *fakeWeatherProvider) NextAcceptable(context.Context, string, time.Time) (*WeatherSample, error) {
	return w.nextSlot, nil
}

// fakeCrowdPredictor delegates to a closure so each test scripts its own
// hour-by-hour answers.
type fakeCrowdPredictor struct {
	fn func(site string, at time.Time) (CrowdLevel, error)
}

func (c *fakeCrowdPredictor) Predict(_ context.Context, site string, at time.Time) (CrowdLevel, error) {
	return c.fn(site, at)
}

type fakeSensorRepo struct {
	readings []db_models.SensorReading
}

func (r *fakeSensorRepo) Append(_ context.Context, reading *db_models.SensorReading) error {
	r.readings = append(r.readings, *reading)
	return nil
}

func (r *fakeSensorRepo) ListBySite(_ context.Context, siteName string) ([]db_models.SensorReading, error) {
	var out []db_models.SensorReading
	for _, reading := range r.readings {
		if reading.SiteName == siteName {
			out = append(out, reading)
		}
	}
	return out, nil
}

type fakeSiteRepo struct {
	sites []db_models.Site
}

func (r *fakeSiteRepo) ListAll(context.Context) ([]db_models.Site, error) {
	return r.sites, nil
}

func (r *fakeSiteRepo) GetByName(_ context.Context, name string) (*db_models.Site, error) {
	for i := range r.sites {
		if r.sites[i].SiteName == name {
			return &r.sites[i], nil
		}
	}
	return nil, nil
}

func (r *fakeSiteRepo) Create(_ context.Context, site *db_models.Site) (uint, error) {
	site.ID = uint(len(r.sites) + 1)
	r.sites = append(r.sites, *site)
	return site.ID, nil
}

func (r *fakeSiteRepo) Update(context.Context, *db_models.Site) error { return nil }
func (r *fakeSiteRepo) Delete(context.Context, uint) error            { return nil }
func (r *fakeSiteRepo) ClearAll(context.Context) error                { return nil }

// fakeTextGenerator replays scripted replies in call order.
type fakeTextGenerator struct {
	replies []string
	err     error
	prompts []string
}

func (g *fakeTextGenerator) Generate(_ context.Context, _ string, prompt string) (string, error) {
	g.prompts = append(g.prompts, prompt)
	if g.err != nil {
		return "", g.err
	}
	if len(g.replies) == 0 {
		return "", nil
	}
	reply := g.replies[0]
	g.replies = g.replies[1:]
	return reply, nil
}

// stubPredictor ignores its features and predicts a fixed scaled value.
type stubPredictor struct {
	value float64
}

func (p *stubPredictor) Predict([]float64) float64 { return p.value }
