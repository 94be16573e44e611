package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/NourAlnujoom/Asfar-tourism-assistant/internal/repositories"
	"github.com/NourAlnujoom/Asfar-tourism-assistant/pkg/utils"
)

// CrowdLevel is the categorical occupancy estimate for a site at an hour.
type CrowdLevel string

const (
	CrowdLow      CrowdLevel = "Low"
	CrowdModerate CrowdLevel = "Moderate"
	CrowdHigh     CrowdLevel = "High"
)

// historyWindowHours is the number of preceding scaled counts fed to the
// regression model, fixed by how the artifact was trained.
const historyWindowHours = 24

type CrowdPredictor interface {
	Predict(ctx context.Context, site string, at time.Time) (CrowdLevel, error)
}

type crowdService struct {
	model   Predictor
	scaler  *MinMaxScaler
	sensors repositories.SensorRepository
}

func NewCrowdService(model Predictor, scaler *MinMaxScaler, sensors repositories.SensorRepository) CrowdPredictor {
	return &crowdService{model: model, scaler: scaler, sensors: sensors}
}

// Predict locates the exact hour in the site's sensor series, feeds the
// preceding 24 scaled counts to the model, and buckets the inverse-scaled
// prediction. A missing timestamp is an explicit error, never a default.
func (s *crowdService) Predict(ctx context.Context, site string, at time.Time) (CrowdLevel, error) {
	visit := hourOf(at)

	readings, err := s.sensors.ListBySite(ctx, site)
	if err != nil {
		log.Printf("sensor history lookup failed for %q: %v", site, err)
		return "", utils.ErrDatabaseError
	}

	idx := -1
	for i, r := range readings {
		t, err := time.ParseInLocation("2006-01-02 15:04", r.Date+" "+r.Hour, time.Local)
		if err != nil {
			continue
		}
		if t.Equal(visit) {
			idx = i
			break
		}
	}
	if idx < historyWindowHours {
		return "", fmt.Errorf("%w: %s at %s", utils.ErrTimeNotCovered, site, visit.Format("2006-01-02 15:04"))
	}

	features := make([]float64, historyWindowHours)
	for i := 0; i < historyWindowHours; i++ {
		features[i] = s.scaler.Transform(float64(readings[idx-historyWindowHours+i].Count))
	}

	predicted := s.scaler.Inverse(s.model.Predict(features))
	return bucketCrowd(predicted), nil
}

func bucketCrowd(count float64) CrowdLevel {
	switch {
	case count >= 80: // peak hours
		return CrowdHigh
	case count < 10:
		return CrowdLow
	default:
		return CrowdModerate
	}
}
