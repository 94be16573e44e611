package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/NourAlnujoom/Asfar-tourism-assistant/internal/models/db_models"
)

// SensorRepository stores raw visitor counts. Readings are append-only and
// back the crowd predictor's historical series.
type SensorRepository interface {
	Append(ctx context.Context, reading *db_models.SensorReading) error
	ListBySite(ctx context.Context, siteName string) ([]db_models.SensorReading, error)
}

type sensorRepository struct {
	db *gorm.DB
}

func NewSensorRepository(db *gorm.DB) SensorRepository {
	return &sensorRepository{db: db}
}

func (r *sensorRepository) Append(ctx context.Context, reading *db_models.SensorReading) error {
	return r.db.WithContext(ctx).Create(reading).Error
}

func (r *sensorRepository) ListBySite(ctx context.Context, siteName string) ([]db_models.SensorReading, error) {
	var readings []db_models.SensorReading
	err := r.db.WithContext(ctx).
		Where("site_name = ?", siteName).
		Order("date, hour").
		Find(&readings).Error
	if err != nil {
		return nil, err
	}
	return readings, nil
}
