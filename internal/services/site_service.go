package services

import (
	"context"
	"errors"
	"log"

	"gorm.io/gorm"

	"github.com/NourAlnujoom/Asfar-tourism-assistant/internal/models/db_models"
	"github.com/NourAlnujoom/Asfar-tourism-assistant/internal/models/request_models"
	"github.com/NourAlnujoom/Asfar-tourism-assistant/internal/models/response_models"
	"github.com/NourAlnujoom/Asfar-tourism-assistant/internal/repositories"
	"github.com/NourAlnujoom/Asfar-tourism-assistant/pkg/utils"
)

type SiteServiceInterface interface {
	ListSites(ctx context.Context) ([]response_models.Site, error)
	CreateSite(ctx context.Context, req request_models.SiteRequest) error
	UpdateSite(ctx context.Context, id uint, req request_models.SiteRequest) error
	DeleteSite(ctx context.Context, id uint) error
	AddSensorReading(ctx context.Context, req request_models.SensorReadingRequest) error
}

type SiteService struct {
	sites   repositories.SiteRepository
	sensors repositories.SensorRepository
}

func NewSiteService(sites repositories.SiteRepository, sensors repositories.SensorRepository) SiteServiceInterface {
	return &SiteService{sites: sites, sensors: sensors}
}

func (s *SiteService) ListSites(ctx context.Context) ([]response_models.Site, error) {
	sites, err := s.sites.ListAll(ctx)
	if err != nil {
		log.Printf("Error listing sites: %v", err)
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.Site, 0, len(sites))
	for _, site := range sites {
		out = append(out, response_models.Site{
			ID:          site.ID,
			SiteName:    site.SiteName,
			Category:    site.Category,
			Description: site.Description,
		})
	}
	return out, nil
}

func (s *SiteService) CreateSite(ctx context.Context, req request_models.SiteRequest) error {
	_, err := s.sites.Create(ctx, &db_models.Site{
		SiteName:    req.SiteName,
		Category:    req.Category,
		Description: req.Description,
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return utils.ErrSiteAlreadyExists
		}
		log.Printf("Error creating site: %v", err)
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *SiteService) UpdateSite(ctx context.Context, id uint, req request_models.SiteRequest) error {
	err := s.sites.Update(ctx, &db_models.Site{
		ID:          id,
		SiteName:    req.SiteName,
		Category:    req.Category,
		Description: req.Description,
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrSiteNotFound
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return utils.ErrSiteAlreadyExists
		}
		log.Printf("Error updating site %d: %v", id, err)
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *SiteService) DeleteSite(ctx context.Context, id uint) error {
	if err := s.sites.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrSiteNotFound
		}
		log.Printf("Error deleting site %d: %v", id, err)
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *SiteService) AddSensorReading(ctx context.Context, req request_models.SensorReadingRequest) error {
	count := 0
	if req.Count != nil {
		count = *req.Count
	}
	err := s.sensors.Append(ctx, &db_models.SensorReading{
		Date:     req.Date,
		Hour:     req.Hour,
		SiteName: req.SiteName,
		Count:    count,
	})
	if err != nil {
		log.Printf("Error recording sensor reading: %v", err)
		return utils.ErrDatabaseError
	}
	return nil
}
