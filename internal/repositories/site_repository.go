package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/NourAlnujoom/Asfar-tourism-assistant/internal/models/db_models"
)

type SiteRepository interface {
	ListAll(ctx context.Context) ([]db_models.Site, error)
	GetByName(ctx context.Context, name string) (*db_models.Site, error)
	Create(ctx context.Context, site *db_models.Site) (uint, error)
	Update(ctx context.Context, site *db_models.Site) error
	Delete(ctx context.Context, id uint) error
	ClearAll(ctx context.Context) error
}

type siteRepository struct {
	db *gorm.DB
}

func NewSiteRepository(db *gorm.DB) SiteRepository {
	return &siteRepository{db: db}
}

func (r *siteRepository) ListAll(ctx context.Context) ([]db_models.Site, error) {
	var sites []db_models.Site
	if err := r.db.WithContext(ctx).Order("id").Find(&sites).Error; err != nil {
		return nil, err
	}
	return sites, nil
}

// GetByName returns nil, nil when the site is unknown; callers substitute a
// default description in that case.
func (r *siteRepository) GetByName(ctx context.Context, name string) (*db_models.Site, error) {
	var site db_models.Site
	err := r.db.WithContext(ctx).First(&site, "site_name = ?", name).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &site, nil
}

// Create relies on the unique index over site_name for duplicate detection
// rather than a check-then-insert, so concurrent writers cannot race.
func (r *siteRepository) Create(ctx context.Context, site *db_models.Site) (uint, error) {
	if err := r.db.WithContext(ctx).Create(site).Error; err != nil {
		return 0, err
	}
	return site.ID, nil
}

func (r *siteRepository) Update(ctx context.Context, site *db_models.Site) error {
	result := r.db.WithContext(ctx).Model(&db_models.Site{}).
		Where("id = ?", site.ID).
		Updates(map[string]interface{}{
			"site_name":   site.SiteName,
			"category":    site.Category,
			"description": site.Description,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *siteRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&db_models.Site{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *siteRepository) ClearAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Where("1 = 1").Delete(&db_models.Site{}).Error
}
