package dbfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/NourAlnujoom/Asfar-tourism-assistant/internal/infra"
	"github.com/NourAlnujoom/Asfar-tourism-assistant/internal/repositories"
)

var Module = fx.Provide(
	provideDB,
	repositories.NewSiteRepository,
	repositories.NewSensorRepository)

func provideDB() *gorm.DB {
	return infra.InitDatabase()
}
