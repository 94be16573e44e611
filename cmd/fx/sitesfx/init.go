package sitesfx

import (
	"go.uber.org/fx"

	"github.com/NourAlnujoom/Asfar-tourism-assistant/internal/api/controllers"
	"github.com/NourAlnujoom/Asfar-tourism-assistant/internal/repositories"
	"github.com/NourAlnujoom/Asfar-tourism-assistant/internal/services"
)

var Module = fx.Provide(
	ProvideSiteService,
	ProvideSitesController,
	ProvidePagesController)

func ProvideSiteService(
	sites repositories.SiteRepository,
	sensors repositories.SensorRepository,
) services.SiteServiceInterface {
	return services.NewSiteService(sites, sensors)
}

func ProvideSitesController(siteService services.SiteServiceInterface) *controllers.SitesController {
	return controllers.NewSitesController(siteService)
}

func ProvidePagesController() *controllers.PagesController {
	return controllers.NewPagesController()
}
