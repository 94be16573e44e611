package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/NourAlnujoom/Asfar-tourism-assistant/internal/models/request_models"
	"github.com/NourAlnujoom/Asfar-tourism-assistant/internal/services"
	"github.com/NourAlnujoom/Asfar-tourism-assistant/pkg/utils"
)

const missingSiteFields = "All fields (site_name, category, description) are required"

type SitesController struct {
	siteService services.SiteServiceInterface
}

func NewSitesController(siteService services.SiteServiceInterface) *SitesController {
	return &SitesController{siteService: siteService}
}

func (sc *SitesController) GetSites(c *gin.Context) {
	sites, err := sc.siteService.ListSites(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSites(c, sites)
}

func (sc *SitesController) AddSite(c *gin.Context) {
	var req request_models.SiteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.SiteName == "" || req.Category == "" || req.Description == "" {
		utils.RespondError(c, http.StatusBadRequest, missingSiteFields)
		return
	}

	if err := sc.siteService.CreateSite(c.Request.Context(), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondMessage(c, "Site added successfully!")
}

func (sc *SitesController) UpdateSite(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid site id")
		return
	}

	var req request_models.SiteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.SiteName == "" || req.Category == "" || req.Description == "" {
		utils.RespondError(c, http.StatusBadRequest, missingSiteFields)
		return
	}

	if err := sc.siteService.UpdateSite(c.Request.Context(), uint(id), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondMessage(c, "Site updated successfully")
}

func (sc *SitesController) DeleteSite(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid site id")
		return
	}

	if err := sc.siteService.DeleteSite(c.Request.Context(), uint(id)); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondMessage(c, "Site deleted successfully")
}

func (sc *SitesController) AddSensorReading(c *gin.Context) {
	var req request_models.SensorReadingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Date == "" || req.Hour == "" || req.SiteName == "" || req.Count == nil {
		utils.RespondError(c, http.StatusBadRequest, "All fields (date, hour, site_name, count) are required")
		return
	}

	if err := sc.siteService.AddSensorReading(c.Request.Context(), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondMessage(c, "Sensor reading recorded")
}
