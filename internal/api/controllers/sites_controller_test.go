package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NourAlnujoom/Asfar-tourism-assistant/internal/models/request_models"
	"github.com/NourAlnujoom/Asfar-tourism-assistant/internal/models/response_models"
	"github.com/NourAlnujoom/Asfar-tourism-assistant/pkg/utils"
)

type stubSiteService struct {
	sites     []response_models.Site
	createErr error
	updateErr error
	deleteErr error
	sensorErr error
}

func (s *stubSiteService) ListSites(context.Context) ([]response_models.Site, error) {
	return s.sites, nil
}

func (s *stubSiteService) CreateSite(context.Context, request_models.SiteRequest) error {
	return s.createErr
}

func (s *stubSiteService) UpdateSite(context.Context, uint, request_models.SiteRequest) error {
	return s.updateErr
}

func (s *stubSiteService) DeleteSite(context.Context, uint) error {
	return s.deleteErr
}

func (s *stubSiteService) AddSensorReading(context.Context, request_models.SensorReadingRequest) error {
	return s.sensorErr
}

func newSitesRouter(svc *stubSiteService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	sc := NewSitesController(svc)

	r := gin.New()
	api := r.Group("/api")
	api.GET("/sites", sc.GetSites)
	api.POST("/sites", sc.AddSite)
	api.PUT("/sites/:id", sc.UpdateSite)
	api.DELETE("/sites/:id", sc.DeleteSite)
	api.POST("/sensor-readings", sc.AddSensorReading)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func doRaw(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestGetSites(t *testing.T) {
	r := newSitesRouter(&stubSiteService{sites: []response_models.Site{
		{ID: 1, SiteName: "Little Petra", Category: "Historical", Description: "quiet canyon"},
	}})

	w := doJSON(t, r, http.MethodGet, "/api/sites", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "success", body["status"])
	sites, ok := body["sites"].([]any)
	require.True(t, ok)
	require.Len(t, sites, 1)
	first := sites[0].(map[string]any)
	assert.Equal(t, "Little Petra", first["site_name"])
}

func TestAddSiteMissingFields(t *testing.T) {
	r := newSitesRouter(&stubSiteService{})

	w := doJSON(t, r, http.MethodPost, "/api/sites", gin.H{"site_name": "Little Petra"})
	require.Equal(t, http.StatusBadRequest, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "All fields (site_name, category, description) are required", body["message"])
}

func TestAddSiteDuplicate(t *testing.T) {
	r := newSitesRouter(&stubSiteService{createErr: utils.ErrSiteAlreadyExists})

	w := doJSON(t, r, http.MethodPost, "/api/sites", gin.H{
		"site_name":   "Little Petra",
		"category":    "Historical",
		"description": "quiet canyon",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "Site already exists!", body["message"])
}

func TestAddSiteSuccess(t *testing.T) {
	r := newSitesRouter(&stubSiteService{})

	w := doJSON(t, r, http.MethodPost, "/api/sites", gin.H{
		"site_name":   "Little Petra",
		"category":    "Historical",
		"description": "quiet canyon",
	})
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "Site added successfully!", body["message"])
}

func TestUpdateSiteInvalidID(t *testing.T) {
	r := newSitesRouter(&stubSiteService{})

	w := doJSON(t, r, http.MethodPut, "/api/sites/abc", gin.H{
		"site_name":   "Little Petra",
		"category":    "Historical",
		"description": "quiet canyon",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid site id", decodeBody(t, w)["message"])
}

func TestUpdateSiteNotFound(t *testing.T) {
	r := newSitesRouter(&stubSiteService{updateErr: utils.ErrSiteNotFound})

	w := doJSON(t, r, http.MethodPut, "/api/sites/404", gin.H{
		"site_name":   "Little Petra",
		"category":    "Historical",
		"description": "quiet canyon",
	})
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Site not found", decodeBody(t, w)["message"])
}

func TestDeleteSiteSuccess(t *testing.T) {
	r := newSitesRouter(&stubSiteService{})

	w := doJSON(t, r, http.MethodDelete, "/api/sites/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Site deleted successfully", decodeBody(t, w)["message"])
}

func TestDeleteSiteNotFound(t *testing.T) {
	r := newSitesRouter(&stubSiteService{deleteErr: utils.ErrSiteNotFound})

	w := doJSON(t, r, http.MethodDelete, "/api/sites/404", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestAddSensorReadingMissingFields(t *testing.T) {
	r := newSitesRouter(&stubSiteService{})

	w := doJSON(t, r, http.MethodPost, "/api/sensor-readings", gin.H{
		"date": "2026-08-27",
		"hour": "15:00",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "All fields (date, hour, site_name, count) are required", decodeBody(t, w)["message"])
}

func TestAddSensorReadingZeroCountIsValid(t *testing.T) {
	r := newSitesRouter(&stubSiteService{})

	w := doJSON(t, r, http.MethodPost, "/api/sensor-readings", gin.H{
		"date":      "2026-08-27",
		"hour":      "15:00",
		"site_name": "Little Petra",
		"count":     0,
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Sensor reading recorded", decodeBody(t, w)["message"])
}
