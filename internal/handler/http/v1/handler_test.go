package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/shenikar/disaster_dashboard/internal/config"
	"github.com/shenikar/disaster_dashboard/internal/mapview"
	"github.com/shenikar/disaster_dashboard/internal/modal"
	"github.com/shenikar/disaster_dashboard/internal/models"
	"github.com/shenikar/disaster_dashboard/internal/repository"
	"github.com/shenikar/disaster_dashboard/internal/seed"
	"github.com/shenikar/disaster_dashboard/internal/service"
	"github.com/shenikar/disaster_dashboard/internal/service/mocks"
	"github.com/shenikar/disaster_dashboard/internal/view"
	"github.com/shenikar/disaster_dashboard/internal/webhook"
)

const testAPIKey = "test-api-key"

var authHeader = map[string]string{"X-API-Key": testAPIKey}

// newTestServices сервисы поверх засеянных in-memory хранилищ
func newTestServices(t *testing.T, logger *logrus.Logger, tiles mapview.TileLayer) Services {
	incidents := repository.NewIncidentRepository(seed.Incidents())
	tasks := repository.NewTaskRepository(seed.Tasks())
	volunteers := repository.NewVolunteerRepository(seed.Volunteers())
	publisher := webhook.NopPublisher{}

	modals := service.NewModalService(modal.New(0), incidents, tasks, volunteers, logger)
	t.Cleanup(modals.Stop)

	return Services{
		Incidents:  service.NewIncidentService(incidents, logger, publisher, view.IncidentsPageSize),
		Tasks:      service.NewTaskService(tasks, incidents, logger, publisher),
		Volunteers: service.NewVolunteerService(volunteers, logger, publisher),
		Profile:    service.NewProfileService(repository.NewMemoryProfileRepository(), logger),
		Reports:    service.NewReportService(incidents, tasks, volunteers, logger),
		Map:        service.NewMapService(tiles, incidents, tasks, logger),
		Modals:     modals,
	}
}

func newRouter(handler *Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)
	return router
}

// newTestHandler создает Handler с мокированным сервисом инцидентов
func newTestHandler(t *testing.T) (*Handler, *mocks.MockIncidentService, *gin.Engine) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockIncidentService(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		APIKeys: []string{testAPIKey},
	}

	services := newTestServices(t, logger, mapview.TileLayer{URLTemplate: mapview.DefaultTileURL})
	services.Incidents = mockService

	handler := NewHandler(services, logger, cfg)
	return handler, mockService, newRouter(handler)
}

// newSeededRouter роутер поверх реальных сервисов; tiles пустой отключает карту
func newSeededRouter(t *testing.T, tiles mapview.TileLayer) *gin.Engine {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	handler := NewHandler(newTestServices(t, logger, tiles), logger, &config.Config{})
	return newRouter(handler)
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func ptr(f float64) *float64 { return &f }

func jsonBody(t *testing.T, v any) io.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func TestCreateIncident_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	incidentID := uuid.NewString()
	reqBody := CreateIncidentRequest{
		Name:      "Banjir Rob Jakarta Utara",
		Location:  "Jakarta Utara",
		Severity:  "High",
		Latitude:  ptr(-6.12),
		Longitude: ptr(106.88),
	}

	mockService.EXPECT().
		CreateIncident(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, inc *models.Incident) error {
			assert.Equal(t, models.SeverityHigh, inc.Severity)
			assert.True(t, inc.DateReported.IsZero())
			inc.ID = incidentID
			inc.Status = models.IncidentActive
			inc.DateReported = time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
			return nil
		}).Times(1)

	w := makeRequest(router, "POST", "/api/v1/incidents", jsonBody(t, reqBody), authHeader)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp IncidentResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, incidentID, resp.ID)
	assert.Equal(t, "Active", resp.Status)
	assert.Equal(t, "2025-04-01", resp.DateReported)
	assert.Equal(t, "#f97316", resp.SeverityColor)
}

func TestCreateIncident_OnEquatorAndPrimeMeridian(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reqBody := CreateIncidentRequest{
		Name:      "Gempa Pulau Lingga",
		Location:  "Kepulauan Riau",
		Severity:  "Medium",
		Latitude:  ptr(0),
		Longitude: ptr(0),
	}

	mockService.EXPECT().
		CreateIncident(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, inc *models.Incident) error {
			assert.Equal(t, models.Coordinates{}, inc.Coordinates)
			inc.ID = "7"
			return nil
		}).Times(1)

	w := makeRequest(router, "POST", "/api/v1/incidents", jsonBody(t, reqBody), authHeader)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp IncidentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Zero(t, resp.Latitude)
	assert.Zero(t, resp.Longitude)
}

func TestCreateIncident_MissingCoordinates(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().CreateIncident(gomock.Any(), gomock.Any()).Times(0)

	body := bytes.NewBufferString(`{"name":"Banjir","location":"Garut","severity":"Low"}`)
	w := makeRequest(router, "POST", "/api/v1/incidents", body, authHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Latitude")
}

func TestCreateIncident_InvalidJSON(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().CreateIncident(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	w := makeRequest(router, "POST", "/api/v1/incidents", bytes.NewBufferString(`{"name": "test"`), authHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}

func TestCreateIncident_ValidationError(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reqBody := CreateIncidentRequest{ // Неизвестная важность и некорректная дата
		Name:         "Gempa",
		Location:     "Cianjur",
		Severity:     "Extreme",
		DateReported: "21/11/2024",
		Latitude:     ptr(-6.8),
		Longitude:    ptr(107.1),
	}

	mockService.EXPECT().CreateIncident(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "POST", "/api/v1/incidents", jsonBody(t, reqBody), authHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Severity")
	assert.Contains(t, w.Body.String(), "DateReported")
}

func TestCreateIncident_Unauthorized(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().CreateIncident(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "POST", "/api/v1/incidents", jsonBody(t, CreateIncidentRequest{}))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = makeRequest(router, "POST", "/api/v1/incidents", jsonBody(t, CreateIncidentRequest{}), map[string]string{"Authorization": "Bearer wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid API key")
}

func TestGetIncident_NotFound(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().
		GetIncident(gomock.Any(), "missing").
		Return(nil, fmt.Errorf("service: could not get incident missing: %w", models.ErrNotFound)).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/incidents/missing", nil, authHeader)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "incident not found")
}

func TestUpdateIncident_NotFound(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reqBody := UpdateIncidentRequest{
		Name:         "Banjir",
		Location:     "Garut",
		DateReported: "2025-03-15",
		Status:       "Resolved",
		Severity:     "Low",
		Latitude:     ptr(-7.2),
		Longitude:    ptr(107.9),
	}

	mockService.EXPECT().
		UpdateIncident(gomock.Any(), gomock.Any()).
		Return(fmt.Errorf("service: %w", models.ErrNotFound)).
		Times(1)

	w := makeRequest(router, "PUT", "/api/v1/incidents/42", jsonBody(t, reqBody), authHeader)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateIncident_ServiceError(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reqBody := UpdateIncidentRequest{
		Name:         "Banjir",
		Location:     "Garut",
		DateReported: "2025-03-15",
		Status:       "Archived",
		Severity:     "Low",
		Latitude:     ptr(-7.2),
		Longitude:    ptr(107.9),
	}

	mockService.EXPECT().
		UpdateIncident(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, inc *models.Incident) error {
			assert.Equal(t, "1", inc.ID)
			return fmt.Errorf("boom")
		}).
		Times(1)

	w := makeRequest(router, "PUT", "/api/v1/incidents/1", jsonBody(t, reqBody), authHeader)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestDeleteIncident_NoContent(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().DeleteIncident(gomock.Any(), "1").Return(nil).Times(1)

	w := makeRequest(router, "DELETE", "/api/v1/incidents/1", nil, authHeader)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestListIncidents_QueryMapping(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().
		ListIncidents(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, q service.IncidentQuery) (view.Page[models.Incident], error) {
			assert.Equal(t, "garut", q.Filter.Query)
			assert.Equal(t, models.SeverityCritical, q.Filter.Severity)
			assert.Equal(t, view.SortNameAsc, q.Sort)
			assert.Equal(t, 2, q.Page)
			return view.Paginate(seed.Incidents()[:1], 1, 5), nil
		}).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/incidents?q=garut&severity=Critical&sort=NameAsc&page=2", nil, authHeader)
	require.Equal(t, http.StatusOK, w.Code)

	var resp IncidentPageResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "1", resp.Items[0].ID)
	assert.Equal(t, 1, resp.TotalPages)
}

func TestListIncidents_InvalidSort(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().ListIncidents(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/incidents?sort=Random", nil, authHeader)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHealthCheck_NoKeyRequired(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/system/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestNavigation(t *testing.T) {
	router := newSeededRouter(t, mapview.TileLayer{})

	w := makeRequest(router, "GET", "/api/v1/navigation?q=banjir", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var links []view.Link
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &links))
	require.Len(t, links, 6)
	assert.Equal(t, "/tasks?q=banjir", links[2].URL)
}
