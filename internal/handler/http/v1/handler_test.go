package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/wildfire_sync_engine/internal/apperrors"
	"github.com/shenikar/wildfire_sync_engine/internal/config"
	handler_mocks "github.com/shenikar/wildfire_sync_engine/internal/handler/http/v1/mocks"
	"github.com/shenikar/wildfire_sync_engine/internal/lifecycle"
	lifecycle_mocks "github.com/shenikar/wildfire_sync_engine/internal/lifecycle/mocks"
	"github.com/shenikar/wildfire_sync_engine/internal/location"
	location_mocks "github.com/shenikar/wildfire_sync_engine/internal/location/mocks"
	"github.com/shenikar/wildfire_sync_engine/internal/models"
	notification_mocks "github.com/shenikar/wildfire_sync_engine/internal/notification/mocks"
	"github.com/shenikar/wildfire_sync_engine/internal/session"
	session_mocks "github.com/shenikar/wildfire_sync_engine/internal/session/mocks"
	"github.com/shenikar/wildfire_sync_engine/internal/stats"
	stats_mocks "github.com/shenikar/wildfire_sync_engine/internal/stats/mocks"
	"github.com/shenikar/wildfire_sync_engine/internal/store"
	store_mocks "github.com/shenikar/wildfire_sync_engine/internal/store/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// testMocks собирает моки всех внешних контрактов хэндлера
type testMocks struct {
	storeGW    *store_mocks.MockIncidentGateway
	statusGW   *lifecycle_mocks.MockStatusGateway
	listerGW   *stats_mocks.MockIncidentLister
	profilesGW *session_mocks.MockProfileGateway
	notifGW    *notification_mocks.MockNotificationGateway
	backend    *handler_mocks.MockIncidentDashboard
}

// newTestHandler создает Handler с реальными компонентами поверх мокированных gateway
func newTestHandler(t *testing.T) (*Handler, *testMocks, *gin.Engine) {
	ctrl := gomock.NewController(t)
	m := &testMocks{
		storeGW:    store_mocks.NewMockIncidentGateway(ctrl),
		statusGW:   lifecycle_mocks.NewMockStatusGateway(ctrl),
		listerGW:   stats_mocks.NewMockIncidentLister(ctrl),
		profilesGW: session_mocks.NewMockProfileGateway(ctrl),
		notifGW:    notification_mocks.NewMockNotificationGateway(ctrl),
		backend:    handler_mocks.NewMockIncidentDashboard(ctrl),
	}

	// Движок уведомлений активированной сессии сразу обновляет счётчик в фоне
	m.notifGW.EXPECT().CountUnreadNotifications(gomock.Any(), gomock.Any()).Return(0, nil).AnyTimes()

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		DefaultPageSize:          12,
		StatsPageSize:            10000,
		NotificationPollInterval: time.Hour, // тики в тестах не срабатывают
		SearchDebounce:           10 * time.Millisecond,
		GeolocationTimeout:       10 * time.Second,
		GeolocationMaxAge:        5 * time.Minute,
	}

	incidentStore := store.NewIncidentStore(m.storeGW, logger, cfg)
	lifecycleCtrl := lifecycle.NewController(m.statusGW, incidentStore, logger)
	statsService := stats.NewService(m.listerGW, logger, cfg)
	searcherMock := location_mocks.NewMockCitySearcher(gomock.NewController(t))
	sessions := session.NewManager(context.Background(), m.profilesGW, m.notifGW, location.UnavailableLocator{}, searcherMock, logger, cfg)
	t.Cleanup(sessions.Shutdown)

	handler := NewHandler(incidentStore, lifecycleCtrl, statsService, sessions, m.backend, logger, cfg)

	// Настройка Gin роутера для тестов
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return handler, m, router
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

// activateTestSession поднимает сессию пользователя с заданной ролью
func activateTestSession(t *testing.T, router *gin.Engine, m *testMocks, userID, role string) {
	m.profilesGW.EXPECT().
		GetUserProfile(gomock.Any(), userID).
		Return(&models.UserProfile{ID: userID, RoleName: role}, nil).
		Times(1)

	body, _ := json.Marshal(SessionRequest{UserID: userID})
	w := makeRequest(router, "POST", "/api/v1/sessions", bytes.NewBuffer(body))
	require.Equal(t, http.StatusCreated, w.Code)
}

func TestListIncidents_Success(t *testing.T) {
	// Подготовка
	_, m, router := newTestHandler(t)
	page := &models.Page{
		Content:       []*models.Incident{{ID: "inc-1", Status: models.StatusReported}},
		TotalElements: 26,
		TotalPages:    3,
	}

	// Ожидания: параметры запроса превращаются в фильтры и курсор
	m.storeGW.EXPECT().
		ListIncidents(gomock.Any(), models.FilterCriteria{Status: models.StatusReported, Country: "Greece"}, 1, 12, models.DefaultSortBy, models.SortDesc).
		Return(page, nil).
		Times(1)

	// Действие
	w := makeRequest(router, "GET", "/api/v1/incidents?status=REPORTED&country=Greece&page=1", nil)

	// Проверки
	assert.Equal(t, http.StatusOK, w.Code)
	var resp PageResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "inc-1", resp.Items[0].ID)
	assert.Equal(t, 3, resp.Cursor.TotalPages)
	assert.Equal(t, 1, resp.Cursor.PageIndex)
}

func TestListIncidents_InvalidStatus(t *testing.T) {
	// Подготовка
	_, m, router := newTestHandler(t)

	// Ожидания: невалидный статус отсеивается до backend
	m.storeGW.EXPECT().ListIncidents(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	// Действие
	w := makeRequest(router, "GET", "/api/v1/incidents?status=BURNING", nil)

	// Проверки
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListIncidents_GatewayError_BadGateway(t *testing.T) {
	// Подготовка
	_, m, router := newTestHandler(t)

	// Ожидания: сообщения backend доходят до ответа как есть
	m.storeGW.EXPECT().
		ListIncidents(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, &apperrors.GatewayError{Messages: []string{"Service temporarily unavailable"}}).
		Times(1)

	// Действие
	w := makeRequest(router, "GET", "/api/v1/incidents", nil)

	// Проверки
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "Service temporarily unavailable")
}

func TestListHistory_InvalidQuery_BadRequest(t *testing.T) {
	// Подготовка
	_, m, router := newTestHandler(t)

	// Ожидания: невалидные параметры отсеиваются до backend, как и в остальных списках
	m.storeGW.EXPECT().ListIncidents(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	// Действие
	w := makeRequest(router, "GET", "/api/v1/incidents/history?sortDirection=SIDEWAYS", nil)

	// Проверки
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestNavigate_Goto_OutOfRange_NoOp(t *testing.T) {
	// Подготовка
	_, m, router := newTestHandler(t)

	// Ожидания: переход за границы выборки не порождает запросов
	m.storeGW.EXPECT().ListIncidents(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	body, _ := json.Marshal(NavigateRequest{Action: "goto", Page: 5})

	// Действие
	w := makeRequest(router, "POST", "/api/v1/incidents/navigate", bytes.NewBuffer(body))

	// Проверки
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestNavigate_UnknownAction(t *testing.T) {
	// Подготовка
	_, _, router := newTestHandler(t)
	body, _ := json.Marshal(NavigateRequest{Action: "sideways"})

	// Действие
	w := makeRequest(router, "POST", "/api/v1/incidents/navigate", bytes.NewBuffer(body))

	// Проверки
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetIncident_Success(t *testing.T) {
	// Подготовка
	_, m, router := newTestHandler(t)

	// Ожидания
	m.storeGW.EXPECT().
		GetIncident(gomock.Any(), "inc-1").
		Return(&models.Incident{ID: "inc-1", Status: models.StatusInProgress}, nil).
		Times(1)

	// Действие
	w := makeRequest(router, "GET", "/api/v1/incidents/inc-1", nil)

	// Проверки
	assert.Equal(t, http.StatusOK, w.Code)
	var incident models.Incident
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &incident))
	assert.Equal(t, models.StatusInProgress, incident.Status)
}

func TestTransition_Success_AdminSession(t *testing.T) {
	// Подготовка
	_, m, router := newTestHandler(t)
	activateTestSession(t, router, m, "admin-1", "ADMIN")
	confirmed := &models.Incident{ID: "inc-1", Status: models.StatusControlled}

	// Ожидания: идентификатор администратора берётся из сессии
	m.statusGW.EXPECT().
		UpdateIncidentStatus(gomock.Any(), models.StatusUpdate{
			IncidentID:  "inc-1",
			AdminUserID: "admin-1",
			NewStatus:   "CONTROLLED",
			Comment:     "Локализован",
		}).
		Return(confirmed, nil).
		Times(1)

	body, _ := json.Marshal(TransitionRequest{IncidentID: "inc-1", NewStatus: "CONTROLLED", Comment: "Локализован"})

	// Действие
	w := makeRequest(router, "PUT", "/api/v1/incidents/status", bytes.NewBuffer(body), map[string]string{"X-User-ID": "admin-1"})

	// Проверки
	assert.Equal(t, http.StatusOK, w.Code)
	var incident models.Incident
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &incident))
	assert.Equal(t, models.StatusControlled, incident.Status)
}

func TestTransition_NonAdmin_Forbidden(t *testing.T) {
	// Подготовка
	_, m, router := newTestHandler(t)
	activateTestSession(t, router, m, "user-1", "USER")

	// Ожидания
	m.statusGW.EXPECT().UpdateIncidentStatus(gomock.Any(), gomock.Any()).Times(0)

	body, _ := json.Marshal(TransitionRequest{IncidentID: "inc-1", NewStatus: "CONTROLLED"})

	// Действие
	w := makeRequest(router, "PUT", "/api/v1/incidents/status", bytes.NewBuffer(body), map[string]string{"X-User-ID": "user-1"})

	// Проверки
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestTransition_NoSession_Unauthorized(t *testing.T) {
	// Подготовка
	_, _, router := newTestHandler(t)
	body, _ := json.Marshal(TransitionRequest{IncidentID: "inc-1", NewStatus: "CONTROLLED"})

	// Действие
	w := makeRequest(router, "PUT", "/api/v1/incidents/status", bytes.NewBuffer(body), map[string]string{"X-User-ID": "ghost"})

	// Проверки
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetStats_Success(t *testing.T) {
	// Подготовка
	_, m, router := newTestHandler(t)
	page := &models.Page{
		Content: []*models.Incident{
			{Status: models.StatusReported, ReportedAt: time.Now(), AffectedArea: 5},
			{Status: models.StatusExtinguished, ReportedAt: time.Now().Add(-72 * time.Hour)},
		},
	}

	// Ожидания
	m.listerGW.EXPECT().
		ListIncidents(gomock.Any(), models.FilterCriteria{}, 0, 10000, models.DefaultSortBy, models.SortDesc).
		Return(page, nil).
		Times(1)

	// Действие
	w := makeRequest(router, "GET", "/api/v1/incidents/stats", nil)

	// Проверки
	assert.Equal(t, http.StatusOK, w.Code)
	var result models.Statistics
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, 2, result.Total)
	assert.Equal(t, 1, result.Active)
	assert.Equal(t, 1, result.Extinguished)
}

func TestDashboard_Success(t *testing.T) {
	// Подготовка
	_, m, router := newTestHandler(t)

	// Ожидания
	m.backend.EXPECT().
		ListRecentIncidents(gomock.Any()).
		Return([]*models.Incident{{ID: "r1"}, {ID: "r2"}}, nil).
		Times(1)
	m.backend.EXPECT().
		ListActiveIncidents(gomock.Any()).
		Return([]*models.Incident{{ID: "a1"}}, nil).
		Times(1)
	m.backend.EXPECT().
		ListIncidents(gomock.Any(), models.FilterCriteria{}, 0, 5, models.DefaultSortBy, models.SortDesc).
		Return(&models.Page{Content: []*models.Incident{{ID: "l1"}}, TotalElements: 40, TotalPages: 8}, nil).
		Times(1)

	// Действие
	w := makeRequest(router, "GET", "/api/v1/dashboard", nil)

	// Проверки
	assert.Equal(t, http.StatusOK, w.Code)
	var resp DashboardResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.RecentCount)
	assert.Equal(t, 1, resp.ActiveCount)
	assert.Equal(t, 40, resp.TotalElements)
	require.Len(t, resp.Latest, 1)
}

func TestExportIncidents_SetsDisposition(t *testing.T) {
	// Подготовка
	_, m, router := newTestHandler(t)
	raw := []byte("id,status\ninc-1,REPORTED\n")

	// Ожидания
	m.backend.EXPECT().
		ExportIncidents(gomock.Any(), "csv", models.FilterCriteria{Country: "Greece"}).
		Return(raw, "text/csv", nil).
		Times(1)

	// Действие
	w := makeRequest(router, "GET", "/api/v1/incidents/export/csv?country=Greece", nil)

	// Проверки: байты передаются дальше без интерпретации
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, raw, w.Body.Bytes())
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="incidents.csv"`, w.Header().Get("Content-Disposition"))
}

func TestNotificationPanel_OpenLoadsFeedOnce(t *testing.T) {
	// Подготовка
	_, m, router := newTestHandler(t)
	activateTestSession(t, router, m, "user-1", "USER")
	feed := []*models.Notification{
		{ID: "n1", UserID: "user-1"},
		{ID: "n2", UserID: "user-1", Read: true},
	}

	// Ожидания: первая загрузка ленты при открытии панели
	m.notifGW.EXPECT().
		ListUserNotifications(gomock.Any(), "user-1").
		Return(feed, nil).
		Times(1)

	// Действие
	w := makeRequest(router, "POST", "/api/v1/notifications/panel/open", nil, map[string]string{"X-User-ID": "user-1"})

	// Проверки
	assert.Equal(t, http.StatusOK, w.Code)
	var resp NotificationFeedResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.PanelOpen)
	require.Len(t, resp.Notifications, 2)

	// Повторное открытие не перезагружает ленту
	w = makeRequest(router, "POST", "/api/v1/notifications/panel/open", nil, map[string]string{"X-User-ID": "user-1"})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMarkAllNotificationsRead_Success(t *testing.T) {
	// Подготовка
	_, m, router := newTestHandler(t)
	activateTestSession(t, router, m, "user-1", "USER")

	m.notifGW.EXPECT().
		ListUserNotifications(gomock.Any(), "user-1").
		Return([]*models.Notification{{ID: "n1", UserID: "user-1"}}, nil).
		Times(1)
	makeRequest(router, "POST", "/api/v1/notifications/panel/open", nil, map[string]string{"X-User-ID": "user-1"})

	// Ожидания
	m.notifGW.EXPECT().
		MarkAllNotificationsRead(gomock.Any(), "user-1").
		Return(nil).
		Times(1)

	// Действие
	w := makeRequest(router, "PUT", "/api/v1/notifications/read-all", nil, map[string]string{"X-User-ID": "user-1"})

	// Проверки
	assert.Equal(t, http.StatusOK, w.Code)
	var resp NotificationFeedResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 0, resp.UnreadCount)
	assert.True(t, resp.Notifications[0].Read)
}

func TestNotificationFeed_NoSession_Unauthorized(t *testing.T) {
	// Подготовка
	_, _, router := newTestHandler(t)

	// Действие
	w := makeRequest(router, "GET", "/api/v1/notifications", nil)

	// Проверки
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestReportLocation_DefaultState(t *testing.T) {
	// Подготовка
	_, m, router := newTestHandler(t)
	activateTestSession(t, router, m, "user-1", "USER")

	// Действие
	w := makeRequest(router, "GET", "/api/v1/report/location", nil, map[string]string{"X-User-ID": "user-1"})

	// Проверки: детерминированный fallback до ответа устройства
	assert.Equal(t, http.StatusOK, w.Code)
	var resp ReportLocationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Selected.IsAutomatic)
	assert.Equal(t, 34.1000, resp.Selected.Latitude)
	assert.Equal(t, 14.005, resp.Selected.Longitude)
}

func TestResolveDeviceLocation_UnavailableDevice(t *testing.T) {
	// Подготовка
	_, m, router := newTestHandler(t)
	activateTestSession(t, router, m, "user-1", "USER")

	// Действие
	w := makeRequest(router, "POST", "/api/v1/report/location/device", nil, map[string]string{"X-User-ID": "user-1"})

	// Проверки: ошибка категоризирована, координаты не тронуты
	assert.Equal(t, http.StatusOK, w.Code)
	var resp ReportLocationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, string(apperrors.DevicePositionUnavailable), resp.LocationError)
	assert.Equal(t, 34.1000, resp.Selected.Latitude)
	assert.False(t, resp.IsGettingLocation)
}

func TestSelectCity_OverridesLocation(t *testing.T) {
	// Подготовка
	_, m, router := newTestHandler(t)
	activateTestSession(t, router, m, "user-1", "USER")

	makeRequest(router, "POST", "/api/v1/report/location/search/open", nil, map[string]string{"X-User-ID": "user-1"})

	body, _ := json.Marshal(SelectCityRequest{Name: "Athens", Country: "Greece", Latitude: 37.98, Longitude: 23.72})

	// Действие
	w := makeRequest(router, "POST", "/api/v1/report/location/select", bytes.NewBuffer(body), map[string]string{"X-User-ID": "user-1"})

	// Проверки
	assert.Equal(t, http.StatusOK, w.Code)
	var resp ReportLocationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Selected.IsAutomatic)
	assert.Equal(t, "Athens", resp.Selected.CityName)
	assert.Equal(t, 37.98, resp.Selected.Latitude)
}

func TestDeactivateSession_NoContent(t *testing.T) {
	// Подготовка
	_, m, router := newTestHandler(t)
	activateTestSession(t, router, m, "user-1", "USER")

	// Действие
	w := makeRequest(router, "DELETE", "/api/v1/sessions/user-1", nil)

	// Проверки
	assert.Equal(t, http.StatusNoContent, w.Code)
	w = makeRequest(router, "GET", "/api/v1/notifications", nil, map[string]string{"X-User-ID": "user-1"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHealthCheck(t *testing.T) {
	// Подготовка
	_, _, router := newTestHandler(t)

	// Действие
	w := makeRequest(router, "GET", "/api/v1/system/health", nil)

	// Проверки
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ok")
}

func TestAPIKeyAuthMiddleware(t *testing.T) {
	// Подготовка: отдельный роутер с включённой аутентификацией
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	cfg := &config.Config{APIKeys: []string{"valid-key"}}

	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	api.Use(APIKeyAuthMiddleware(cfg, logger))
	api.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	// Действие / Проверки
	w := makeRequest(router, "GET", "/api/v1/ping", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = makeRequest(router, "GET", "/api/v1/ping", nil, map[string]string{"X-API-Key": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = makeRequest(router, "GET", "/api/v1/ping", nil, map[string]string{"X-API-Key": "valid-key"})
	assert.Equal(t, http.StatusOK, w.Code)

	// Ключ принимается и через Authorization: Bearer
	w = makeRequest(router, "GET", "/api/v1/ping", nil, map[string]string{"Authorization": "Bearer valid-key"})
	assert.Equal(t, http.StatusOK, w.Code)
}
