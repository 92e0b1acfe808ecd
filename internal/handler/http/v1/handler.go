package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/wildfire_sync_engine/internal/apperrors"
	"github.com/shenikar/wildfire_sync_engine/internal/config"
	"github.com/shenikar/wildfire_sync_engine/internal/lifecycle"
	"github.com/shenikar/wildfire_sync_engine/internal/models"
	"github.com/shenikar/wildfire_sync_engine/internal/session"
	"github.com/shenikar/wildfire_sync_engine/internal/stats"
	"github.com/shenikar/wildfire_sync_engine/internal/store"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=handler.go -destination=mocks/mock_handler.go -package=mocks

// IncidentDashboard определяет прямые операции backend, нужные дашборду и экспорту
type IncidentDashboard interface {
	ListIncidents(ctx context.Context, filters models.FilterCriteria, page, size int, sortBy string, sortDir models.SortDirection) (*models.Page, error)
	ListRecentIncidents(ctx context.Context) ([]*models.Incident, error)
	ListActiveIncidents(ctx context.Context) ([]*models.Incident, error)
	ExportIncidents(ctx context.Context, format string, filters models.FilterCriteria) ([]byte, string, error)
}

type Handler struct {
	store     *store.IncidentStore
	lifecycle *lifecycle.Controller
	stats     *stats.Service
	sessions  *session.Manager
	backend   IncidentDashboard
	logger    *logrus.Logger
	validate  *validator.Validate
	cfg       *config.Config
}

func NewHandler(incidentStore *store.IncidentStore, lifecycleCtrl *lifecycle.Controller, statsService *stats.Service, sessions *session.Manager, backend IncidentDashboard, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		store:     incidentStore,
		lifecycle: lifecycleCtrl,
		stats:     statsService,
		sessions:  sessions,
		backend:   backend,
		logger:    logger,
		validate:  validator.New(),
		cfg:       cfg,
	}
}

// respondError преобразует ошибку таксономии в одно сообщение для текущего
// представления (ошибки не накапливаются - каждая заменяет предыдущую)
func (h *Handler) respondError(c *gin.Context, err error) {
	var validationErr *apperrors.ValidationError
	var gatewayErr *apperrors.GatewayError
	var transportErr *apperrors.TransportError
	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Message})
	case errors.As(err, &gatewayErr):
		c.JSON(http.StatusBadGateway, gin.H{"error": gatewayErr.UserMessage()})
	case errors.As(err, &transportErr):
		c.JSON(http.StatusBadGateway, gin.H{"error": "connection error"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// sessionFromRequest находит активную сессию по заголовку X-User-ID
func (h *Handler) sessionFromRequest(c *gin.Context) (*session.Session, bool) {
	userID := c.GetHeader("X-User-ID")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "X-User-ID header required"})
		return nil, false
	}
	sess, ok := h.sessions.Get(userID)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "no active session"})
		return nil, false
	}
	return sess, true
}

// ========== ИНЦИДЕНТЫ ==========

// @Summary List incidents
// @Description Get a filtered, sorted and paginated page of incidents. Requires API key.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param status query string false "Incident status"
// @Param page query int false "Page index" default(0)
// @Param size query int false "Page size" default(12)
// @Success 200 {object} PageResponse
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 502 {object} map[string]string "Backend error"
// @Router /incidents [get]
func (h *Handler) listIncidents(c *gin.Context) {
	log := h.logger.WithField("method", "listIncidents")

	var query ListIncidentsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		log.WithError(err).Warn("Failed to bind query")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters"})
		return
	}
	if err := h.validate.Struct(query); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	filters, err := QueryToFilterCriteria(query)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.store.Query(c.Request.Context(), filters, query.Page, query.Size, query.SortBy, models.SortDirection(query.SortDirection)); err != nil {
		log.WithError(err).Error("Failed to query incidents")
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, PageResponse{Items: h.store.Items(), Cursor: h.store.Cursor()})
}

// @Summary Extinguished incidents history
// @Description Get the paginated history of extinguished incidents, newest updates first. Requires API key.
// @Tags Incidents
// @Produce json
// @Security ApiKeyAuth
// @Param page query int false "Page index" default(0)
// @Param size query int false "Page size" default(12)
// @Success 200 {object} PageResponse
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 502 {object} map[string]string "Backend error"
// @Router /incidents/history [get]
func (h *Handler) listHistory(c *gin.Context) {
	log := h.logger.WithField("method", "listHistory")

	var query ListIncidentsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters"})
		return
	}
	if err := h.validate.Struct(query); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	filters := models.FilterCriteria{Status: models.StatusExtinguished}
	if err := h.store.Query(c.Request.Context(), filters, query.Page, query.Size, "updatedAt", models.SortDesc); err != nil {
		log.WithError(err).Error("Failed to query extinguished history")
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, PageResponse{Items: h.store.Items(), Cursor: h.store.Cursor()})
}

// @Summary Navigate pages
// @Description Navigate the current incident selection: next, previous or goto. Out-of-range navigation is a no-op. Requires API key.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param navigation body NavigateRequest true "Navigation request"
// @Success 200 {object} PageResponse
// @Failure 400 {object} map[string]string "Validation error"
// @Router /incidents/navigate [post]
func (h *Handler) navigate(c *gin.Context) {
	log := h.logger.WithField("method", "navigate")

	var input NavigateRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var err error
	switch input.Action {
	case "next":
		err = h.store.NextPage(c.Request.Context())
	case "previous":
		err = h.store.PreviousPage(c.Request.Context())
	case "goto":
		err = h.store.GoToPage(c.Request.Context(), input.Page)
	}
	if err != nil {
		log.WithError(err).Error("Failed to navigate incident pages")
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, PageResponse{Items: h.store.Items(), Cursor: h.store.Cursor()})
}

// @Summary Get incident detail
// @Description Fetch the full incident record and select it as the current detail. Requires API key.
// @Tags Incidents
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Success 200 {object} models.Incident
// @Failure 502 {object} map[string]string "Backend error"
// @Router /incidents/{id} [get]
func (h *Handler) getIncident(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "getIncident").WithField("id", id)

	incident, err := h.store.SelectDetail(c.Request.Context(), id)
	if err != nil {
		log.WithError(err).Warn("Failed to get incident detail")
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, incident)
}

// @Summary Close incident detail
// @Description Clear the currently selected incident detail. Requires API key.
// @Tags Incidents
// @Security ApiKeyAuth
// @Success 204 "No Content"
// @Router /incidents/detail [delete]
func (h *Handler) closeDetail(c *gin.Context) {
	h.store.ClearSelected()
	c.Status(http.StatusNoContent)
}

// @Summary Recent incident reports
// @Description Load reports from the last 24 hours into the current selection. Requires API key.
// @Tags Incidents
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} PageResponse
// @Failure 502 {object} map[string]string "Backend error"
// @Router /incidents/recent [get]
func (h *Handler) listRecent(c *gin.Context) {
	log := h.logger.WithField("method", "listRecent")
	if err := h.store.LoadRecent(c.Request.Context()); err != nil {
		log.WithError(err).Error("Failed to load recent incidents")
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, PageResponse{Items: h.store.Items(), Cursor: h.store.Cursor()})
}

// @Summary Active incidents
// @Description Load incidents in REPORTED or IN_PROGRESS status into the current selection. Requires API key.
// @Tags Incidents
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} PageResponse
// @Failure 502 {object} map[string]string "Backend error"
// @Router /incidents/active [get]
func (h *Handler) listActive(c *gin.Context) {
	log := h.logger.WithField("method", "listActive")
	if err := h.store.LoadActive(c.Request.Context()); err != nil {
		log.WithError(err).Error("Failed to load active incidents")
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, PageResponse{Items: h.store.Items(), Cursor: h.store.Cursor()})
}

// @Summary Dashboard summary
// @Description Get recent/active counts and the latest incidents for the dashboard view. Requires API key.
// @Tags Dashboard
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} DashboardResponse
// @Failure 502 {object} map[string]string "Backend error"
// @Router /dashboard [get]
func (h *Handler) dashboard(c *gin.Context) {
	log := h.logger.WithField("method", "dashboard")
	ctx := c.Request.Context()

	recent, err := h.backend.ListRecentIncidents(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to load recent incidents for dashboard")
		h.respondError(c, err)
		return
	}
	active, err := h.backend.ListActiveIncidents(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to load active incidents for dashboard")
		h.respondError(c, err)
		return
	}
	latest, err := h.backend.ListIncidents(ctx, models.FilterCriteria{}, 0, 5, models.DefaultSortBy, models.SortDesc)
	if err != nil {
		log.WithError(err).Error("Failed to load latest incidents for dashboard")
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, DashboardResponse{
		RecentCount:   len(recent),
		ActiveCount:   len(active),
		TotalElements: latest.TotalElements,
		Latest:        latest.Content,
	})
}

// @Summary Incident statistics
// @Description Aggregate summary counts over the full incident set. Requires API key.
// @Tags Dashboard
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} models.Statistics
// @Failure 502 {object} map[string]string "Backend error"
// @Router /incidents/stats [get]
func (h *Handler) getStats(c *gin.Context) {
	log := h.logger.WithField("method", "getStats")

	result, err := h.stats.Collect(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to collect statistics")
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// @Summary Transition incident status
// @Description Carry a status transition to the backend and apply the confirmed incident locally. Requires API key and an active admin session.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param transition body TransitionRequest true "Transition request"
// @Success 200 {object} models.Incident
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 401 {object} map[string]string "No active session"
// @Failure 403 {object} map[string]string "Not an administrator"
// @Failure 502 {object} map[string]string "Backend error"
// @Router /incidents/status [put]
func (h *Handler) transition(c *gin.Context) {
	log := h.logger.WithField("method", "transition")

	sess, ok := h.sessionFromRequest(c)
	if !ok {
		return
	}
	if !sess.Profile.IsAdmin() {
		c.JSON(http.StatusForbidden, gin.H{"error": "administrator role required"})
		return
	}

	var input TransitionRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	update := TransitionToStatusUpdate(input, sess.Profile.ID)
	incident, err := h.lifecycle.Transition(c.Request.Context(), update)
	if err != nil {
		log.WithError(err).Error("Failed to transition incident status")
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, incident)
}

// @Summary Export incidents
// @Description Download the filtered incident set in json, csv or xlsx format. Encoding is done by the backend. Requires API key.
// @Tags Incidents
// @Produce octet-stream
// @Security ApiKeyAuth
// @Param format path string true "Export format" Enums(json, csv, xlsx)
// @Success 200 {file} byte
// @Failure 400 {object} map[string]string "Unsupported format"
// @Failure 502 {object} map[string]string "Backend error"
// @Router /incidents/export/{format} [get]
func (h *Handler) exportIncidents(c *gin.Context) {
	format := c.Param("format")
	log := h.logger.WithField("method", "exportIncidents").WithField("format", format)

	var query ListIncidentsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters"})
		return
	}
	filters, err := QueryToFilterCriteria(query)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	data, contentType, err := h.backend.ExportIncidents(c.Request.Context(), format, filters)
	if err != nil {
		log.WithError(err).Error("Failed to export incidents")
		h.respondError(c, err)
		return
	}
	if contentType == "" {
		contentType = exportContentType(format)
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="incidents.%s"`, format))
	c.Data(http.StatusOK, contentType, data)
}

func exportContentType(format string) string {
	switch format {
	case "json":
		return "application/json"
	case "csv":
		return "text/csv"
	case "xlsx":
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		return "application/octet-stream"
	}
}

// ========== СЕССИИ ==========

// @Summary Activate user session
// @Description Load the user profile and start the notification sync engine for the session. Requires API key.
// @Tags Sessions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param session body SessionRequest true "Session activation request"
// @Success 201 {object} SessionResponse
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 502 {object} map[string]string "Backend error"
// @Router /sessions [post]
func (h *Handler) activateSession(c *gin.Context) {
	log := h.logger.WithField("method", "activateSession")

	var input SessionRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sess, err := h.sessions.Activate(c.Request.Context(), input.UserID)
	if err != nil {
		log.WithError(err).Error("Failed to activate session")
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, SessionResponse{SessionID: sess.ID, Profile: sess.Profile})
}

// @Summary Deactivate user session
// @Description Stop the session engines and discard the session (logout). Requires API key.
// @Tags Sessions
// @Security ApiKeyAuth
// @Param userId path string true "User ID"
// @Success 204 "No Content"
// @Router /sessions/{userId} [delete]
func (h *Handler) deactivateSession(c *gin.Context) {
	h.sessions.Deactivate(c.Param("userId"))
	c.Status(http.StatusNoContent)
}

// ========== УВЕДОМЛЕНИЯ ==========

// @Summary Notification feed
// @Description Get the local notification feed and unread counter of the session. Requires API key.
// @Tags Notifications
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} NotificationFeedResponse
// @Failure 401 {object} map[string]string "No active session"
// @Router /notifications [get]
func (h *Handler) notificationFeed(c *gin.Context) {
	sess, ok := h.sessionFromRequest(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, NotificationFeedResponse{
		Notifications: sess.Notifications.Notifications(),
		UnreadCount:   sess.Notifications.UnreadCount(),
		PanelOpen:     sess.Notifications.PanelOpen(),
	})
}

// @Summary Open notification panel
// @Description Open the notification panel; the first open loads the feed immediately. Requires API key.
// @Tags Notifications
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} NotificationFeedResponse
// @Failure 401 {object} map[string]string "No active session"
// @Router /notifications/panel/open [post]
func (h *Handler) openNotificationPanel(c *gin.Context) {
	sess, ok := h.sessionFromRequest(c)
	if !ok {
		return
	}
	sess.Notifications.OpenPanel(c.Request.Context())
	c.JSON(http.StatusOK, NotificationFeedResponse{
		Notifications: sess.Notifications.Notifications(),
		UnreadCount:   sess.Notifications.UnreadCount(),
		PanelOpen:     sess.Notifications.PanelOpen(),
	})
}

// @Summary Close notification panel
// @Description Close the notification panel; in-flight feed responses are no longer consumed. Requires API key.
// @Tags Notifications
// @Security ApiKeyAuth
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "No active session"
// @Router /notifications/panel/close [post]
func (h *Handler) closeNotificationPanel(c *gin.Context) {
	sess, ok := h.sessionFromRequest(c)
	if !ok {
		return
	}
	sess.Notifications.ClosePanel()
	c.Status(http.StatusNoContent)
}

// @Summary Mark notification as read
// @Description Mark a single notification as read; already-read notifications are a no-op. Requires API key.
// @Tags Notifications
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Notification ID"
// @Success 200 {object} NotificationFeedResponse
// @Failure 401 {object} map[string]string "No active session"
// @Failure 502 {object} map[string]string "Backend error"
// @Router /notifications/{id}/read [put]
func (h *Handler) markNotificationRead(c *gin.Context) {
	log := h.logger.WithField("method", "markNotificationRead")

	sess, ok := h.sessionFromRequest(c)
	if !ok {
		return
	}
	if err := sess.Notifications.MarkRead(c.Request.Context(), c.Param("id")); err != nil {
		log.WithError(err).Warn("Failed to mark notification as read")
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, NotificationFeedResponse{
		Notifications: sess.Notifications.Notifications(),
		UnreadCount:   sess.Notifications.UnreadCount(),
		PanelOpen:     sess.Notifications.PanelOpen(),
	})
}

// @Summary Mark all notifications as read
// @Description Mark every notification as read; local flags flip only after the backend confirms. Requires API key.
// @Tags Notifications
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} NotificationFeedResponse
// @Failure 401 {object} map[string]string "No active session"
// @Failure 502 {object} map[string]string "Backend error"
// @Router /notifications/read-all [put]
func (h *Handler) markAllNotificationsRead(c *gin.Context) {
	log := h.logger.WithField("method", "markAllNotificationsRead")

	sess, ok := h.sessionFromRequest(c)
	if !ok {
		return
	}
	if err := sess.Notifications.MarkAllRead(c.Request.Context()); err != nil {
		log.WithError(err).Warn("Failed to mark all notifications as read")
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, NotificationFeedResponse{
		Notifications: sess.Notifications.Notifications(),
		UnreadCount:   sess.Notifications.UnreadCount(),
		PanelOpen:     sess.Notifications.PanelOpen(),
	})
}

// ========== МЕСТОПОЛОЖЕНИЕ РЕПОРТА ==========

func (h *Handler) locationResponse(sess *session.Session) ReportLocationResponse {
	return ReportLocationResponse{
		Selected:          sess.Location.Selected(),
		Cities:            sess.Location.Cities(),
		IsLoading:         sess.Location.IsLoading(),
		IsGettingLocation: sess.Location.IsGettingLocation(),
		LocationError:     string(sess.Location.LocationError()),
	}
}

// @Summary Report location state
// @Description Get the current report location, search results and busy flags. Requires API key.
// @Tags Location
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} ReportLocationResponse
// @Failure 401 {object} map[string]string "No active session"
// @Router /report/location [get]
func (h *Handler) reportLocation(c *gin.Context) {
	sess, ok := h.sessionFromRequest(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.locationResponse(sess))
}

// @Summary Resolve device location
// @Description Request the device position once (explicit retry operation as well). Requires API key.
// @Tags Location
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} ReportLocationResponse
// @Failure 401 {object} map[string]string "No active session"
// @Router /report/location/device [post]
func (h *Handler) resolveDeviceLocation(c *gin.Context) {
	sess, ok := h.sessionFromRequest(c)
	if !ok {
		return
	}
	sess.Location.UseDeviceLocation(c.Request.Context())
	c.JSON(http.StatusOK, h.locationResponse(sess))
}

// @Summary Open city search
// @Description Open the city search modal. Requires API key.
// @Tags Location
// @Security ApiKeyAuth
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "No active session"
// @Router /report/location/search/open [post]
func (h *Handler) openCitySearch(c *gin.Context) {
	sess, ok := h.sessionFromRequest(c)
	if !ok {
		return
	}
	sess.Location.OpenSearch()
	c.Status(http.StatusNoContent)
}

// @Summary Close city search
// @Description Close the city search modal; in-flight search responses are discarded. Requires API key.
// @Tags Location
// @Security ApiKeyAuth
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "No active session"
// @Router /report/location/search/close [post]
func (h *Handler) closeCitySearch(c *gin.Context) {
	sess, ok := h.sessionFromRequest(c)
	if !ok {
		return
	}
	sess.Location.CloseSearch()
	c.Status(http.StatusNoContent)
}

// @Summary Search cities
// @Description Schedule a debounced city search for the entered term; only the latest term's result is ever shown. Requires API key.
// @Tags Location
// @Accept json
// @Security ApiKeyAuth
// @Param search body CitySearchRequest true "Search input"
// @Success 202 "Accepted"
// @Failure 401 {object} map[string]string "No active session"
// @Router /report/location/search [post]
func (h *Handler) searchCities(c *gin.Context) {
	log := h.logger.WithField("method", "searchCities")

	sess, ok := h.sessionFromRequest(c)
	if !ok {
		return
	}

	var input CitySearchRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	sess.Location.Search(c.Request.Context(), input.Term)
	c.Status(http.StatusAccepted)
}

// @Summary Select a city
// @Description Select a city from the search results; the manual location overrides the automatic one. Requires API key.
// @Tags Location
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param city body SelectCityRequest true "Selected city"
// @Success 200 {object} ReportLocationResponse
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 401 {object} map[string]string "No active session"
// @Router /report/location/select [post]
func (h *Handler) selectCity(c *gin.Context) {
	log := h.logger.WithField("method", "selectCity")

	sess, ok := h.sessionFromRequest(c)
	if !ok {
		return
	}

	var input SelectCityRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sess.Location.SelectCity(SelectCityToModel(input))
	c.JSON(http.StatusOK, h.locationResponse(sess))
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
