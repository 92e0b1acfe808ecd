package v1

import (
	"time"

	"github.com/shenikar/wildfire_sync_engine/internal/models"
)

// ListIncidentsQuery DTO параметров списка инцидентов
// @Description Параметры фильтрации, сортировки и пагинации списка инцидентов
type ListIncidentsQuery struct {
	Status        string   `form:"status" validate:"omitempty,oneof=REPORTED IN_PROGRESS CONTROLLED EXTINGUISHED"`
	DateFrom      string   `form:"dateFrom" validate:"omitempty"`
	DateTo        string   `form:"dateTo" validate:"omitempty"`
	Country       string   `form:"country"`
	Region        string   `form:"region"`
	City          string   `form:"city"`
	Urgency       string   `form:"urgency" validate:"omitempty,oneof=LOW MEDIUM HIGH CRITICAL"`
	AreaMin       *float64 `form:"areaMin" validate:"omitempty,gte=0"`
	AreaMax       *float64 `form:"areaMax" validate:"omitempty,gte=0"`
	Page          int      `form:"page"`
	Size          int      `form:"size"`
	SortBy        string   `form:"sortBy"`
	SortDirection string   `form:"sortDirection" validate:"omitempty,oneof=ASC DESC"`
}

// TransitionRequest DTO для смены статуса инцидента
// @Description DTO для смены статуса инцидента
type TransitionRequest struct {
	IncidentID  string `json:"incidentId" validate:"required"`
	NewStatus   string `json:"newStatus" validate:"required,oneof=REPORTED IN_PROGRESS CONTROLLED EXTINGUISHED"`
	Comment     string `json:"comment,omitempty"`
	ActionTaken string `json:"actionTaken,omitempty"`
}

// NavigateRequest DTO навигации по страницам текущей выборки
// @Description DTO навигации по страницам текущей выборки
type NavigateRequest struct {
	Action string `json:"action" validate:"required,oneof=next previous goto"`
	Page   int    `json:"page" validate:"gte=0"`
}

// SessionRequest DTO активации сессии
// @Description DTO активации сессии
type SessionRequest struct {
	UserID string `json:"userId" validate:"required"`
}

// CitySearchRequest DTO ввода поиска города
// @Description DTO ввода поиска города
type CitySearchRequest struct {
	Term string `json:"term"`
}

// SelectCityRequest DTO выбора города из результатов поиска
// @Description DTO выбора города из результатов поиска
type SelectCityRequest struct {
	Name      string  `json:"name" validate:"required"`
	Country   string  `json:"country" validate:"required"`
	Latitude  float64 `json:"latitude" validate:"required,latitude"`
	Longitude float64 `json:"longitude" validate:"required,longitude"`
}

// PageResponse DTO страницы инцидентов с курсором
// @Description DTO страницы инцидентов с курсором
type PageResponse struct {
	Items  []*models.Incident `json:"items"`
	Cursor models.PageCursor  `json:"cursor"`
}

// DashboardResponse DTO сводки дашборда
// @Description DTO сводки дашборда
type DashboardResponse struct {
	RecentCount   int                `json:"recentCount"`
	ActiveCount   int                `json:"activeCount"`
	TotalElements int                `json:"totalElements"`
	Latest        []*models.Incident `json:"latest"`
}

// SessionResponse DTO активированной сессии
// @Description DTO активированной сессии
type SessionResponse struct {
	SessionID string              `json:"sessionId"`
	Profile   *models.UserProfile `json:"profile"`
}

// NotificationFeedResponse DTO текущего состояния ленты уведомлений
// @Description DTO текущего состояния ленты уведомлений
type NotificationFeedResponse struct {
	Notifications []*models.Notification `json:"notifications"`
	UnreadCount   int                    `json:"unreadCount"`
	PanelOpen     bool                   `json:"panelOpen"`
}

// ReportLocationResponse DTO состояния резолвера местоположения репорта
// @Description DTO состояния резолвера местоположения репорта
type ReportLocationResponse struct {
	Selected          models.SelectedLocation `json:"selected"`
	Cities            []models.City           `json:"cities"`
	IsLoading         bool                    `json:"isLoading"`
	IsGettingLocation bool                    `json:"isGettingLocation"`
	LocationError     string                  `json:"locationError,omitempty"`
}

// parseTime разбирает дату фильтра в RFC3339 либо короткую форму YYYY-MM-DD
func parseTime(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return &t, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
