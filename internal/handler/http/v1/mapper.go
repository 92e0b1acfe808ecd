package v1

import (
	"fmt"

	"github.com/shenikar/wildfire_sync_engine/internal/models"
)

// QueryToFilterCriteria преобразует параметры запроса в доменные фильтры.
// Пустые поля остаются незаданными - "не фильтровать", а не "равно пустому".
func QueryToFilterCriteria(q ListIncidentsQuery) (models.FilterCriteria, error) {
	dateFrom, err := parseTime(q.DateFrom)
	if err != nil {
		return models.FilterCriteria{}, fmt.Errorf("invalid dateFrom: %w", err)
	}
	dateTo, err := parseTime(q.DateTo)
	if err != nil {
		return models.FilterCriteria{}, fmt.Errorf("invalid dateTo: %w", err)
	}

	return models.FilterCriteria{
		Status:   models.IncidentStatus(q.Status),
		DateFrom: dateFrom,
		DateTo:   dateTo,
		Country:  q.Country,
		Region:   q.Region,
		City:     q.City,
		Urgency:  models.UrgencyLevel(q.Urgency),
		AreaMin:  q.AreaMin,
		AreaMax:  q.AreaMax,
	}, nil
}

// TransitionToStatusUpdate собирает запрос смены статуса; id администратора
// берётся из профиля активной сессии, а не из тела запроса
func TransitionToStatusUpdate(req TransitionRequest, adminUserID string) models.StatusUpdate {
	return models.StatusUpdate{
		IncidentID:  req.IncidentID,
		AdminUserID: adminUserID,
		NewStatus:   models.IncidentStatus(req.NewStatus),
		Comment:     req.Comment,
		ActionTaken: req.ActionTaken,
	}
}

// SelectCityToModel преобразует DTO выбора города в доменную модель
func SelectCityToModel(req SelectCityRequest) models.City {
	return models.City{
		Name:      req.Name,
		Country:   req.Country,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	}
}
