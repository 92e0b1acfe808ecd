package gateway

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/shenikar/wildfire_sync_engine/internal/models"
)

// ListIncidents возвращает страницу инцидентов по нормализованным фильтрам.
// Пустые поля фильтра в запрос не попадают.
func (c *Client) ListIncidents(ctx context.Context, filters models.FilterCriteria, page, size int, sortBy string, sortDir models.SortDirection) (*models.Page, error) {
	query := filters.Values()
	query.Set("page", strconv.Itoa(page))
	query.Set("size", strconv.Itoa(size))
	if sortBy != "" {
		query.Set("sortBy", sortBy)
	}
	if sortDir != "" {
		query.Set("sortDirection", string(sortDir))
	}

	result := &models.Page{}
	if err := c.do(ctx, http.MethodGet, "/incidents", query, nil, result); err != nil {
		return nil, err
	}
	return result, nil
}

// GetIncident возвращает полную запись инцидента по ID
func (c *Client) GetIncident(ctx context.Context, id string) (*models.Incident, error) {
	incident := &models.Incident{}
	if err := c.do(ctx, http.MethodGet, "/incidents/"+url.PathEscape(id), nil, nil, incident); err != nil {
		return nil, err
	}
	return incident, nil
}

// ListRecentIncidents возвращает инциденты, зарепорченные за последние сутки
func (c *Client) ListRecentIncidents(ctx context.Context) ([]*models.Incident, error) {
	incidents := make([]*models.Incident, 0)
	if err := c.do(ctx, http.MethodGet, "/incidents/recent", nil, nil, &incidents); err != nil {
		return nil, err
	}
	return incidents, nil
}

// ListActiveIncidents возвращает инциденты в статусах REPORTED и IN_PROGRESS
func (c *Client) ListActiveIncidents(ctx context.Context) ([]*models.Incident, error) {
	incidents := make([]*models.Incident, 0)
	if err := c.do(ctx, http.MethodGet, "/incidents/active", nil, nil, &incidents); err != nil {
		return nil, err
	}
	return incidents, nil
}

// UpdateIncidentStatus выполняет переход статуса и возвращает инцидент,
// пересчитанный сервером (источник истины для updatedAt и производных полей)
func (c *Client) UpdateIncidentStatus(ctx context.Context, update models.StatusUpdate) (*models.Incident, error) {
	incident := &models.Incident{}
	if err := c.do(ctx, http.MethodPut, "/incidents/status", nil, update, incident); err != nil {
		return nil, err
	}
	return incident, nil
}

// ExportIncidents запрашивает выгрузку инцидентов в заданном формате.
// Кодирование выполняет backend, клиент лишь передаёт байты дальше.
func (c *Client) ExportIncidents(ctx context.Context, format string, filters models.FilterCriteria) ([]byte, string, error) {
	switch format {
	case "json", "csv", "xlsx":
	default:
		return nil, "", fmt.Errorf("gateway: unsupported export format %q", format)
	}
	return c.doRaw(ctx, http.MethodGet, "/incidents/export/"+format, filters.Values())
}
