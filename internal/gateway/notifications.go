package gateway

import (
	"context"
	"net/http"
	"net/url"

	"github.com/shenikar/wildfire_sync_engine/internal/models"
)

// ListUserNotifications возвращает ленту уведомлений пользователя
func (c *Client) ListUserNotifications(ctx context.Context, userID string) ([]*models.Notification, error) {
	notifications := make([]*models.Notification, 0)
	path := "/notifications/user/" + url.PathEscape(userID)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}

// CountUnreadNotifications возвращает количество непрочитанных уведомлений
func (c *Client) CountUnreadNotifications(ctx context.Context, userID string) (int, error) {
	var count int
	path := "/notifications/user/" + url.PathEscape(userID) + "/unread/count"
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &count); err != nil {
		return 0, err
	}
	return count, nil
}

// MarkNotificationRead помечает уведомление прочитанным и возвращает его
// обновлённую запись (сервер выставляет readAt)
func (c *Client) MarkNotificationRead(ctx context.Context, notificationID, userID string) (*models.Notification, error) {
	notification := &models.Notification{}
	path := "/notifications/" + url.PathEscape(notificationID) + "/read"
	query := url.Values{}
	query.Set("userId", userID)
	if err := c.do(ctx, http.MethodPut, path, query, nil, notification); err != nil {
		return nil, err
	}
	return notification, nil
}

// MarkAllNotificationsRead помечает все уведомления пользователя прочитанными
func (c *Client) MarkAllNotificationsRead(ctx context.Context, userID string) error {
	path := "/notifications/user/" + url.PathEscape(userID) + "/read-all"
	return c.do(ctx, http.MethodPut, path, nil, nil, nil)
}
