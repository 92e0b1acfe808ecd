package gateway

import (
	"context"
	"net/http"
	"net/url"

	"github.com/shenikar/wildfire_sync_engine/internal/models"
)

// GetUserProfile возвращает профиль пользователя. Профиль гейтит административные
// операции и служит ключом для всех вызовов уведомлений.
func (c *Client) GetUserProfile(ctx context.Context, userID string) (*models.UserProfile, error) {
	profile := &models.UserProfile{}
	if err := c.do(ctx, http.MethodGet, "/users/get/"+url.PathEscape(userID), nil, nil, profile); err != nil {
		return nil, err
	}
	return profile, nil
}
