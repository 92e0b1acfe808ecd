package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Маршруты для просмотра и синхронизации инцидентов
	incidents := api.Group("/incidents")
	{
		incidents.GET("", h.listIncidents)
		incidents.POST("/navigate", h.navigate)
		incidents.GET("/recent", h.listRecent)
		incidents.GET("/active", h.listActive)
		incidents.GET("/history", h.listHistory)
		incidents.GET("/stats", h.getStats)
		incidents.GET("/export/:format", h.exportIncidents)
		incidents.PUT("/status", h.transition)
		incidents.GET("/:id", h.getIncident)
		incidents.DELETE("/detail", h.closeDetail)
	}

	// Сводка для дашборда
	api.GET("/dashboard", h.dashboard)

	// Сессии пользователей
	sessions := api.Group("/sessions")
	{
		sessions.POST("", h.activateSession)
		sessions.DELETE("/:userId", h.deactivateSession)
	}

	// Лента уведомлений активной сессии
	notifications := api.Group("/notifications")
	{
		notifications.GET("", h.notificationFeed)
		notifications.POST("/panel/open", h.openNotificationPanel)
		notifications.POST("/panel/close", h.closeNotificationPanel)
		notifications.PUT("/:id/read", h.markNotificationRead)
		notifications.PUT("/read-all", h.markAllNotificationsRead)
	}

	// Местоположение создаваемого репорта
	location := api.Group("/report/location")
	{
		location.GET("", h.reportLocation)
		location.POST("/device", h.resolveDeviceLocation)
		location.POST("/search/open", h.openCitySearch)
		location.POST("/search/close", h.closeCitySearch)
		location.POST("/search", h.searchCities)
		location.POST("/select", h.selectCity)
	}

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
