package models

import "time"

// NotificationType - тип уведомления
type NotificationType string

const (
	NotificationNewReport    NotificationType = "NEW_REPORT"
	NotificationStatusChange NotificationType = "STATUS_CHANGE"
	NotificationGeneralAlert NotificationType = "GENERAL_ALERT"
	NotificationSystem       NotificationType = "SYSTEM"
)

// Notification - уведомление пользователя. Принадлежит одному пользователю,
// изменяется только через операцию пометки прочитанным (ReadAt выставляется ровно один раз).
type Notification struct {
	ID      string           `json:"id"`
	UserID  string           `json:"userId"`
	Type    NotificationType `json:"type"`
	Title   string           `json:"title,omitempty"`
	Message string           `json:"message,omitempty"`
	Read    bool             `json:"read"`
	ReadAt  *time.Time       `json:"readAt,omitempty"`
	SentAt  time.Time        `json:"sentAt"`
}
