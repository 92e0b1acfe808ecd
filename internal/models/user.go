package models

// UserProfile - профиль пользователя, полученный от backend.
// Используется для гейтинга административных операций и адресации уведомлений.
type UserProfile struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	RoleName string `json:"roleName"`
}

// IsAdmin сообщает, имеет ли пользователь административную роль
func (u *UserProfile) IsAdmin() bool {
	return u.RoleName == "ADMIN"
}
