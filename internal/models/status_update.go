package models

// StatusUpdate - запрос смены статуса инцидента. Обязательные поля проверяются
// до любого сетевого вызова; порядок переходов клиент намеренно не проверяет
// (административный override, легальность - решение backend).
type StatusUpdate struct {
	IncidentID  string         `json:"incidentId" validate:"required"`
	AdminUserID string         `json:"adminUserId" validate:"required"`
	NewStatus   IncidentStatus `json:"newStatus" validate:"required,oneof=REPORTED IN_PROGRESS CONTROLLED EXTINGUISHED"`
	Comment     string         `json:"comment,omitempty"`
	ActionTaken string         `json:"actionTaken,omitempty"`
}
