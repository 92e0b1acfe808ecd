package models

import (
	"time"
)

// IncidentStatus - статус жизненного цикла инцидента.
// Порядок значений отражает эскалацию, но сервер не требует движения только вперёд:
// администратор может выставить любой статус (ручной триаж).
type IncidentStatus string

const (
	StatusReported     IncidentStatus = "REPORTED"
	StatusInProgress   IncidentStatus = "IN_PROGRESS"
	StatusControlled   IncidentStatus = "CONTROLLED"
	StatusExtinguished IncidentStatus = "EXTINGUISHED"
)

// UrgencyLevel - уровень срочности инцидента
type UrgencyLevel string

const (
	UrgencyLow      UrgencyLevel = "LOW"
	UrgencyMedium   UrgencyLevel = "MEDIUM"
	UrgencyHigh     UrgencyLevel = "HIGH"
	UrgencyCritical UrgencyLevel = "CRITICAL"
)

// Incident - доменная модель инцидента (пожара), полученная от удалённого backend.
// ID и ReportedAt неизменяемы; UpdatedAt выставляется сервером при каждой смене статуса.
type Incident struct {
	ID             string         `json:"id"`
	VegetationType string         `json:"vegetationType,omitempty"`
	FireSource     string         `json:"fireSource,omitempty"`
	Description    string         `json:"description,omitempty"`
	Status         IncidentStatus `json:"status"`
	Urgency        UrgencyLevel   `json:"urgency"`
	Latitude       float64        `json:"latitude"`
	Longitude      float64        `json:"longitude"`
	City           string         `json:"city,omitempty"`
	Country        string         `json:"country,omitempty"`
	Region         string         `json:"region,omitempty"`
	AffectedArea   float64        `json:"affectedArea"` // гектары, не отрицательное
	ReportedAt     time.Time      `json:"reportedAt"`
	UpdatedAt      *time.Time     `json:"updatedAt,omitempty"`
	ReporterName   string         `json:"reporterName,omitempty"`
	ReporterEmail  string         `json:"reporterEmail,omitempty"`
	// Вложения и комментарии - непрозрачные коллекции, ядро их не изменяет
	Attachments []map[string]any `json:"attachments,omitempty"`
	Comments    []map[string]any `json:"comments,omitempty"`
}

// IsActive сообщает, считается ли инцидент активным (для статистики и дашборда)
func (i *Incident) IsActive() bool {
	return i.Status == StatusReported || i.Status == StatusInProgress
}
