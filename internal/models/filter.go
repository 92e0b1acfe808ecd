package models

import (
	"net/url"
	"strconv"
	"time"
)

// FilterCriteria - необязательные поля фильтрации списка инцидентов.
// Пустое значение означает "не фильтровать", а не "равно пустой строке",
// поэтому перед каждым запросом обязательна нормализация (Values).
type FilterCriteria struct {
	Status   IncidentStatus
	DateFrom *time.Time
	DateTo   *time.Time
	Country  string
	Region   string
	City     string
	Urgency  UrgencyLevel
	AreaMin  *float64
	AreaMax  *float64
}

// IsZero сообщает, задан ли хоть один фильтр
func (f FilterCriteria) IsZero() bool {
	return f.Status == "" && f.DateFrom == nil && f.DateTo == nil &&
		f.Country == "" && f.Region == "" && f.City == "" &&
		f.Urgency == "" && f.AreaMin == nil && f.AreaMax == nil
}

// Values нормализует фильтры в параметры запроса: пустые и отсутствующие поля
// исключаются. Повторная нормализация даёт тот же результат.
func (f FilterCriteria) Values() url.Values {
	v := url.Values{}
	if f.Status != "" {
		v.Set("status", string(f.Status))
	}
	if f.DateFrom != nil {
		v.Set("dateFrom", f.DateFrom.UTC().Format(time.RFC3339))
	}
	if f.DateTo != nil {
		v.Set("dateTo", f.DateTo.UTC().Format(time.RFC3339))
	}
	if f.Country != "" {
		v.Set("country", f.Country)
	}
	if f.Region != "" {
		v.Set("region", f.Region)
	}
	if f.City != "" {
		v.Set("city", f.City)
	}
	if f.Urgency != "" {
		v.Set("urgency", string(f.Urgency))
	}
	if f.AreaMin != nil {
		v.Set("areaMin", strconv.FormatFloat(*f.AreaMin, 'f', -1, 64))
	}
	if f.AreaMax != nil {
		v.Set("areaMax", strconv.FormatFloat(*f.AreaMax, 'f', -1, 64))
	}
	return v
}
