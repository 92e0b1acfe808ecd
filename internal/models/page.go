package models

// SortDirection - направление сортировки списка
type SortDirection string

const (
	SortAsc  SortDirection = "ASC"
	SortDesc SortDirection = "DESC"
)

// Сортировка по умолчанию - по дате репорта, новые первыми
const (
	DefaultSortBy = "reportedAt"
)

// PageCursor - курсор пагинации. Инвариант: PageIndex < TotalPages при TotalPages > 0.
type PageCursor struct {
	PageIndex     int `json:"pageIndex"`
	PageSize      int `json:"pageSize"`
	TotalElements int `json:"totalElements"`
	TotalPages    int `json:"totalPages"`
}

// InRange проверяет, допустим ли переход на страницу page
func (c PageCursor) InRange(page int) bool {
	return page >= 0 && page < c.TotalPages
}

// Page - страница инцидентов, как её возвращает backend
type Page struct {
	Content       []*Incident `json:"content"`
	TotalElements int         `json:"totalElements"`
	TotalPages    int         `json:"totalPages"`
}
