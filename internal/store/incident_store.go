package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/shenikar/wildfire_sync_engine/internal/config"
	"github.com/shenikar/wildfire_sync_engine/internal/models"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=incident_store.go -destination=mocks/mock_incident_gateway.go -package=mocks

// IncidentGateway определяет контракт удалённых операций чтения инцидентов,
// нужных хранилищу
type IncidentGateway interface {
	ListIncidents(ctx context.Context, filters models.FilterCriteria, page, size int, sortBy string, sortDir models.SortDirection) (*models.Page, error)
	GetIncident(ctx context.Context, id string) (*models.Incident, error)
	ListRecentIncidents(ctx context.Context) ([]*models.Incident, error)
	ListActiveIncidents(ctx context.Context) ([]*models.Incident, error)
}

// IncidentStore - единственный владелец тройки список/курсор/выбранный инцидент.
// Список и курсор заменяются атомарно; ответ запроса применяется, только если
// запрос всё ещё последний своего вида (подавление устаревших ответов).
// Все остальные компоненты меняют это состояние только через ApplyMutation.
type IncidentStore struct {
	gw     IncidentGateway
	logger *logrus.Logger
	cfg    *config.Config

	mu        sync.Mutex
	items     []*models.Incident
	cursor    models.PageCursor
	filters   models.FilterCriteria
	sortBy    string
	sortDir   models.SortDirection
	selected  *models.Incident
	querySeq  uint64
	detailSeq uint64
}

// NewIncidentStore создает хранилище состояния инцидентов
func NewIncidentStore(gw IncidentGateway, logger *logrus.Logger, cfg *config.Config) *IncidentStore {
	return &IncidentStore{
		gw:      gw,
		logger:  logger,
		cfg:     cfg,
		sortBy:  models.DefaultSortBy,
		sortDir: models.SortDesc,
	}
}

// Query перезапрашивает страницу у backend (локальный кэш между разными
// комбинациями фильтров/курсора не используется). На успехе список и курсор
// заменяются атомарно; на ошибке прежнее состояние не трогается.
func (s *IncidentStore) Query(ctx context.Context, filters models.FilterCriteria, page, size int, sortBy string, sortDir models.SortDirection) error {
	if page < 0 {
		page = 0
	}
	if size < 1 {
		size = s.cfg.DefaultPageSize
	}
	if sortBy == "" {
		sortBy = models.DefaultSortBy
	}
	if sortDir == "" {
		sortDir = models.SortDesc
	}

	log := s.logger.WithFields(logrus.Fields{
		"store":  "incident",
		"method": "Query",
		"page":   page,
		"size":   size,
	})

	s.mu.Lock()
	s.querySeq++
	seq := s.querySeq
	s.mu.Unlock()

	result, err := s.gw.ListIncidents(ctx, filters, page, size, sortBy, sortDir)
	if err != nil {
		log.WithError(err).Error("Failed to query incidents from backend")
		return fmt.Errorf("store: could not query incidents: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.querySeq {
		// Пока ждали ответ, ушёл более новый запрос - этот ответ устарел
		log.Debug("Discarding stale query response")
		return nil
	}

	// Прямой запрос страницы за пределами выборки не должен сохранить курсор,
	// нарушающий PageIndex < TotalPages
	pageIndex := page
	if result.TotalPages == 0 {
		pageIndex = 0
	} else if pageIndex >= result.TotalPages {
		pageIndex = result.TotalPages - 1
	}

	s.items = result.Content
	s.cursor = models.PageCursor{
		PageIndex:     pageIndex,
		PageSize:      size,
		TotalElements: result.TotalElements,
		TotalPages:    result.TotalPages,
	}
	s.filters = filters
	s.sortBy = sortBy
	s.sortDir = sortDir

	log.WithField("count", len(result.Content)).Info("Incident page replaced")
	return nil
}

// SelectDetail запрашивает полную запись инцидента и заменяет текущий выбранный,
// независимо от свежести элементов списка
func (s *IncidentStore) SelectDetail(ctx context.Context, id string) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"store":       "incident",
		"method":      "SelectDetail",
		"incident_id": id,
	})

	s.mu.Lock()
	s.detailSeq++
	seq := s.detailSeq
	s.mu.Unlock()

	incident, err := s.gw.GetIncident(ctx, id)
	if err != nil {
		log.WithError(err).Error("Failed to fetch incident detail")
		return nil, fmt.Errorf("store: could not select incident detail: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.detailSeq {
		log.Debug("Discarding stale detail response")
		return incident, nil
	}
	s.selected = incident
	return incident, nil
}

// ApplyMutation - единственный разрешённый путь распространения подтверждённого
// сервером изменения в список и деталь. Заменяет не более одного элемента списка
// (по идентичности id) и выбранную деталь, если её id совпадает.
func (s *IncidentStore) ApplyMutation(updated *models.Incident) {
	if updated == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, item := range s.items {
		if item.ID == updated.ID {
			s.items[i] = updated
			break
		}
	}
	if s.selected != nil && s.selected.ID == updated.ID {
		s.selected = updated
	}
}

// GoToPage переходит на страницу p с текущими фильтрами и сортировкой.
// Вне диапазона [0, totalPages) - no-op.
func (s *IncidentStore) GoToPage(ctx context.Context, p int) error {
	s.mu.Lock()
	cursor := s.cursor
	filters := s.filters
	sortBy := s.sortBy
	sortDir := s.sortDir
	s.mu.Unlock()

	if !cursor.InRange(p) {
		return nil
	}
	return s.Query(ctx, filters, p, cursor.PageSize, sortBy, sortDir)
}

// NextPage переходит на следующую страницу, не выходя за границы
func (s *IncidentStore) NextPage(ctx context.Context) error {
	s.mu.Lock()
	next := s.cursor.PageIndex + 1
	s.mu.Unlock()
	return s.GoToPage(ctx, next)
}

// PreviousPage переходит на предыдущую страницу, не выходя за границы
func (s *IncidentStore) PreviousPage(ctx context.Context) error {
	s.mu.Lock()
	prev := s.cursor.PageIndex - 1
	s.mu.Unlock()
	return s.GoToPage(ctx, prev)
}

// LoadRecent заменяет список репортами за последние сутки (непагинированная выборка)
func (s *IncidentStore) LoadRecent(ctx context.Context) error {
	incidents, err := s.gw.ListRecentIncidents(ctx)
	if err != nil {
		return fmt.Errorf("store: could not load recent incidents: %w", err)
	}
	s.replaceUnpaged(incidents)
	return nil
}

// LoadActive заменяет список активными инцидентами (непагинированная выборка)
func (s *IncidentStore) LoadActive(ctx context.Context) error {
	incidents, err := s.gw.ListActiveIncidents(ctx)
	if err != nil {
		return fmt.Errorf("store: could not load active incidents: %w", err)
	}
	s.replaceUnpaged(incidents)
	return nil
}

func (s *IncidentStore) replaceUnpaged(incidents []*models.Incident) {
	s.mu.Lock()
	defer s.mu.Unlock()
	// Непагинированная выборка тоже атомарно заменяет пару список/курсор
	s.querySeq++
	s.items = incidents
	totalPages := 0
	if len(incidents) > 0 {
		totalPages = 1
	}
	s.cursor = models.PageCursor{
		PageIndex:     0,
		PageSize:      len(incidents),
		TotalElements: len(incidents),
		TotalPages:    totalPages,
	}
}

// Items возвращает копию текущей страницы инцидентов
func (s *IncidentStore) Items() []*models.Incident {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := make([]*models.Incident, len(s.items))
	copy(items, s.items)
	return items
}

// Cursor возвращает текущий курсор пагинации
func (s *IncidentStore) Cursor() models.PageCursor {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cursor
}

// Selected возвращает текущий выбранный инцидент (или nil)
func (s *IncidentStore) Selected() *models.Incident {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selected
}

// ClearSelected сбрасывает выбранный инцидент (закрытие детали)
func (s *IncidentStore) ClearSelected() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = nil
}

// Filters возвращает фильтры последнего успешного запроса
func (s *IncidentStore) Filters() models.FilterCriteria {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filters
}
