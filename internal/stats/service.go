package stats

import (
	"context"
	"fmt"
	"time"

	"github.com/shenikar/wildfire_sync_engine/internal/config"
	"github.com/shenikar/wildfire_sync_engine/internal/models"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks

// IncidentLister определяет контракт выборки инцидентов для представления статистики
type IncidentLister interface {
	ListIncidents(ctx context.Context, filters models.FilterCriteria, page, size int, sortBy string, sortDir models.SortDirection) (*models.Page, error)
}

// Service материализует полный набор инцидентов и агрегирует его.
// Сводка согласована только со снимком, из которого вычислена.
type Service struct {
	gw     IncidentLister
	logger *logrus.Logger
	cfg    *config.Config
	now    func() time.Time
}

// NewService создает сервис статистики
func NewService(gw IncidentLister, logger *logrus.Logger, cfg *config.Config) *Service {
	return &Service{
		gw:     gw,
		logger: logger,
		cfg:    cfg,
		now:    time.Now,
	}
}

// Collect загружает полный набор инцидентов одной страницей и возвращает сводку
func (s *Service) Collect(ctx context.Context) (models.Statistics, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "stats",
		"method":  "Collect",
	})

	page, err := s.gw.ListIncidents(ctx, models.FilterCriteria{}, 0, s.cfg.StatsPageSize, models.DefaultSortBy, models.SortDesc)
	if err != nil {
		log.WithError(err).Error("Failed to load incidents for statistics")
		return models.Statistics{}, fmt.Errorf("stats: could not collect statistics: %w", err)
	}

	result := Aggregate(page.Content, s.now())
	log.WithField("total", result.Total).Info("Statistics aggregated")
	return result, nil
}
