package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/shenikar/wildfire_sync_engine/internal/config"
	"github.com/shenikar/wildfire_sync_engine/internal/location"
	"github.com/shenikar/wildfire_sync_engine/internal/models"
	"github.com/shenikar/wildfire_sync_engine/internal/notification"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=manager.go -destination=mocks/mock_manager.go -package=mocks

// ProfileGateway определяет контракт получения профиля пользователя
type ProfileGateway interface {
	GetUserProfile(ctx context.Context, userID string) (*models.UserProfile, error)
}

// Session - состояние одной пользовательской сессии: профиль, движок уведомлений
// и резолвер местоположения репорта
type Session struct {
	ID            string
	Profile       *models.UserProfile
	Notifications *notification.Engine
	Location      *location.Resolver
}

// Manager владеет жизненным циклом сессий: движок уведомлений стартует при
// активации сессии и останавливается при логауте, а не живёт как глобальный таймер.
type Manager struct {
	profiles ProfileGateway
	notifGW  notification.NotificationGateway
	locator  location.DeviceLocator
	searcher location.CitySearcher
	logger   *logrus.Logger
	cfg      *config.Config

	// Базовый контекст приложения: сессии переживают запрос, который их создал
	appCtx context.Context

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewManager создает менеджер сессий
func NewManager(appCtx context.Context, profiles ProfileGateway, notifGW notification.NotificationGateway, locator location.DeviceLocator, searcher location.CitySearcher, logger *logrus.Logger, cfg *config.Config) *Manager {
	return &Manager{
		profiles: profiles,
		notifGW:  notifGW,
		locator:  locator,
		searcher: searcher,
		logger:   logger,
		cfg:      cfg,
		appCtx:   appCtx,
		sessions: make(map[string]*Session),
	}
}

// Activate загружает профиль пользователя и поднимает сессию. Повторная
// активация возвращает уже существующую сессию.
func (m *Manager) Activate(ctx context.Context, userID string) (*Session, error) {
	log := m.logger.WithFields(logrus.Fields{
		"service": "session",
		"method":  "Activate",
		"user_id": userID,
	})

	m.mu.Lock()
	if existing, ok := m.sessions[userID]; ok {
		m.mu.Unlock()
		return existing, nil
	}
	m.mu.Unlock()

	// Профиль гейтит сессию: без него нет ключа для вызовов уведомлений
	profile, err := m.profiles.GetUserProfile(ctx, userID)
	if err != nil {
		log.WithError(err).Error("Failed to load user profile")
		return nil, fmt.Errorf("session: could not activate session: %w", err)
	}

	engine := notification.NewEngine(m.notifGW, m.logger, profile.ID, m.cfg.NotificationPollInterval)
	resolver := location.NewResolver(m.locator, m.searcher, m.logger, m.cfg.SearchDebounce, m.cfg.GeolocationTimeout, m.cfg.GeolocationMaxAge)

	sess := &Session{
		ID:            uuid.NewString(),
		Profile:       profile,
		Notifications: engine,
		Location:      resolver,
	}

	// Движок стартует до публикации сессии: Deactivate, пришедший сразу после
	// Activate, всегда останавливает уже запущенный движок
	engine.Start(m.appCtx)

	m.mu.Lock()
	if existing, ok := m.sessions[userID]; ok {
		// Параллельная активация успела раньше
		m.mu.Unlock()
		engine.Stop()
		return existing, nil
	}
	m.sessions[userID] = sess
	m.mu.Unlock()

	log.WithField("session_id", sess.ID).Info("Session activated")
	return sess, nil
}

// Get возвращает активную сессию пользователя
func (m *Manager) Get(userID string) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	sess, ok := m.sessions[userID]
	return sess, ok
}

// Deactivate останавливает движки сессии и удаляет её (логаут)
func (m *Manager) Deactivate(userID string) {
	m.mu.Lock()
	sess, ok := m.sessions[userID]
	if ok {
		delete(m.sessions, userID)
	}
	m.mu.Unlock()

	if !ok {
		return
	}
	sess.Notifications.Stop()
	sess.Location.CloseSearch()
	m.logger.WithFields(logrus.Fields{
		"service":    "session",
		"method":     "Deactivate",
		"user_id":    userID,
		"session_id": sess.ID,
	}).Info("Session deactivated")
}

// Shutdown останавливает все активные сессии
func (m *Manager) Shutdown() {
	m.mu.Lock()
	sessions := make([]*Session, 0, len(m.sessions))
	for _, sess := range m.sessions {
		sessions = append(sessions, sess)
	}
	m.sessions = make(map[string]*Session)
	m.mu.Unlock()

	for _, sess := range sessions {
		sess.Notifications.Stop()
	}
}
