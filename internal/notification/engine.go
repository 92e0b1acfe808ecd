package notification

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/shenikar/wildfire_sync_engine/internal/models"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=engine.go -destination=mocks/mock_engine.go -package=mocks

// NotificationGateway определяет контракт удалённых операций с уведомлениями
type NotificationGateway interface {
	ListUserNotifications(ctx context.Context, userID string) ([]*models.Notification, error)
	CountUnreadNotifications(ctx context.Context, userID string) (int, error)
	MarkNotificationRead(ctx context.Context, notificationID, userID string) (*models.Notification, error)
	MarkAllNotificationsRead(ctx context.Context, userID string) error
}

// Engine синхронизирует счётчик непрочитанных и ленту уведомлений одного
// пользователя с сервером опросом без постоянного соединения. Жизненный цикл
// Idle -> Polling -> Idle принадлежит сессии: Start при её активации, Stop при
// логауте; свободно живущих глобальных таймеров нет.
//
// Каждый тик всегда обновляет счётчик, но полную ленту - только при открытой
// панели: это ограничивает сетевую цену, оставляя бейдж свежим.
type Engine struct {
	gw       NotificationGateway
	logger   *logrus.Logger
	userID   string
	interval time.Duration
	now      func() time.Time

	mu            sync.Mutex
	notifications []*models.Notification
	unread        int
	panelOpen     bool
	loadedOnce    bool
	feedSeq       uint64

	busy    atomic.Bool // пропуск тика, если работа предыдущего ещё в полёте
	cancel  context.CancelFunc
	done    chan struct{}
	started bool
}

// NewEngine создает движок синхронизации уведомлений для одного пользователя
func NewEngine(gw NotificationGateway, logger *logrus.Logger, userID string, interval time.Duration) *Engine {
	return &Engine{
		gw:       gw,
		logger:   logger,
		userID:   userID,
		interval: interval,
		now:      time.Now,
	}
}

// Start запускает цикл опроса. Повторный Start до Stop - no-op.
func (e *Engine) Start(ctx context.Context) {
	e.mu.Lock()
	if e.started {
		e.mu.Unlock()
		return
	}
	e.started = true
	pollCtx, cancel := context.WithCancel(ctx)
	e.cancel = cancel
	e.done = make(chan struct{})
	done := e.done
	e.mu.Unlock()

	log := e.logger.WithFields(logrus.Fields{
		"engine":  "notification",
		"user_id": e.userID,
	})
	log.Info("Starting notification sync engine")

	go func() {
		defer close(done)

		// Первое обновление выполняется сразу, бейдж не ждёт первого тика.
		// Панель при старте закрыта, поэтому достаточно счётчика.
		if e.busy.CompareAndSwap(false, true) {
			e.RefreshUnreadCount(pollCtx)
			e.busy.Store(false)
		}

		ticker := time.NewTicker(e.interval)
		defer ticker.Stop()

		for {
			select {
			case <-pollCtx.Done():
				log.Info("Stopping notification sync engine")
				return
			case <-ticker.C:
				if !e.busy.CompareAndSwap(false, true) {
					log.Debug("Previous tick still in flight, skipping")
					continue
				}
				e.tick(pollCtx)
				e.busy.Store(false)
			}
		}
	}()
}

// Stop останавливает опрос и дожидается завершения текущего тика
func (e *Engine) Stop() {
	e.mu.Lock()
	if !e.started {
		e.mu.Unlock()
		return
	}
	e.started = false
	cancel := e.cancel
	done := e.done
	e.mu.Unlock()

	cancel()
	<-done
}

// tick выполняет одну итерацию опроса. Ошибки только логируются:
// следующий тик сам по себе повтор.
func (e *Engine) tick(ctx context.Context) {
	e.RefreshUnreadCount(ctx)

	e.mu.Lock()
	open := e.panelOpen
	e.mu.Unlock()
	if open {
		e.RefreshFeed(ctx)
	}
}

// RefreshUnreadCount обновляет счётчик непрочитанных с сервера
func (e *Engine) RefreshUnreadCount(ctx context.Context) {
	count, err := e.gw.CountUnreadNotifications(ctx, e.userID)
	if err != nil {
		e.logger.WithError(err).WithField("user_id", e.userID).Warn("Failed to refresh unread count")
		return
	}
	e.mu.Lock()
	e.unread = count
	e.mu.Unlock()
}

// RefreshFeed перезагружает ленту. Ответ применяется, только если запрос всё ещё
// последний и панель по-прежнему открыта: закрытие панели прекращает потребление
// ответов в полёте (подавление, не обрыв транспорта).
func (e *Engine) RefreshFeed(ctx context.Context) {
	e.mu.Lock()
	e.feedSeq++
	seq := e.feedSeq
	e.mu.Unlock()

	notifications, err := e.gw.ListUserNotifications(ctx, e.userID)
	if err != nil {
		e.logger.WithError(err).WithField("user_id", e.userID).Warn("Failed to refresh notification feed")
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if seq != e.feedSeq || !e.panelOpen {
		return
	}
	e.notifications = notifications
	e.loadedOnce = true
}

// OpenPanel открывает панель ленты. Если лента ещё ни разу не загружалась,
// загрузка выполняется немедленно, не дожидаясь следующего тика.
func (e *Engine) OpenPanel(ctx context.Context) {
	e.mu.Lock()
	e.panelOpen = true
	needLoad := !e.loadedOnce
	e.mu.Unlock()

	if needLoad {
		e.RefreshFeed(ctx)
	}
}

// ClosePanel закрывает панель и инвалидирует загрузки ленты в полёте
func (e *Engine) ClosePanel() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.panelOpen = false
	e.feedSeq++
}

// MarkRead помечает уведомление прочитанным. Уже прочитанное - no-op (идемпотентно).
// На успехе локальная запись меняется на месте, а счётчик пересчитывается из
// локального набора без повторной выборки; следующий тик лечит возможный дрейф.
func (e *Engine) MarkRead(ctx context.Context, notificationID string) error {
	e.mu.Lock()
	var target *models.Notification
	for _, n := range e.notifications {
		if n.ID == notificationID {
			target = n
			break
		}
	}
	if target == nil {
		e.mu.Unlock()
		return fmt.Errorf("notification: %s not found in local feed", notificationID)
	}
	if target.Read {
		e.mu.Unlock()
		return nil
	}
	e.mu.Unlock()

	updated, err := e.gw.MarkNotificationRead(ctx, notificationID, e.userID)
	if err != nil {
		e.logger.WithError(err).WithField("notification_id", notificationID).Warn("Failed to mark notification as read")
		return fmt.Errorf("notification: could not mark as read: %w", err)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	target.Read = true
	if target.ReadAt == nil {
		// ReadAt выставляется ровно один раз; серверное значение предпочтительнее
		if updated != nil && updated.ReadAt != nil {
			target.ReadAt = updated.ReadAt
		} else {
			readAt := e.now()
			target.ReadAt = &readAt
		}
	}
	e.unread = e.countUnreadLocked()
	return nil
}

// MarkAllRead помечает все уведомления прочитанными. Локальные флаги
// переворачиваются только после подтверждения сервера; на ошибке состояние
// не меняется вовсе (fail-closed, никакого ложного "всё прочитано").
func (e *Engine) MarkAllRead(ctx context.Context) error {
	if err := e.gw.MarkAllNotificationsRead(ctx, e.userID); err != nil {
		e.logger.WithError(err).WithField("user_id", e.userID).Warn("Failed to mark all notifications as read")
		return fmt.Errorf("notification: could not mark all as read: %w", err)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	readAt := e.now()
	for _, n := range e.notifications {
		if !n.Read {
			n.Read = true
			if n.ReadAt == nil {
				at := readAt
				n.ReadAt = &at
			}
		}
	}
	e.unread = 0
	return nil
}

func (e *Engine) countUnreadLocked() int {
	count := 0
	for _, n := range e.notifications {
		if !n.Read {
			count++
		}
	}
	return count
}

// Notifications возвращает копию текущей ленты
func (e *Engine) Notifications() []*models.Notification {
	e.mu.Lock()
	defer e.mu.Unlock()
	notifications := make([]*models.Notification, len(e.notifications))
	copy(notifications, e.notifications)
	return notifications
}

// UnreadCount возвращает текущее значение счётчика непрочитанных
func (e *Engine) UnreadCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.unread
}

// PanelOpen сообщает, открыта ли панель ленты
func (e *Engine) PanelOpen() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.panelOpen
}
