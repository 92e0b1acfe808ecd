package lifecycle

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/shenikar/wildfire_sync_engine/internal/apperrors"
	"github.com/shenikar/wildfire_sync_engine/internal/models"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=controller.go -destination=mocks/mock_controller.go -package=mocks

// StatusGateway определяет контракт удалённой смены статуса инцидента
type StatusGateway interface {
	UpdateIncidentStatus(ctx context.Context, update models.StatusUpdate) (*models.Incident, error)
}

// MutationApplier распространяет подтверждённое сервером изменение в хранилище
type MutationApplier interface {
	ApplyMutation(updated *models.Incident)
}

// Controller переносит переход статуса на backend и применяет подтверждённый
// результат к хранилищу. Легальность порядка переходов контроллер не оценивает:
// это административный override, политика - на стороне backend.
type Controller struct {
	gw       StatusGateway
	store    MutationApplier
	validate *validator.Validate
	logger   *logrus.Logger
}

// NewController создает контроллер жизненного цикла инцидентов
func NewController(gw StatusGateway, store MutationApplier, logger *logrus.Logger) *Controller {
	return &Controller{
		gw:       gw,
		store:    store,
		validate: validator.New(),
		logger:   logger,
	}
}

// Transition выполняет единичный переход статуса: обязательные поля проверяются
// до сетевого вызова, локальное состояние изменяется только серверным ответом
// (контроллер никогда не синтезирует пост-переходный инцидент сам).
// Повторов нет - только ручной ретрай.
func (c *Controller) Transition(ctx context.Context, update models.StatusUpdate) (*models.Incident, error) {
	log := c.logger.WithFields(logrus.Fields{
		"service":     "lifecycle",
		"method":      "Transition",
		"incident_id": update.IncidentID,
		"new_status":  update.NewStatus,
	})

	if err := c.validate.Struct(update); err != nil {
		log.WithError(err).Warn("Transition request failed validation")
		return nil, &apperrors.ValidationError{Message: err.Error()}
	}

	log.Info("Submitting status transition")
	incident, err := c.gw.UpdateIncidentStatus(ctx, update)
	if err != nil {
		log.WithError(err).Error("Failed to update incident status on backend")
		return nil, fmt.Errorf("lifecycle: could not transition incident: %w", err)
	}

	// Сервер - источник истины для updatedAt и производных полей
	c.store.ApplyMutation(incident)

	log.Info("Status transition confirmed and applied")
	return incident, nil
}
