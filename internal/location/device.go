package location

import (
	"context"
	"time"

	"github.com/shenikar/wildfire_sync_engine/internal/apperrors"
)

// Position - координаты, полученные от устройства
type Position struct {
	Latitude  float64
	Longitude float64
}

// PositionOptions - параметры одиночного запроса позиции
type PositionOptions struct {
	HighAccuracy bool
	Timeout      time.Duration
	MaximumAge   time.Duration
}

// DeviceLocator - абстракция платформенного API геолокации. Резолвер получает её
// через инъекцию, реализация зависит от окружения; прямого доступа к глобальным
// объектам платформы в компоненте нет.
type DeviceLocator interface {
	CurrentPosition(ctx context.Context, opts PositionOptions) (Position, error)
}

// UnavailableLocator - реализация для окружений без устройства геолокации:
// всегда сообщает, что позиция недоступна
type UnavailableLocator struct{}

func (UnavailableLocator) CurrentPosition(ctx context.Context, opts PositionOptions) (Position, error) {
	return Position{}, &apperrors.DeviceError{Code: apperrors.DevicePositionUnavailable}
}
