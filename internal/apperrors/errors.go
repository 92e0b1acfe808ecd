package apperrors

import (
	"fmt"
	"strings"
)

// ValidationError - отсутствие обязательного поля, обнаруженное до любого сетевого вызова
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation: %s", e.Message)
}

// GatewayError - ответ backend с конвертом type="error"; несёт список сообщений для пользователя
type GatewayError struct {
	Messages []string
}

func (e *GatewayError) Error() string {
	if len(e.Messages) == 0 {
		return "gateway: request failed"
	}
	return fmt.Sprintf("gateway: %s", strings.Join(e.Messages, ", "))
}

// UserMessage объединяет список сообщений в одну строку для баннера ошибки
func (e *GatewayError) UserMessage() string {
	return strings.Join(e.Messages, ", ")
}

// TransportError - сбой сети или соединения, конверт ответа недоступен
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// DeviceErrorCode - категория ошибки геолокации устройства
type DeviceErrorCode string

const (
	DevicePermissionDenied    DeviceErrorCode = "PERMISSION_DENIED"
	DevicePositionUnavailable DeviceErrorCode = "POSITION_UNAVAILABLE"
	DeviceTimeout             DeviceErrorCode = "TIMEOUT"
	DeviceUnknown             DeviceErrorCode = "UNKNOWN"
)

// DeviceError - категоризированная ошибка запроса позиции устройства
type DeviceError struct {
	Code DeviceErrorCode
}

func (e *DeviceError) Error() string {
	return fmt.Sprintf("device: %s", e.Code)
}
