package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/shenikar/wildfire_sync_engine/internal/apperrors"
	"github.com/shenikar/wildfire_sync_engine/internal/config"
	"github.com/sirupsen/logrus"
)

// Client - HTTP-клиент удалённого backend (RemoteGateway). Все ответы backend
// обёрнуты в единый конверт {type, data, listMessage}; клиент декодирует конверт
// на своей границе и наружу отдаёт либо типизированные данные, либо ошибку таксономии.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	logger     *logrus.Logger
}

// NewClient создает клиент backend API
func NewClient(cfg *config.Config, logger *logrus.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.BackendTimeout,
		},
		baseURL: strings.TrimRight(cfg.BackendBaseURL, "/"),
		token:   cfg.BackendToken,
		logger:  logger,
	}
}

// envelope - единый конверт ответа backend
type envelope struct {
	Type        string          `json:"type"`
	Data        json.RawMessage `json:"data"`
	ListMessage []string        `json:"listMessage"`
}

// do выполняет запрос, декодирует конверт и распаковывает data в out (если out != nil).
// Сетевые сбои и нечитаемые конверты становятся TransportError,
// конверты type="error" - GatewayError со списком сообщений как есть.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any, out any) error {
	requestID := uuid.NewString()
	log := c.logger.WithFields(logrus.Fields{
		"gateway":    "backend",
		"method":     method,
		"path":       path,
		"request_id": requestID,
	})

	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("gateway: failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(payload)
	}

	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reqBody)
	if err != nil {
		return fmt.Errorf("gateway: failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.WithError(err).Warn("Backend request failed")
		return &apperrors.TransportError{Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &apperrors.TransportError{Err: err}
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		// Конверт недоступен - считаем сбоем транспорта
		return &apperrors.TransportError{Err: fmt.Errorf("unreadable envelope (status %d): %w", resp.StatusCode, err)}
	}

	if env.Type != "success" {
		log.WithField("messages", env.ListMessage).Warn("Backend returned error envelope")
		return &apperrors.GatewayError{Messages: env.ListMessage}
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return &apperrors.TransportError{Err: fmt.Errorf("failed to decode envelope data: %w", err)}
		}
	}
	return nil
}

// doRaw выполняет запрос, ответ которого не обёрнут в конверт (экспорт файлов).
// Возвращает тело и Content-Type как есть.
func (c *Client) doRaw(ctx context.Context, method, path string, query url.Values) ([]byte, string, error) {
	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, nil)
	if err != nil {
		return nil, "", fmt.Errorf("gateway: failed to create request: %w", err)
	}
	req.Header.Set("X-Request-ID", uuid.NewString())
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, "", &apperrors.TransportError{Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", &apperrors.TransportError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// При ошибке backend всё же присылает конверт с сообщениями
		var env envelope
		if err := json.Unmarshal(raw, &env); err == nil && env.Type == "error" {
			return nil, "", &apperrors.GatewayError{Messages: env.ListMessage}
		}
		return nil, "", &apperrors.TransportError{Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	return raw, resp.Header.Get("Content-Type"), nil
}
