package geosearch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/wildfire_sync_engine/internal/apperrors"
	"github.com/shenikar/wildfire_sync_engine/internal/config"
	"github.com/shenikar/wildfire_sync_engine/internal/models"
	"github.com/sirupsen/logrus"
)

// Client - серверный прокси внешнего API поиска городов. Ключ API живёт только
// в конфигурации сервера и никогда не попадает в отдаваемый клиентам код.
// Повторные термы обслуживаются из кэша Redis.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	apiKey      string
	redisClient *redis.Client
	cacheTTL    time.Duration
	logger      *logrus.Logger
}

// NewClient создает клиент поиска городов
func NewClient(cfg *config.Config, redisClient *redis.Client, logger *logrus.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.BackendTimeout,
		},
		baseURL:     strings.TrimRight(cfg.GeoSearchURL, "/"),
		apiKey:      cfg.GeoSearchAPIKey,
		redisClient: redisClient,
		cacheTTL:    cfg.GeoSearchCacheTTL,
		logger:      logger,
	}
}

// SearchCities ищет города по свободному тексту, сначала в кэше, затем во внешнем API
func (c *Client) SearchCities(ctx context.Context, term string) ([]models.City, error) {
	log := c.logger.WithFields(logrus.Fields{
		"service": "geosearch",
		"method":  "SearchCities",
		"term":    term,
	})

	if cached, err := c.getFromCache(ctx, term); err != nil {
		// Сбой кэша не фатален - идём во внешний API
		log.WithError(err).Warn("Failed to read city search cache")
	} else if cached != nil {
		log.Debug("City search served from cache")
		return cached, nil
	}

	cities, err := c.searchRemote(ctx, term)
	if err != nil {
		return nil, err
	}

	if err := c.setCache(ctx, term, cities); err != nil {
		log.WithError(err).Warn("Failed to write city search cache")
	}
	return cities, nil
}

func (c *Client) searchRemote(ctx context.Context, term string) ([]models.City, error) {
	query := url.Values{}
	query.Set("name", term)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("geosearch: failed to create request: %w", err)
	}
	req.Header.Set("X-Api-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &apperrors.TransportError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &apperrors.TransportError{Err: fmt.Errorf("city search returned status %d", resp.StatusCode)}
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &apperrors.TransportError{Err: err}
	}

	cities := make([]models.City, 0)
	if err := json.Unmarshal(raw, &cities); err != nil {
		return nil, &apperrors.TransportError{Err: fmt.Errorf("failed to decode city search response: %w", err)}
	}
	return cities, nil
}

func cacheKey(term string) string {
	return fmt.Sprintf("citysearch:%s", strings.ToLower(strings.TrimSpace(term)))
}

// getFromCache пытается получить результат поиска из Redis
func (c *Client) getFromCache(ctx context.Context, term string) ([]models.City, error) {
	if c.redisClient == nil {
		return nil, nil
	}
	val, err := c.redisClient.Get(ctx, cacheKey(term)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get cities from cache: %w", err)
	}

	cities := make([]models.City, 0)
	if err := json.Unmarshal(val, &cities); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cities from cache: %w", err)
	}
	return cities, nil
}

// setCache сохраняет результат поиска в Redis с TTL
func (c *Client) setCache(ctx context.Context, term string, cities []models.City) error {
	if c.redisClient == nil {
		return nil
	}
	val, err := json.Marshal(cities)
	if err != nil {
		return fmt.Errorf("failed to marshal cities for cache: %w", err)
	}
	if err := c.redisClient.Set(ctx, cacheKey(term), val, c.cacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set cities in cache: %w", err)
	}
	return nil
}
