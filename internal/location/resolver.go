package location

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/shenikar/wildfire_sync_engine/internal/apperrors"
	"github.com/shenikar/wildfire_sync_engine/internal/models"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
//go:generate mockgen -source=device.go -destination=mocks/mock_device.go -package=mocks

// CitySearcher определяет контракт поиска городов по свободному тексту
type CitySearcher interface {
	SearchCities(ctx context.Context, term string) ([]models.City, error)
}

// Координаты по умолчанию, пока устройство не дало позицию (детерминированный fallback)
const (
	defaultLatitude  = 34.1000
	defaultLongitude = 14.005
)

// minSearchTermLen - порог длины запроса; короче - пустой результат без сети
const minSearchTermLen = 2

// Resolver разрешает координаты репорта двумя независимыми потоками: одиночным
// запросом позиции устройства с явным повтором и дебаунс-поиском города.
// Результат поиска применяется, только если его запрос всё ещё последний:
// пользователю никогда не показывается ответ более раннего ввода.
type Resolver struct {
	locator  DeviceLocator
	searcher CitySearcher
	logger   *logrus.Logger

	debounce   time.Duration
	geoTimeout time.Duration
	geoMaxAge  time.Duration

	mu                sync.Mutex
	selected          models.SelectedLocation
	cities            []models.City
	isLoading         bool
	isGettingLocation bool
	locationError     apperrors.DeviceErrorCode
	searchOpen        bool
	searchSeq         uint64
	timer             *time.Timer
}

// NewResolver создает резолвер местоположения репорта
func NewResolver(locator DeviceLocator, searcher CitySearcher, logger *logrus.Logger, debounce, geoTimeout, geoMaxAge time.Duration) *Resolver {
	return &Resolver{
		locator:    locator,
		searcher:   searcher,
		logger:     logger,
		debounce:   debounce,
		geoTimeout: geoTimeout,
		geoMaxAge:  geoMaxAge,
		selected: models.SelectedLocation{
			IsAutomatic: true,
			Latitude:    defaultLatitude,
			Longitude:   defaultLongitude,
		},
	}
}

// UseDeviceLocation выполняет одиночный запрос позиции устройства с высокой
// точностью. Ошибка категоризируется и сохраняется; координаты при этом не
// меняются. Автоматических повторов нет - Retry это явный повторный вызов.
func (r *Resolver) UseDeviceLocation(ctx context.Context) {
	log := r.logger.WithFields(logrus.Fields{
		"resolver": "location",
		"method":   "UseDeviceLocation",
	})

	r.mu.Lock()
	r.isGettingLocation = true
	r.locationError = ""
	r.mu.Unlock()

	position, err := r.locator.CurrentPosition(ctx, PositionOptions{
		HighAccuracy: true,
		Timeout:      r.geoTimeout,
		MaximumAge:   r.geoMaxAge,
	})

	r.mu.Lock()
	defer r.mu.Unlock()
	r.isGettingLocation = false

	if err != nil {
		var deviceErr *apperrors.DeviceError
		if errors.As(err, &deviceErr) {
			r.locationError = deviceErr.Code
		} else {
			r.locationError = apperrors.DeviceUnknown
		}
		log.WithField("category", r.locationError).Warn("Device geolocation failed")
		return
	}

	r.selected = models.SelectedLocation{
		IsAutomatic: true,
		Latitude:    position.Latitude,
		Longitude:   position.Longitude,
	}
	log.Info("Device location resolved")
}

// OpenSearch открывает модал поиска города и сбрасывает прежние результаты
func (r *Resolver) OpenSearch() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.searchOpen = true
	r.cities = nil
	r.isLoading = false
}

// CloseSearch закрывает модал; ответы поиска в полёте больше не потребляются
func (r *Resolver) CloseSearch() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.searchOpen = false
	r.searchSeq++
	if r.timer != nil {
		r.timer.Stop()
	}
	r.cities = nil
	r.isLoading = false
}

// Search планирует дебаунс-поиск города по введённому тексту. Каждый новый ввод
// вытесняет и отложенный, и уже ушедший в сеть запрос: показан будет только
// результат последнего терма.
func (r *Resolver) Search(ctx context.Context, term string) {
	term = strings.TrimSpace(term)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.searchSeq++
	seq := r.searchSeq
	if r.timer != nil {
		r.timer.Stop()
	}

	// Поиск переживает запрос, который его инициировал: устаревание отсекается по seq
	dispatchCtx := context.WithoutCancel(ctx)
	r.timer = time.AfterFunc(r.debounce, func() {
		r.dispatch(dispatchCtx, seq, term)
	})
}

func (r *Resolver) dispatch(ctx context.Context, seq uint64, term string) {
	r.mu.Lock()
	if seq != r.searchSeq || !r.searchOpen {
		r.mu.Unlock()
		return
	}
	if len([]rune(term)) < minSearchTermLen {
		// Короткий ввод немедленно даёт пустой результат без сетевого вызова
		r.cities = []models.City{}
		r.isLoading = false
		r.mu.Unlock()
		return
	}
	r.isLoading = true
	r.mu.Unlock()

	cities, err := r.searcher.SearchCities(ctx, term)

	r.mu.Lock()
	defer r.mu.Unlock()
	if seq != r.searchSeq || !r.searchOpen {
		return
	}
	r.isLoading = false
	if err != nil {
		r.logger.WithError(err).WithField("term", term).Warn("City search failed")
		r.cities = []models.City{}
		return
	}
	r.cities = cities
}

// SelectCity выбирает город из результатов поиска: ручное значение перекрывает
// автоматическое до явного повтора геолокации. Модал закрывается.
func (r *Resolver) SelectCity(city models.City) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.selected = models.SelectedLocation{
		IsAutomatic: false,
		Latitude:    city.Latitude,
		Longitude:   city.Longitude,
		CityName:    city.Name,
		Country:     city.Country,
	}
	r.searchOpen = false
	r.searchSeq++
	if r.timer != nil {
		r.timer.Stop()
	}
	r.cities = nil
	r.isLoading = false
}

// Selected возвращает текущее местоположение репорта
func (r *Resolver) Selected() models.SelectedLocation {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.selected
}

// Cities возвращает копию текущих результатов поиска
func (r *Resolver) Cities() []models.City {
	r.mu.Lock()
	defer r.mu.Unlock()
	cities := make([]models.City, len(r.cities))
	copy(cities, r.cities)
	return cities
}

// IsLoading сообщает, выполняется ли сейчас поиск города
func (r *Resolver) IsLoading() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.isLoading
}

// IsGettingLocation сообщает, выполняется ли запрос позиции устройства
func (r *Resolver) IsGettingLocation() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.isGettingLocation
}

// LocationError возвращает категорию последней ошибки геолокации (пустая - нет ошибки)
func (r *Resolver) LocationError() apperrors.DeviceErrorCode {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.locationError
}
