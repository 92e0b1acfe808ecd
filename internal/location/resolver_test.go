package location_test

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shenikar/wildfire_sync_engine/internal/apperrors"
	location "github.com/shenikar/wildfire_sync_engine/internal/location"
	"github.com/shenikar/wildfire_sync_engine/internal/location/mocks"
	"github.com/shenikar/wildfire_sync_engine/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testDebounce = 10 * time.Millisecond

// newTestResolver — вспомогательная функция для создания резолвера с моками.
func newTestResolver(t *testing.T) (*location.Resolver, *mocks.MockDeviceLocator, *mocks.MockCitySearcher) {
	ctrl := gomock.NewController(t)
	locatorMock := mocks.NewMockDeviceLocator(ctrl)
	searcherMock := mocks.NewMockCitySearcher(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	resolver := location.NewResolver(locatorMock, searcherMock, logger, testDebounce, 10*time.Second, 5*time.Minute)
	return resolver, locatorMock, searcherMock
}

func TestNewResolver_DefaultLocation(t *testing.T) {
	// Подготовка / Действие
	resolver, _, _ := newTestResolver(t)

	// Проверки: детерминированный fallback до первого ответа устройства
	selected := resolver.Selected()
	assert.True(t, selected.IsAutomatic)
	assert.Equal(t, 34.1000, selected.Latitude)
	assert.Equal(t, 14.005, selected.Longitude)
}

func TestUseDeviceLocation_Success(t *testing.T) {
	// Подготовка
	resolver, locatorMock, _ := newTestResolver(t)
	ctx := context.Background()

	// Ожидания: одиночный запрос с высокой точностью и заданными таймаутами
	locatorMock.EXPECT().
		CurrentPosition(ctx, location.PositionOptions{HighAccuracy: true, Timeout: 10 * time.Second, MaximumAge: 5 * time.Minute}).
		Return(location.Position{Latitude: 38.0, Longitude: 23.7}, nil).
		Times(1)

	// Действие
	resolver.UseDeviceLocation(ctx)

	// Проверки
	selected := resolver.Selected()
	assert.True(t, selected.IsAutomatic)
	assert.Equal(t, 38.0, selected.Latitude)
	assert.Equal(t, 23.7, selected.Longitude)
	assert.False(t, resolver.IsGettingLocation())
	assert.Empty(t, resolver.LocationError())
}

func TestUseDeviceLocation_PermissionDenied_KeepsCoordinates(t *testing.T) {
	// Подготовка
	resolver, locatorMock, _ := newTestResolver(t)
	ctx := context.Background()

	// Ожидания
	locatorMock.EXPECT().
		CurrentPosition(ctx, gomock.Any()).
		Return(location.Position{}, &apperrors.DeviceError{Code: apperrors.DevicePermissionDenied}).
		Times(1)

	// Действие
	resolver.UseDeviceLocation(ctx)

	// Проверки: ошибка категоризирована, координаты не тронуты, флаг снят
	assert.Equal(t, apperrors.DevicePermissionDenied, resolver.LocationError())
	assert.Equal(t, 34.1000, resolver.Selected().Latitude)
	assert.False(t, resolver.IsGettingLocation())
}

func TestUseDeviceLocation_UncategorizedError_Unknown(t *testing.T) {
	// Подготовка
	resolver, locatorMock, _ := newTestResolver(t)
	ctx := context.Background()

	// Ожидания
	locatorMock.EXPECT().
		CurrentPosition(ctx, gomock.Any()).
		Return(location.Position{}, fmt.Errorf("platform glitch")).
		Times(1)

	// Действие
	resolver.UseDeviceLocation(ctx)

	// Проверки
	assert.Equal(t, apperrors.DeviceUnknown, resolver.LocationError())
}

func TestUseDeviceLocation_RetryClearsError(t *testing.T) {
	// Подготовка
	resolver, locatorMock, _ := newTestResolver(t)
	ctx := context.Background()

	locatorMock.EXPECT().
		CurrentPosition(ctx, gomock.Any()).
		Return(location.Position{}, &apperrors.DeviceError{Code: apperrors.DeviceTimeout}).
		Times(1)
	resolver.UseDeviceLocation(ctx)
	require.Equal(t, apperrors.DeviceTimeout, resolver.LocationError())

	// Ожидания: явный повтор - новый одиночный запрос
	locatorMock.EXPECT().
		CurrentPosition(ctx, gomock.Any()).
		Return(location.Position{Latitude: 40.6, Longitude: 22.9}, nil).
		Times(1)

	// Действие
	resolver.UseDeviceLocation(ctx)

	// Проверки
	assert.Empty(t, resolver.LocationError())
	assert.Equal(t, 40.6, resolver.Selected().Latitude)
}

func TestSearch_DebounceCoalescesRapidInput(t *testing.T) {
	// Подготовка
	resolver, _, searcherMock := newTestResolver(t)
	ctx := context.Background()
	resolver.OpenSearch()
	results := []models.City{{Name: "London", Country: "UK", Latitude: 51.5, Longitude: -0.12}}

	// Ожидания: быстрый ввод "Lo" -> "Lon" даёт ровно один сетевой запрос, по последнему терму
	searcherMock.EXPECT().
		SearchCities(gomock.Any(), "Lon").
		Return(results, nil).
		Times(1)

	// Действие
	resolver.Search(ctx, "Lo")
	resolver.Search(ctx, "Lon")

	// Проверки
	require.Eventually(t, func() bool {
		return len(resolver.Cities()) == 1
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, results, resolver.Cities())
	assert.False(t, resolver.IsLoading())
}

func TestSearch_OlderResponseAfterNewer_Discarded(t *testing.T) {
	// Подготовка
	resolver, _, searcherMock := newTestResolver(t)
	ctx := context.Background()
	resolver.OpenSearch()
	loEntered := make(chan struct{})
	loRelease := make(chan struct{})
	lonResults := []models.City{{Name: "London", Country: "UK", Latitude: 51.5, Longitude: -0.12}}

	// Ожидания: первый запрос завис в сети и вернётся уже после второго
	searcherMock.EXPECT().
		SearchCities(gomock.Any(), "Lo").
		DoAndReturn(func(ctx context.Context, term string) ([]models.City, error) {
			close(loEntered)
			<-loRelease
			return []models.City{{Name: "Lorca", Country: "Spain"}}, nil
		}).
		Times(1)
	searcherMock.EXPECT().
		SearchCities(gomock.Any(), "Lon").
		Return(lonResults, nil).
		Times(1)

	// Действие: "Lo" уже ушёл в сеть, когда набирается "Lon"
	resolver.Search(ctx, "Lo")
	select {
	case <-loEntered:
	case <-time.After(time.Second):
		t.Fatal("first search was never dispatched")
	}
	resolver.Search(ctx, "Lon")
	require.Eventually(t, func() bool {
		return len(resolver.Cities()) == 1
	}, time.Second, 5*time.Millisecond)

	// Опоздавший ответ первого запроса приходит последним
	close(loRelease)

	// Проверки: показан результат последнего терма, устаревший ответ отброшен
	time.Sleep(3 * testDebounce)
	assert.Equal(t, lonResults, resolver.Cities())
	assert.False(t, resolver.IsLoading())
}

func TestSearch_ShortTerm_NoNetworkCall(t *testing.T) {
	// Подготовка
	resolver, _, searcherMock := newTestResolver(t)
	ctx := context.Background()
	resolver.OpenSearch()

	// Ожидания: короче двух символов - пустой результат без сети
	searcherMock.EXPECT().SearchCities(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	resolver.Search(ctx, "L")

	// Проверки
	require.Eventually(t, func() bool {
		return !resolver.IsLoading()
	}, time.Second, 5*time.Millisecond)
	time.Sleep(3 * testDebounce) // даём дебаунсу точно отработать
	assert.Empty(t, resolver.Cities())
}

func TestSearch_CloseDuringFlight_ResponseDiscarded(t *testing.T) {
	// Подготовка
	resolver, _, searcherMock := newTestResolver(t)
	ctx := context.Background()
	resolver.OpenSearch()
	dispatched := make(chan struct{})

	// Ожидания: пока ответ в полёте, модал закрывается
	searcherMock.EXPECT().
		SearchCities(gomock.Any(), "Athens").
		DoAndReturn(func(ctx context.Context, term string) ([]models.City, error) {
			resolver.CloseSearch()
			close(dispatched)
			return []models.City{{Name: "Athens"}}, nil
		}).
		Times(1)

	// Действие
	resolver.Search(ctx, "Athens")

	// Проверки: опоздавший ответ не применился
	select {
	case <-dispatched:
	case <-time.After(time.Second):
		t.Fatal("search was never dispatched")
	}
	time.Sleep(3 * testDebounce)
	assert.Empty(t, resolver.Cities())
	assert.False(t, resolver.IsLoading())
}

func TestSelectCity_OverridesAutomaticAndClosesSearch(t *testing.T) {
	// Подготовка
	resolver, _, _ := newTestResolver(t)
	resolver.OpenSearch()
	city := models.City{Name: "Thessaloniki", Country: "Greece", Latitude: 40.64, Longitude: 22.94}

	// Действие
	resolver.SelectCity(city)

	// Проверки: ручной выбор перекрывает автоматический, модал закрыт
	selected := resolver.Selected()
	assert.False(t, selected.IsAutomatic)
	assert.Equal(t, "Thessaloniki", selected.CityName)
	assert.Equal(t, "Greece", selected.Country)
	assert.Equal(t, 40.64, selected.Latitude)
	assert.Empty(t, resolver.Cities())
}
