package models

// City - результат поиска города по свободному тексту
type City struct {
	Name      string  `json:"name"`
	Country   string  `json:"country"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// SelectedLocation - текущее местоположение репорта. IsAutomatic=true означает,
// что координаты получены от устройства; выбор города из поиска выставляет false
// и перекрывает автоматическое значение до явного повтора геолокации.
type SelectedLocation struct {
	IsAutomatic bool    `json:"isAutomatic"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	CityName    string  `json:"cityName"`
	Country     string  `json:"country"`
}
