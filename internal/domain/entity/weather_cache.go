package entity

// WeatherCache is one cached forecast payload keyed by normalized city name
// (lowercase) or the current-location sentinel. A write with an existing key
// fully replaces the row.
type WeatherCache struct {
	CityName    string `json:"cityName" gorm:"primaryKey;column:city_name"`
	Payload     string `json:"payload" gorm:"column:payload;type:text"`
	LastUpdated int64  `json:"lastUpdated" gorm:"column:last_updated"`
}

func (WeatherCache) TableName() string {
	return "weather_cache"
}
