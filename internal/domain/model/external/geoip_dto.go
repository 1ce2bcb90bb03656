package external

// GeoIPResponse is the IP-geolocation provider's lookup result.
// Status is "success" or "fail"; Message is set only on failure.
type GeoIPResponse struct {
	Status  string  `json:"status"`
	Message string  `json:"message,omitempty"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	City    string  `json:"city"`
	Country string  `json:"country"`
}
