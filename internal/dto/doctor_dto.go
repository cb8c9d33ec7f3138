package dto

type DoctorRecommendRequest struct {
	Disease  string        `json:"disease" validate:"required"`
	Urgency  string        `json:"urgency"`
	Language string        `json:"language"`
	Location *UserLocation `json:"location"`
}

type DoctorLocation struct {
	Address string   `json:"address"`
	City    string   `json:"city"`
	State   string   `json:"state"`
	Lat     *float64 `json:"lat"`
	Lng     *float64 `json:"lng"`
}

type RecommendedDoctor struct {
	Name       string         `json:"name"`
	Specialty  string         `json:"specialty"`
	Hospital   string         `json:"hospital"`
	Location   DoctorLocation `json:"location"`
	Rating     *float64       `json:"rating,omitempty"`
	DistanceKm *float64       `json:"distanceKm"`
	Source     string         `json:"source"`
}

// DirectionsRequest resolves a maps link for one recommended doctor.
type DirectionsRequest struct {
	FromLat float64 `json:"fromLat" validate:"required,latitude"`
	FromLng float64 `json:"fromLng" validate:"required,longitude"`
	ToLat   float64 `json:"toLat" validate:"required,latitude"`
	ToLng   float64 `json:"toLng" validate:"required,longitude"`
}

type DirectionsResponse struct {
	URL        string  `json:"url"`
	DistanceKm float64 `json:"distanceKm"`
}
