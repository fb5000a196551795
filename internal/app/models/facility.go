package models

type Facility struct {
	FacilityID string   `json:"facility_id"`
	Name       string   `json:"name"`
	Type       string   `json:"type"`
	Address    string   `json:"address"`
	Phone      string   `json:"phone"`
	Rating     float64  `json:"rating"`
	Distance   string   `json:"distance"`
	Lat        float64  `json:"lat"`
	Lng        float64  `json:"lng"`
	Services   []string `json:"services"`
	Open24x7   bool     `json:"open_24_7"`
}

func (f Facility) Coordinates() Coordinates {
	return Coordinates{Lat: f.Lat, Lng: f.Lng}
}
