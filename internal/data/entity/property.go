package entity

import "time"

// Property is a rental listing. Bookings and reviews reference it by ID;
// deleting a property does not cascade.
type Property struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	Location           string    `json:"location"`
	City               string    `json:"city"`
	Address            string    `json:"address,omitempty"`
	Description        string    `json:"description"`
	PricePerNight      float64   `json:"pricePerNight"`
	MaxGuests          int       `json:"maxGuests"`
	Bedrooms           int       `json:"bedrooms"`
	Bathrooms          int       `json:"bathrooms"`
	Images             []string  `json:"images"`
	Videos             []string  `json:"videos,omitempty"`
	Amenities          []string  `json:"amenities"`
	Slug               string    `json:"slug"`
	Featured           bool      `json:"featured"`
	Hidden             bool      `json:"hidden,omitempty"`
	GoogleMapsURL      string    `json:"googleMapsUrl,omitempty"`
	AirbnbURL          string    `json:"airbnbUrl,omitempty"`
	HouseRules         []string  `json:"houseRules,omitempty"`
	CancellationPolicy string    `json:"cancellationPolicy,omitempty"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}
