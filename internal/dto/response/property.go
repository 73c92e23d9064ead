package response

import (
	"time"

	"rental-booking/internal/data/entity"
)

type PropertyResponse struct {
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
	Hidden             bool      `json:"hidden"`
	GoogleMapsURL      string    `json:"googleMapsUrl,omitempty"`
	AirbnbURL          string    `json:"airbnbUrl,omitempty"`
	HouseRules         []string  `json:"houseRules,omitempty"`
	CancellationPolicy string    `json:"cancellationPolicy,omitempty"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

func PropertyToResponse(p *entity.Property) PropertyResponse {
	return PropertyResponse{
		ID:                 p.ID,
		Name:               p.Name,
		Location:           p.Location,
		City:               p.City,
		Address:            p.Address,
		Description:        p.Description,
		PricePerNight:      p.PricePerNight,
		MaxGuests:          p.MaxGuests,
		Bedrooms:           p.Bedrooms,
		Bathrooms:          p.Bathrooms,
		Images:             p.Images,
		Videos:             p.Videos,
		Amenities:          p.Amenities,
		Slug:               p.Slug,
		Featured:           p.Featured,
		Hidden:             p.Hidden,
		GoogleMapsURL:      p.GoogleMapsURL,
		AirbnbURL:          p.AirbnbURL,
		HouseRules:         p.HouseRules,
		CancellationPolicy: p.CancellationPolicy,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}
}

func PropertiesToResponse(properties []entity.Property) []PropertyResponse {
	responses := make([]PropertyResponse, len(properties))
	for i := range properties {
		responses[i] = PropertyToResponse(&properties[i])
	}
	return responses
}
