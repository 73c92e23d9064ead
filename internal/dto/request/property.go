package request

type PropertyPayload struct {
	Name               string   `json:"name" validate:"required,max=200"`
	Location           string   `json:"location" validate:"required,max=200"`
	City               string   `json:"city" validate:"required,max=100"`
	Address            string   `json:"address,omitempty"`
	Description        string   `json:"description" validate:"required"`
	PricePerNight      float64  `json:"pricePerNight" validate:"required,gt=0"`
	MaxGuests          int      `json:"maxGuests" validate:"required,min=1"`
	Bedrooms           int      `json:"bedrooms" validate:"min=0"`
	Bathrooms          int      `json:"bathrooms" validate:"min=0"`
	Images             []string `json:"images,omitempty"`
	Videos             []string `json:"videos,omitempty"`
	Amenities          []string `json:"amenities,omitempty"`
	Slug               string   `json:"slug" validate:"required,max=100"`
	Featured           bool     `json:"featured"`
	Hidden             bool     `json:"hidden"`
	GoogleMapsURL      string   `json:"googleMapsUrl,omitempty"`
	AirbnbURL          string   `json:"airbnbUrl,omitempty"`
	HouseRules         []string `json:"houseRules,omitempty"`
	CancellationPolicy string   `json:"cancellationPolicy,omitempty"`
}

type CreatePropertyRequest struct {
	PropertyPayload
}

type UpdatePropertyRequest struct {
	ID string `json:"id" validate:"required"`
	PropertyPayload
}
