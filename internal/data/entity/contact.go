package entity

import "time"

type ContactAddress struct {
	Street  string `json:"street,omitempty"`
	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`
	ZipCode string `json:"zipCode,omitempty"`
}

type BusinessHours struct {
	Days  string `json:"days"`
	Hours string `json:"hours"`
}

type SocialMedia struct {
	Facebook  string `json:"facebook,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
}

// ContactDetails is a singleton document shown on the public contact page.
type ContactDetails struct {
	ID            string         `json:"id"`
	PhoneNumbers  []string       `json:"phoneNumbers"`
	Emails        []string       `json:"emails"`
	Address       ContactAddress `json:"address"`
	BusinessHours BusinessHours  `json:"businessHours"`
	SocialMedia   *SocialMedia   `json:"socialMedia,omitempty"`
	UpdatedAt     time.Time      `json:"updatedAt"`
}
