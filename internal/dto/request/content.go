package request

import "rental-booking/internal/data/entity"

// Section pointers allow partial updates: only the sections present in the
// request replace the stored ones.
type UpdateContactDetailsRequest struct {
	PhoneNumbers  *[]string              `json:"phoneNumbers,omitempty"`
	Emails        *[]string              `json:"emails,omitempty"`
	Address       *entity.ContactAddress `json:"address,omitempty"`
	BusinessHours *entity.BusinessHours  `json:"businessHours,omitempty"`
	SocialMedia   *entity.SocialMedia    `json:"socialMedia,omitempty"`
}

type UpdateStaticContentRequest struct {
	AboutUs        *entity.ContentSection `json:"aboutUs,omitempty"`
	OurStory       *entity.ContentSection `json:"ourStory,omitempty"`
	WhatWeStandFor *entity.ValuesSection  `json:"whatWeStandFor,omitempty"`
}
