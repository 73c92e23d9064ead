package entity

import "time"

type ContentSection struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Content     string `json:"content,omitempty"`
}

type ContentValue struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon,omitempty"`
}

type ValuesSection struct {
	Title  string         `json:"title"`
	Values []ContentValue `json:"values"`
}

// StaticContent is a singleton document backing the about/landing pages.
type StaticContent struct {
	ID             string         `json:"id"`
	AboutUs        ContentSection `json:"aboutUs"`
	OurStory       ContentSection `json:"ourStory"`
	WhatWeStandFor ValuesSection  `json:"whatWeStandFor"`
	UpdatedAt      time.Time      `json:"updatedAt"`
}
