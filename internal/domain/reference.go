package domain

import "time"

// Category is reference data (property types etc.) managed from settings.
type Category struct {
	ID        string
	Name      string
	Type      string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Location is a city/district entry managed from settings.
type Location struct {
	ID        string
	City      string
	District  string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Configuration is a site-wide key/value setting.
type Configuration struct {
	ID        string
	Key       string
	Value     string
	UpdatedAt time.Time
}
