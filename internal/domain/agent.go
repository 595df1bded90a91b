package domain

import "time"

// Agent is a member of the agency team shown on the public site.
type Agent struct {
	ID        string
	FullName  string
	Email     string
	Phone     string
	Role      string
	PhotoURL  string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
