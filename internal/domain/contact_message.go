package domain

import "time"

// ContactMessageStatus tracks handling of public contact-form messages.
type ContactMessageStatus string

const (
	ContactMessageStatusNew     ContactMessageStatus = "nouveau"
	ContactMessageStatusRead    ContactMessageStatus = "lu"
	ContactMessageStatusReplied ContactMessageStatus = "répondu"
)

// ContactMessage is an inbound message from the public contact form.
type ContactMessage struct {
	ID        string
	FullName  string
	Email     string
	Phone     string
	Subject   string
	Message   string
	Status    ContactMessageStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}
