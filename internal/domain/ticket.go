package domain

import "time"

// TicketStatus enumerates support ticket states. A ticket moves to
// "en cours" on the first admin reply and to "fermé" only by explicit
// action; there is no reopen.
type TicketStatus string

const (
	TicketStatusOpen       TicketStatus = "ouvert"
	TicketStatusInProgress TicketStatus = "en cours"
	TicketStatusClosed     TicketStatus = "fermé"
)

// TicketPriority enumerates urgency levels.
type TicketPriority string

const (
	TicketPriorityLow    TicketPriority = "basse"
	TicketPriorityMedium TicketPriority = "moyenne"
	TicketPriorityHigh   TicketPriority = "haute"
)

// TicketResponse is one entry of a ticket's append-only response log.
type TicketResponse struct {
	Content     string    `json:"contenu"`
	AuthorEmail string    `json:"auteur_email"`
	Date        time.Time `json:"date"`
}

// Ticket is a user-submitted support request with threaded admin responses.
type Ticket struct {
	ID        string
	UserEmail string
	Subject   string
	Message   string
	Priority  TicketPriority
	Status    TicketStatus
	Responses []TicketResponse
	CreatedAt time.Time
	UpdatedAt time.Time
}
