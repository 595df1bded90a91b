package dto

import (
	"time"

	"github.com/senbim-immo/admin-service/internal/domain"
)

// TicketResponseEntry is one entry of the threaded response log.
type TicketResponseEntry struct {
	Content     string    `json:"content"`
	AuthorEmail string    `json:"author_email"`
	Date        time.Time `json:"date"`
}

// TicketResponse representation.
type TicketResponse struct {
	ID        string                `json:"id"`
	UserEmail string                `json:"user_email"`
	Subject   string                `json:"subject"`
	Message   string                `json:"message"`
	Priority  domain.TicketPriority `json:"priority"`
	Status    domain.TicketStatus   `json:"status"`
	Responses []TicketResponseEntry `json:"responses"`
	CreatedAt time.Time             `json:"created_at"`
	UpdatedAt time.Time             `json:"updated_at"`
}

// TicketReplyRequest payload.
type TicketReplyRequest struct {
	Content string `json:"content"`
}

// TicketStatusRequest payload.
type TicketStatusRequest struct {
	Status domain.TicketStatus `json:"status"`
}
