package dto

import (
	"time"

	"github.com/senbim-immo/admin-service/internal/domain"
)

// ConversationResponse representation.
type ConversationResponse struct {
	ID                 string                    `json:"id"`
	Participant1Email  string                    `json:"participant1_email"`
	Participant2Email  string                    `json:"participant2_email"`
	Status             domain.ConversationStatus `json:"status"`
	LastMessageContent string                    `json:"last_message_content,omitempty"`
	LastMessageDate    *time.Time                `json:"last_message_date,omitempty"`
	ReportedByEmail    string                    `json:"reported_by_email,omitempty"`
	ReportReason       string                    `json:"report_reason,omitempty"`
	BlockedByAdmin     bool                      `json:"blocked_by_admin"`
	CreatedAt          time.Time                 `json:"created_at"`
}

// PrivateMessageResponse is one message of a thread.
type PrivateMessageResponse struct {
	ID          string    `json:"id"`
	SenderEmail string    `json:"sender_email"`
	Content     string    `json:"content"`
	Flagged     bool      `json:"flagged"`
	CreatedAt   time.Time `json:"created_at"`
}

// SuspendParticipantRequest names which side of the thread to suspend.
type SuspendParticipantRequest struct {
	Email string `json:"email"`
}
