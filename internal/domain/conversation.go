package domain

import "time"

// ConversationStatus enumerates oversight states for private threads.
type ConversationStatus string

const (
	ConversationStatusActive   ConversationStatus = "active"
	ConversationStatusArchived ConversationStatus = "archivée"
	ConversationStatusBlocked  ConversationStatus = "bloquée"
	ConversationStatusReported ConversationStatus = "signalée"
)

// Conversation is a private messaging thread between two members. Blocking is
// admin-only and has no unblock path; it is independent from either
// participant's account status.
type Conversation struct {
	ID                 string
	Participant1Email  string
	Participant2Email  string
	Status             ConversationStatus
	LastMessageContent string
	LastMessageDate    *time.Time
	ReportedByEmail    string
	ReportReason       string
	BlockedByAdmin     bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// PrivateMessage belongs to exactly one conversation.
type PrivateMessage struct {
	ID             string
	ConversationID string
	SenderEmail    string
	Content        string
	Flagged        bool
	CreatedAt      time.Time
}
