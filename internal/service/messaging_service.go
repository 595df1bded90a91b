package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/senbim-immo/admin-service/internal/domain"
	"github.com/senbim-immo/admin-service/internal/events"
	"github.com/senbim-immo/admin-service/internal/repository"
	apperrors "github.com/senbim-immo/admin-service/pkg/util"
)

// MessagingService provides admin oversight of private conversations.
// Blocking a conversation and suspending a participant are two separate
// state machines; neither cascades into the other.
type MessagingService struct {
	conversations repository.ConversationRepository
	messages      repository.PrivateMessageRepository
	users         repository.UserRepository
	dispatcher    events.Dispatcher
}

// NewMessagingService constructs the service.
func NewMessagingService(conversations repository.ConversationRepository, messages repository.PrivateMessageRepository, users repository.UserRepository, dispatcher events.Dispatcher) *MessagingService {
	return &MessagingService{conversations: conversations, messages: messages, users: users, dispatcher: dispatcher}
}

// ListConversations returns threads matching the filter.
func (s *MessagingService) ListConversations(ctx context.Context, filter repository.ConversationFilter) ([]domain.Conversation, error) {
	return s.conversations.List(ctx, filter)
}

// CountByStatus returns oversight counters.
func (s *MessagingService) CountByStatus(ctx context.Context) (map[domain.ConversationStatus]int64, error) {
	return s.conversations.CountByStatus(ctx)
}

// ConversationMessages lists the messages a conversation owns, newest first.
func (s *MessagingService) ConversationMessages(ctx context.Context, conversationID string) ([]domain.PrivateMessage, error) {
	if _, err := s.conversations.GetByID(ctx, conversationID); err != nil {
		return nil, err
	}
	return s.messages.ListByConversation(ctx, conversationID)
}

// Block sets status "bloquée" and blocked_by_admin in a single update. There
// is no unblock operation.
func (s *MessagingService) Block(ctx context.Context, adminEmail, conversationID string) (*domain.Conversation, error) {
	conv, err := s.conversations.GetByID(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	if conv.Status == domain.ConversationStatusBlocked {
		return conv, nil
	}
	conv.Status = domain.ConversationStatusBlocked
	conv.BlockedByAdmin = true
	if err := s.conversations.Update(ctx, conv); err != nil {
		return nil, err
	}
	s.publish(ctx, events.Event{
		Type:       events.EventConversationBlocked,
		EntityID:   conv.ID,
		AdminEmail: adminEmail,
		Payload: events.ConversationBlockedPayload{
			Participant1Email: conv.Participant1Email,
			Participant2Email: conv.Participant2Email,
		},
	})
	return conv, nil
}

// SuspendParticipant suspends a member's account by email. The conversation
// itself is left untouched.
func (s *MessagingService) SuspendParticipant(ctx context.Context, adminEmail, conversationID, participantEmail string) (*domain.User, error) {
	conv, err := s.conversations.GetByID(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	if participantEmail != conv.Participant1Email && participantEmail != conv.Participant2Email {
		return nil, apperrors.NewValidationError("email is not a participant of this conversation", map[string]any{
			"email": participantEmail,
		})
	}

	user, err := s.users.GetByEmail(ctx, participantEmail)
	if err != nil {
		return nil, err
	}
	user.AccountStatus = domain.AccountStatusSuspended
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	s.publish(ctx, events.Event{
		Type:       events.EventUserSuspended,
		EntityID:   user.ID,
		AdminEmail: adminEmail,
		Payload:    events.UserSuspendedPayload{Email: user.Email},
	})
	return user, nil
}

func (s *MessagingService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}
