package service

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/senbim-immo/admin-service/internal/domain"
	"github.com/senbim-immo/admin-service/internal/notify"
	"github.com/senbim-immo/admin-service/internal/repository"
	apperrors "github.com/senbim-immo/admin-service/pkg/util"
)

// ContactService manages the contact-form inbox.
type ContactService struct {
	messages repository.ContactMessageRepository
	mailer   notify.Mailer
	fromName string
}

// NewContactService constructs the service.
func NewContactService(messages repository.ContactMessageRepository, mailer notify.Mailer, fromName string) *ContactService {
	return &ContactService{messages: messages, mailer: mailer, fromName: fromName}
}

func (s *ContactService) List(ctx context.Context, filter repository.ContactMessageFilter) ([]domain.ContactMessage, error) {
	return s.messages.List(ctx, filter)
}

// Get fetches a message and marks it read when it is still new.
func (s *ContactService) Get(ctx context.Context, id string) (*domain.ContactMessage, error) {
	msg, err := s.messages.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if msg.Status == domain.ContactMessageStatusNew {
		if err := s.messages.UpdateStatus(ctx, msg.ID, domain.ContactMessageStatusRead); err != nil {
			return nil, err
		}
		msg.Status = domain.ContactMessageStatusRead
	}
	return msg, nil
}

// Reply emails the sender and only then flags the message as answered, so a
// failed send never shows up as handled.
func (s *ContactService) Reply(ctx context.Context, id, content string) (*domain.ContactMessage, error) {
	if strings.TrimSpace(content) == "" {
		return nil, apperrors.NewValidationError("reply content is required", nil)
	}
	msg, err := s.messages.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	email := notify.Email{
		To:       msg.Email,
		Subject:  fmt.Sprintf("Re: %s", msg.Subject),
		Body:     contactReplyBody(msg.FullName, content),
		FromName: s.fromName,
	}
	if err := s.mailer.Send(ctx, email); err != nil {
		return nil, &apperrors.DomainError{
			Code:       "NOTIFICATION_FAILED",
			Message:    "failed to send reply email",
			HTTPStatus: http.StatusBadGateway,
			Err:        err,
		}
	}

	if err := s.messages.UpdateStatus(ctx, msg.ID, domain.ContactMessageStatusReplied); err != nil {
		return nil, apperrors.NewPartiallyApplied("reply sent but message status not updated", map[string]any{
			"message_id": msg.ID,
		}, err)
	}
	msg.Status = domain.ContactMessageStatusReplied
	return msg, nil
}

func (s *ContactService) Delete(ctx context.Context, id string) error {
	return s.messages.Delete(ctx, id)
}

func contactReplyBody(fullName, content string) string {
	return fmt.Sprintf(
		"Bonjour %s,<br><br>Merci de nous avoir contactés. Voici notre réponse :<br><br>"+
			"<pre style=\"font-family: inherit; white-space: pre-wrap;\">%s</pre><br><br>"+
			"Cordialement,<br>L'équipe Senbim Immo.",
		fullName, content)
}
