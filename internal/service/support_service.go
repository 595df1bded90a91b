package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/senbim-immo/admin-service/internal/domain"
	"github.com/senbim-immo/admin-service/internal/events"
	"github.com/senbim-immo/admin-service/internal/notify"
	"github.com/senbim-immo/admin-service/internal/repository"
	apperrors "github.com/senbim-immo/admin-service/pkg/util"
)

// SupportService handles the admin side of support tickets.
type SupportService struct {
	tickets    repository.TicketRepository
	mailer     notify.Mailer
	fromName   string
	dispatcher events.Dispatcher
}

// NewSupportService constructs the service.
func NewSupportService(tickets repository.TicketRepository, mailer notify.Mailer, fromName string, dispatcher events.Dispatcher) *SupportService {
	if fromName == "" {
		fromName = "Senbim Immo - Support"
	}
	return &SupportService{tickets: tickets, mailer: mailer, fromName: fromName, dispatcher: dispatcher}
}

// ListTickets returns the support queue.
func (s *SupportService) ListTickets(ctx context.Context, filter repository.TicketFilter) ([]domain.Ticket, error) {
	return s.tickets.List(ctx, filter)
}

// GetTicket returns one ticket with its response log.
func (s *SupportService) GetTicket(ctx context.Context, id string) (*domain.Ticket, error) {
	return s.tickets.GetByID(ctx, id)
}

// Reply sends the answer to the ticket owner and records it. The email is
// dispatched first; the response is appended and the ticket moved to
// "en cours" only after the send succeeds, so a failed notification leaves
// the ticket unchanged and the admin must retry.
func (s *SupportService) Reply(ctx context.Context, adminEmail, ticketID, content string) (*domain.Ticket, error) {
	if strings.TrimSpace(content) == "" {
		return nil, apperrors.NewValidationError("reply content required", nil)
	}

	ticket, err := s.tickets.GetByID(ctx, ticketID)
	if err != nil {
		return nil, err
	}

	email := notify.Email{
		To:       ticket.UserEmail,
		Subject:  fmt.Sprintf("Re: [Ticket #%s] %s", shortID(ticket.ID), ticket.Subject),
		Body:     replyBody(content),
		FromName: s.fromName,
	}
	if err := s.mailer.Send(ctx, email); err != nil {
		return nil, apperrors.NewDomainError("NOTIFICATION_FAILED", "reply email could not be sent; ticket unchanged", 502, map[string]any{
			"ticket_id": ticket.ID,
		})
	}

	ticket.Responses = append(ticket.Responses, domain.TicketResponse{
		Content:     content,
		AuthorEmail: adminEmail,
		Date:        time.Now(),
	})
	if ticket.Status != domain.TicketStatusClosed {
		ticket.Status = domain.TicketStatusInProgress
	}
	if err := s.tickets.Update(ctx, ticket); err != nil {
		return nil, apperrors.NewPartiallyApplied(
			"reply email sent but the response could not be recorded",
			map[string]any{"ticket_id": ticket.ID}, err)
	}

	s.publish(ctx, events.Event{
		Type:       events.EventTicketReplied,
		EntityID:   ticket.ID,
		AdminEmail: adminEmail,
		Payload: events.TicketRepliedPayload{
			UserEmail:   ticket.UserEmail,
			Subject:     ticket.Subject,
			NewStatus:   ticket.Status,
			BodyPreview: preview(content, 120),
		},
	})
	return ticket, nil
}

// UpdateStatus sets a ticket status directly (open/in-progress/closed).
// Closing is irreversible: a closed ticket accepts no further status change.
func (s *SupportService) UpdateStatus(ctx context.Context, ticketID string, next domain.TicketStatus) (*domain.Ticket, error) {
	switch next {
	case domain.TicketStatusOpen, domain.TicketStatusInProgress, domain.TicketStatusClosed:
	default:
		return nil, apperrors.NewValidationError("unknown ticket status", map[string]any{"status": next})
	}

	ticket, err := s.tickets.GetByID(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if ticket.Status == domain.TicketStatusClosed && next != domain.TicketStatusClosed {
		return nil, apperrors.NewConflict("ticket is closed", nil)
	}
	ticket.Status = next
	if err := s.tickets.Update(ctx, ticket); err != nil {
		return nil, err
	}
	return ticket, nil
}

// Close is a convenience for the explicit close action.
func (s *SupportService) Close(ctx context.Context, ticketID string) (*domain.Ticket, error) {
	return s.UpdateStatus(ctx, ticketID, domain.TicketStatusClosed)
}

func shortID(id string) string {
	if len(id) <= 5 {
		return id
	}
	return id[:5]
}

func replyBody(content string) string {
	return fmt.Sprintf(`Bonjour,
<br><br>
Voici une réponse concernant votre ticket :
<br><br>
<pre style="background-color: #f5f5f5; padding: 10px; border-radius: 5px;">%s</pre>
<br>
Cordialement,
<br>
L'équipe de support Senbim Immo.`, content)
}

func preview(body string, max int) string {
	body = strings.TrimSpace(body)
	if len(body) <= max {
		return body
	}
	if max <= 3 {
		return body[:max]
	}
	return body[:max-3] + "..."
}

func (s *SupportService) publish(ctx context.Context, event events.Event) {
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
