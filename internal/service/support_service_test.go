package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/senbim-immo/admin-service/internal/domain"
	apperrors "github.com/senbim-immo/admin-service/pkg/util"
)

func seedTicket(repo *fakeTicketRepo, status domain.TicketStatus) *domain.Ticket {
	ticket := &domain.Ticket{
		ID:        "abcdef-123",
		UserEmail: "membre@example.sn",
		Subject:   "Probleme de paiement",
		Message:   "Mon paiement a échoué.",
		Priority:  domain.TicketPriorityMedium,
		Status:    status,
	}
	repo.add(ticket)
	return ticket
}

func TestSupportReplySendsThenRecords(t *testing.T) {
	tickets := newFakeTicketRepo()
	mailer := &fakeMailer{}
	svc := NewSupportService(tickets, mailer, "Senbim Immo - Support", nil)
	seedTicket(tickets, domain.TicketStatusOpen)

	before := time.Now()
	ticket, err := svc.Reply(context.Background(), "admin@senbim.sn", "abcdef-123", "Nous avons corrigé le problème.")
	if err != nil {
		t.Fatalf("Reply returned error: %v", err)
	}

	if len(mailer.sent) != 1 {
		t.Fatalf("expected one email, got %d", len(mailer.sent))
	}
	email := mailer.sent[0]
	if email.To != "membre@example.sn" {
		t.Errorf("email to = %q", email.To)
	}
	if email.Subject != "Re: [Ticket #abcde] Probleme de paiement" {
		t.Errorf("email subject = %q", email.Subject)
	}
	if !strings.Contains(email.Body, "Nous avons corrigé le problème.") {
		t.Error("email body should embed the reply content")
	}

	if len(ticket.Responses) != 1 {
		t.Fatalf("expected one recorded response, got %d", len(ticket.Responses))
	}
	if ticket.Responses[0].AuthorEmail != "admin@senbim.sn" {
		t.Errorf("response author = %q", ticket.Responses[0].AuthorEmail)
	}
	if ticket.Responses[0].Date.Before(before) {
		t.Errorf("response date %v predates the reply call at %v", ticket.Responses[0].Date, before)
	}
	if ticket.Status != domain.TicketStatusInProgress {
		t.Errorf("status = %q, want en cours", ticket.Status)
	}
}

func TestSupportReplyFailedSendLeavesTicketUnchanged(t *testing.T) {
	tickets := newFakeTicketRepo()
	mailer := &fakeMailer{sendErr: errors.New("relay down")}
	svc := NewSupportService(tickets, mailer, "Senbim Immo - Support", nil)
	seedTicket(tickets, domain.TicketStatusOpen)

	_, err := svc.Reply(context.Background(), "admin@senbim.sn", "abcdef-123", "Réponse perdue")
	var domainErr *apperrors.DomainError
	if !errors.As(err, &domainErr) || domainErr.Code != "NOTIFICATION_FAILED" {
		t.Fatalf("expected NOTIFICATION_FAILED, got %v", err)
	}

	stored, _ := tickets.GetByID(context.Background(), "abcdef-123")
	if len(stored.Responses) != 0 {
		t.Error("failed send must not record a response")
	}
	if stored.Status != domain.TicketStatusOpen {
		t.Errorf("status = %q, want ouvert", stored.Status)
	}
}

func TestSupportReplyPartialFailure(t *testing.T) {
	tickets := newFakeTicketRepo()
	mailer := &fakeMailer{}
	svc := NewSupportService(tickets, mailer, "Senbim Immo - Support", nil)
	seedTicket(tickets, domain.TicketStatusOpen)
	tickets.updateErr = errors.New("db down")

	_, err := svc.Reply(context.Background(), "admin@senbim.sn", "abcdef-123", "Réponse")
	if !apperrors.IsPartiallyApplied(err) {
		t.Fatalf("expected PARTIALLY_APPLIED when email went out but record failed, got %v", err)
	}
	if len(mailer.sent) != 1 {
		t.Errorf("email should have been sent before the persist attempt")
	}
}

func TestSupportReplyOnClosedTicketKeepsClosed(t *testing.T) {
	tickets := newFakeTicketRepo()
	mailer := &fakeMailer{}
	svc := NewSupportService(tickets, mailer, "Senbim Immo - Support", nil)
	seedTicket(tickets, domain.TicketStatusClosed)

	ticket, err := svc.Reply(context.Background(), "admin@senbim.sn", "abcdef-123", "Complément")
	if err != nil {
		t.Fatalf("Reply returned error: %v", err)
	}
	if ticket.Status != domain.TicketStatusClosed {
		t.Errorf("reply must not reopen a closed ticket, got %q", ticket.Status)
	}
}

func TestSupportReplyValidation(t *testing.T) {
	svc := NewSupportService(newFakeTicketRepo(), &fakeMailer{}, "Senbim Immo - Support", nil)

	if _, err := svc.Reply(context.Background(), "admin@senbim.sn", "abcdef-123", "   "); err == nil {
		t.Error("expected error for empty content")
	}
}

func TestSupportUpdateStatus(t *testing.T) {
	t.Run("closed ticket rejects changes", func(t *testing.T) {
		tickets := newFakeTicketRepo()
		svc := NewSupportService(tickets, &fakeMailer{}, "", nil)
		seedTicket(tickets, domain.TicketStatusClosed)

		_, err := svc.UpdateStatus(context.Background(), "abcdef-123", domain.TicketStatusOpen)
		var domainErr *apperrors.DomainError
		if !errors.As(err, &domainErr) || domainErr.Code != "CONFLICT" {
			t.Errorf("expected CONFLICT, got %v", err)
		}
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		tickets := newFakeTicketRepo()
		svc := NewSupportService(tickets, &fakeMailer{}, "", nil)
		seedTicket(tickets, domain.TicketStatusOpen)

		if _, err := svc.UpdateStatus(context.Background(), "abcdef-123", "inconnu"); err == nil {
			t.Error("expected error for unknown status")
		}
	})

	t.Run("close", func(t *testing.T) {
		tickets := newFakeTicketRepo()
		svc := NewSupportService(tickets, &fakeMailer{}, "", nil)
		seedTicket(tickets, domain.TicketStatusInProgress)

		ticket, err := svc.Close(context.Background(), "abcdef-123")
		if err != nil {
			t.Fatalf("Close returned error: %v", err)
		}
		if ticket.Status != domain.TicketStatusClosed {
			t.Errorf("status = %q, want fermé", ticket.Status)
		}
	})
}
