package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/senbim-immo/admin-service/internal/domain"
	apperrors "github.com/senbim-immo/admin-service/pkg/util"
)

func seedContactMessage(repo *fakeContactRepo, status domain.ContactMessageStatus) *domain.ContactMessage {
	msg := &domain.ContactMessage{
		ID:       "msg-1",
		FullName: "Awa Ndiaye",
		Email:    "awa@example.sn",
		Subject:  "Question sur un abonnement",
		Message:  "Comment renouveler mon pack?",
		Status:   status,
	}
	repo.add(msg)
	return msg
}

func TestContactGetMarksNewAsRead(t *testing.T) {
	messages := newFakeContactRepo()
	svc := NewContactService(messages, &fakeMailer{}, "Senbim Immo")
	seedContactMessage(messages, domain.ContactMessageStatusNew)

	msg, err := svc.Get(context.Background(), "msg-1")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if msg.Status != domain.ContactMessageStatusRead {
		t.Errorf("returned status = %q, want lu", msg.Status)
	}
	stored, _ := messages.GetByID(context.Background(), "msg-1")
	if stored.Status != domain.ContactMessageStatusRead {
		t.Errorf("stored status = %q, want lu", stored.Status)
	}
}

func TestContactGetLeavesRepliedAlone(t *testing.T) {
	messages := newFakeContactRepo()
	svc := NewContactService(messages, &fakeMailer{}, "Senbim Immo")
	seedContactMessage(messages, domain.ContactMessageStatusReplied)

	msg, err := svc.Get(context.Background(), "msg-1")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if msg.Status != domain.ContactMessageStatusReplied {
		t.Errorf("status = %q, want répondu", msg.Status)
	}
}

func TestContactReplySendsThenFlags(t *testing.T) {
	messages := newFakeContactRepo()
	mailer := &fakeMailer{}
	svc := NewContactService(messages, mailer, "Senbim Immo")
	seedContactMessage(messages, domain.ContactMessageStatusRead)

	msg, err := svc.Reply(context.Background(), "msg-1", "Votre pack se renouvelle depuis votre espace.")
	if err != nil {
		t.Fatalf("Reply returned error: %v", err)
	}
	if msg.Status != domain.ContactMessageStatusReplied {
		t.Errorf("status = %q, want répondu", msg.Status)
	}
	if len(mailer.sent) != 1 {
		t.Fatalf("expected one email, got %d", len(mailer.sent))
	}
	email := mailer.sent[0]
	if email.To != "awa@example.sn" {
		t.Errorf("email to = %q", email.To)
	}
	if email.Subject != "Re: Question sur un abonnement" {
		t.Errorf("email subject = %q", email.Subject)
	}
	if !strings.Contains(email.Body, "Awa Ndiaye") {
		t.Error("email body should greet the sender by name")
	}
}

func TestContactReplyFailedSendLeavesStatus(t *testing.T) {
	messages := newFakeContactRepo()
	svc := NewContactService(messages, &fakeMailer{sendErr: errors.New("relay down")}, "Senbim Immo")
	seedContactMessage(messages, domain.ContactMessageStatusRead)

	_, err := svc.Reply(context.Background(), "msg-1", "Réponse perdue")
	var domainErr *apperrors.DomainError
	if !errors.As(err, &domainErr) || domainErr.Code != "NOTIFICATION_FAILED" {
		t.Fatalf("expected NOTIFICATION_FAILED, got %v", err)
	}
	stored, _ := messages.GetByID(context.Background(), "msg-1")
	if stored.Status != domain.ContactMessageStatusRead {
		t.Errorf("stored status = %q, want lu", stored.Status)
	}
}

func TestContactReplyPartialFailure(t *testing.T) {
	messages := newFakeContactRepo()
	mailer := &fakeMailer{}
	svc := NewContactService(messages, mailer, "Senbim Immo")
	seedContactMessage(messages, domain.ContactMessageStatusRead)
	messages.statusErr = errors.New("db down")

	_, err := svc.Reply(context.Background(), "msg-1", "Réponse")
	if !apperrors.IsPartiallyApplied(err) {
		t.Fatalf("expected PARTIALLY_APPLIED when email went out but flag failed, got %v", err)
	}
	if len(mailer.sent) != 1 {
		t.Error("email should have been sent before the status update")
	}
}
