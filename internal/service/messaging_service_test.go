package service

import (
	"context"
	"errors"
	"testing"

	"github.com/senbim-immo/admin-service/internal/domain"
	apperrors "github.com/senbim-immo/admin-service/pkg/util"
)

func seedConversation(repo *fakeConversationRepo) *domain.Conversation {
	conv := &domain.Conversation{
		ID:                "c1",
		Participant1Email: "alice@example.sn",
		Participant2Email: "bob@example.sn",
		Status:            domain.ConversationStatusActive,
	}
	repo.add(conv)
	return conv
}

func TestMessagingBlockSetsStatusAndFlag(t *testing.T) {
	conversations := newFakeConversationRepo()
	svc := NewMessagingService(conversations, newFakeMessageRepo(), newFakeUserRepo(), nil)
	seedConversation(conversations)

	conv, err := svc.Block(context.Background(), "admin@senbim.sn", "c1")
	if err != nil {
		t.Fatalf("Block returned error: %v", err)
	}
	if conv.Status != domain.ConversationStatusBlocked {
		t.Errorf("status = %q, want bloquée", conv.Status)
	}
	if !conv.BlockedByAdmin {
		t.Error("blocked_by_admin must be set together with the status")
	}

	stored, _ := conversations.GetByID(context.Background(), "c1")
	if stored.Status != domain.ConversationStatusBlocked || !stored.BlockedByAdmin {
		t.Error("both fields must be persisted in one update")
	}
}

func TestMessagingBlockAlreadyBlockedIsNoOp(t *testing.T) {
	conversations := newFakeConversationRepo()
	svc := NewMessagingService(conversations, newFakeMessageRepo(), newFakeUserRepo(), nil)
	conversations.add(&domain.Conversation{
		ID:                "c1",
		Participant1Email: "alice@example.sn",
		Participant2Email: "bob@example.sn",
		Status:            domain.ConversationStatusBlocked,
		BlockedByAdmin:    true,
	})
	conversations.updateErr = errors.New("should not be called")

	if _, err := svc.Block(context.Background(), "admin@senbim.sn", "c1"); err != nil {
		t.Errorf("blocking an already blocked conversation should be a no-op, got %v", err)
	}
}

func TestMessagingSuspendParticipant(t *testing.T) {
	conversations := newFakeConversationRepo()
	users := newFakeUserRepo()
	svc := NewMessagingService(conversations, newFakeMessageRepo(), users, nil)
	seedConversation(conversations)
	users.add(&domain.User{ID: "u1", Email: "alice@example.sn", AccountStatus: domain.AccountStatusActive})

	user, err := svc.SuspendParticipant(context.Background(), "admin@senbim.sn", "c1", "alice@example.sn")
	if err != nil {
		t.Fatalf("SuspendParticipant returned error: %v", err)
	}
	if user.AccountStatus != domain.AccountStatusSuspended {
		t.Errorf("account status = %q, want suspendu", user.AccountStatus)
	}

	// The conversation itself stays untouched.
	conv, _ := conversations.GetByID(context.Background(), "c1")
	if conv.Status != domain.ConversationStatusActive {
		t.Errorf("conversation status = %q, suspension must not cascade", conv.Status)
	}
}

func TestMessagingSuspendParticipantRejectsOutsider(t *testing.T) {
	conversations := newFakeConversationRepo()
	users := newFakeUserRepo()
	svc := NewMessagingService(conversations, newFakeMessageRepo(), users, nil)
	seedConversation(conversations)
	users.add(&domain.User{ID: "u2", Email: "mallory@example.sn", AccountStatus: domain.AccountStatusActive})

	_, err := svc.SuspendParticipant(context.Background(), "admin@senbim.sn", "c1", "mallory@example.sn")
	var domainErr *apperrors.DomainError
	if !errors.As(err, &domainErr) || domainErr.Code != "VALIDATION_FAILED" {
		t.Errorf("expected VALIDATION_FAILED for non-participant, got %v", err)
	}
}

func TestMessagingConversationMessagesRequiresConversation(t *testing.T) {
	svc := NewMessagingService(newFakeConversationRepo(), newFakeMessageRepo(), newFakeUserRepo(), nil)

	if _, err := svc.ConversationMessages(context.Background(), "missing"); err == nil {
		t.Error("expected error for unknown conversation")
	}
}
