package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/senbim-immo/admin-service/internal/events"
)

// NotificationService turns domain events into an administrative audit trail.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger) *NotificationService {
	return &NotificationService{dispatcher: dispatcher, logger: logger}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventListingCreated, n.handleListingCreated)
	n.dispatcher.Subscribe(events.EventListingStatusChanged, n.handleListingStatusChanged)
	n.dispatcher.Subscribe(events.EventReportResolved, n.handleReportResolved)
	n.dispatcher.Subscribe(events.EventConversationBlocked, n.handleConversationBlocked)
	n.dispatcher.Subscribe(events.EventUserSuspended, n.handleUserSuspended)
	n.dispatcher.Subscribe(events.EventTicketReplied, n.handleTicketReplied)
}

func (n *NotificationService) handleListingCreated(_ context.Context, event events.Event) error {
	n.logger.Info("ListingCreated", zap.String("listing_id", event.EntityID), zap.Any("payload", event.Payload))
	return nil
}

func (n *NotificationService) handleListingStatusChanged(_ context.Context, event events.Event) error {
	n.logger.Info("ListingStatusChanged",
		zap.String("listing_id", event.EntityID),
		zap.String("admin", event.AdminEmail),
		zap.Any("payload", event.Payload))
	return nil
}

func (n *NotificationService) handleReportResolved(_ context.Context, event events.Event) error {
	n.logger.Info("ReportResolved",
		zap.String("report_id", event.EntityID),
		zap.String("admin", event.AdminEmail),
		zap.Any("payload", event.Payload))
	return nil
}

func (n *NotificationService) handleConversationBlocked(_ context.Context, event events.Event) error {
	n.logger.Info("ConversationBlocked",
		zap.String("conversation_id", event.EntityID),
		zap.String("admin", event.AdminEmail))
	return nil
}

func (n *NotificationService) handleUserSuspended(_ context.Context, event events.Event) error {
	n.logger.Info("UserSuspended",
		zap.String("user_id", event.EntityID),
		zap.String("admin", event.AdminEmail),
		zap.Any("payload", event.Payload))
	return nil
}

func (n *NotificationService) handleTicketReplied(_ context.Context, event events.Event) error {
	n.logger.Info("TicketReplied",
		zap.String("ticket_id", event.EntityID),
		zap.String("admin", event.AdminEmail),
		zap.Any("payload", event.Payload))
	return nil
}
