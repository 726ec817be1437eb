package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/staffing-service/internal/config"
	"github.com/spec-kit/staffing-service/internal/events"
)

// NotificationService handles emitting notifications for domain events.
// Delivery is stubbed: the service logs what would be sent.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	cfg        config.NotificationConfig
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger, cfg config.NotificationConfig) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		logger:     logger,
		cfg:        cfg,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventStaffRegistered, n.handleStaffRegistered)
	n.dispatcher.Subscribe(events.EventEmailVerified, n.handleEmailVerified)
	n.dispatcher.Subscribe(events.EventProfileCompleted, n.handleProfileCompleted)
	n.dispatcher.Subscribe(events.EventCheckInRecorded, n.handleCheckInRecorded)
}

func (n *NotificationService) handleStaffRegistered(ctx context.Context, event events.Event) error {
	n.logger.Info("StaffRegistered", zap.String("user_id", event.UserID))
	n.sendEmailNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleEmailVerified(ctx context.Context, event events.Event) error {
	n.logger.Info("EmailVerified", zap.String("user_id", event.UserID))
	return nil
}

func (n *NotificationService) handleProfileCompleted(ctx context.Context, event events.Event) error {
	n.logger.Info("ProfileCompleted", zap.String("user_id", event.UserID), zap.Any("payload", event.Payload))
	n.sendEmailNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleCheckInRecorded(ctx context.Context, event events.Event) error {
	n.logger.Info("CheckInRecorded", zap.String("user_id", event.UserID), zap.Any("payload", event.Payload))
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) sendEmailNotificationStub(_ context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.EmailFrom) == "" {
		return
	}
	n.logger.Debug("sendEmailNotificationStub",
		zap.String("from", n.cfg.EmailFrom),
		zap.String("user_id", event.UserID),
		zap.String("event_type", string(event.Type)))
}

func (n *NotificationService) sendWebhookNotificationStub(_ context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.WebhookURL) == "" {
		return
	}
	n.logger.Debug("sendWebhookNotificationStub",
		zap.String("url", n.cfg.WebhookURL),
		zap.String("user_id", event.UserID),
		zap.String("event_type", string(event.Type)))
}
