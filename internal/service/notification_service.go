package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/amarjeet-choudhary666/htwo-freelance-project/internal/config"
	"github.com/amarjeet-choudhary666/htwo-freelance-project/internal/events"
)

// NotificationService handles emitting notifications for domain events.
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
	n.dispatcher.Subscribe(events.EventSubmissionReceived, n.handleSubmissionReceived)
	n.dispatcher.Subscribe(events.EventPartnerCreated, n.handlePartnerCreated)
	n.dispatcher.Subscribe(events.EventPartnerStatusChanged, n.handlePartnerStatusChanged)
}

func (n *NotificationService) handleSubmissionReceived(ctx context.Context, event events.Event) error {
	n.logger.Info("SubmissionReceived", zap.Int64("submission_id", event.EntityID), zap.Any("payload", event.Payload))
	n.sendEmailNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handlePartnerCreated(ctx context.Context, event events.Event) error {
	n.logger.Info("PartnerCreated", zap.Int64("partner_id", event.EntityID), zap.Any("payload", event.Payload))
	n.sendEmailNotificationStub(ctx, event)
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handlePartnerStatusChanged(ctx context.Context, event events.Event) error {
	n.logger.Info("PartnerStatusChanged", zap.Int64("partner_id", event.EntityID), zap.Any("payload", event.Payload))
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) sendEmailNotificationStub(ctx context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.EmailFrom) == "" {
		return
	}
	n.logger.Debug("sendEmailNotificationStub",
		zap.String("from", n.cfg.EmailFrom),
		zap.Int64("entity_id", event.EntityID),
		zap.String("event_type", string(event.Type)))
}

func (n *NotificationService) sendWebhookNotificationStub(ctx context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.WebhookURL) == "" {
		return
	}
	n.logger.Debug("sendWebhookNotificationStub",
		zap.String("url", n.cfg.WebhookURL),
		zap.Int64("entity_id", event.EntityID),
		zap.String("event_type", string(event.Type)))
}
