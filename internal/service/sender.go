package service

import (
	"context"
	"time"

	"github.com/Behyna/sms-services/notifier/internal/metrics"
	"github.com/Behyna/sms-services/notifier/internal/model"
	"github.com/Behyna/sms-services/notifier/pkg/smsprovider"
	"go.uber.org/zap"
)

type SenderService interface {
	// Send delivers msg to every recipient in order and stops at the first
	// failure. Recipients after the failing one are never attempted.
	Send(ctx context.Context, msg model.OutboundMessage) error
	// SendEach attempts every recipient and reports each outcome. The error is
	// non-nil only when msg has no recipients.
	SendEach(ctx context.Context, msg model.OutboundMessage) ([]RecipientResult, error)
}

type RecipientResult struct {
	Recipient string
	Err       error
}

type sender struct {
	resolver SettingsResolver
	provider smsprovider.Provider
	metrics  *metrics.Metrics
	logger   *zap.Logger
}

func NewSenderService(resolver SettingsResolver, provider smsprovider.Provider, metrics *metrics.Metrics,
	logger *zap.Logger) SenderService {
	return &sender{resolver: resolver, provider: provider, metrics: metrics, logger: logger}
}

func (s *sender) Send(ctx context.Context, msg model.OutboundMessage) error {
	if len(msg.To) == 0 {
		s.metrics.RecordDispatch(ErrCodeNoRecipients)
		return NewServiceError(ErrCodeNoRecipients, ErrNoRecipients)
	}

	for i, to := range msg.To {
		if err := s.sendOne(ctx, msg, to); err != nil {
			if remaining := len(msg.To) - i - 1; remaining > 0 {
				s.logger.Warn("Aborting remaining recipients",
					zap.String("failedRecipient", to),
					zap.Int("skipped", remaining),
					zap.Error(err))
			}
			return err
		}
	}

	return nil
}

func (s *sender) SendEach(ctx context.Context, msg model.OutboundMessage) ([]RecipientResult, error) {
	if len(msg.To) == 0 {
		s.metrics.RecordDispatch(ErrCodeNoRecipients)
		return nil, NewServiceError(ErrCodeNoRecipients, ErrNoRecipients)
	}

	results := make([]RecipientResult, 0, len(msg.To))
	for _, to := range msg.To {
		results = append(results, RecipientResult{Recipient: to, Err: s.sendOne(ctx, msg, to)})
	}

	return results, nil
}

func (s *sender) sendOne(ctx context.Context, msg model.OutboundMessage, to string) error {
	settings, err := s.resolver.Resolve(ctx, msg.From, to)
	if err != nil {
		s.logger.Debug("Send settings not resolved",
			zap.String("to", to),
			zap.String("code", ErrorCode(err)),
			zap.Error(err))
		s.metrics.RecordDispatch(ErrorCode(err))
		return err
	}

	req := smsprovider.BuildRequest(settings.BaseURL, settings.Credentials, smsprovider.Message{
		From: msg.From,
		To:   to,
		Text: msg.Body,
	})

	start := time.Now()
	err = s.provider.Send(ctx, req, settings.Timeout)
	duration := time.Since(start)

	if err != nil {
		code := providerErrorCode(err)
		s.metrics.RecordGatewayCall(code, duration)
		s.metrics.RecordDispatch(code)

		s.logger.Warn("SMS send failed",
			zap.String("to", to),
			zap.String("code", code),
			zap.Duration("duration", duration),
			zap.Error(err))
		return newRecipientError(code, to, err)
	}

	s.metrics.RecordGatewayCall(metrics.OutcomeSuccess, duration)
	s.metrics.RecordDispatch(metrics.OutcomeSuccess)

	s.logger.Info("SMS sent successfully",
		zap.String("to", to),
		zap.Duration("duration", duration))

	return nil
}
