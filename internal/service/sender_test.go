package service_test

import (
	"context"
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/Behyna/sms-services/notifier/internal/metrics"
	"github.com/Behyna/sms-services/notifier/internal/mocks"
	"github.com/Behyna/sms-services/notifier/internal/model"
	"github.com/Behyna/sms-services/notifier/internal/service"
	"github.com/Behyna/sms-services/notifier/pkg/smsprovider"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func requestTo(to string) interface{} {
	return mock.MatchedBy(func(req smsprovider.Request) bool {
		values, err := url.ParseQuery(req.Body)
		return err == nil && values.Get("To") == to
	})
}

func newSender(accounts *mocks.AccountRepository, provider *mocks.Provider, m *metrics.Metrics) service.SenderService {
	logger := zap.NewNop()
	resolver := service.NewSettingsResolver(accounts, emptyProcessConfig(), logger)
	return service.NewSenderService(resolver, provider, m, logger)
}

func TestSender_Send(t *testing.T) {
	ctx := context.Background()

	msg := model.OutboundMessage{
		Body: "Your code is 1234",
		From: "+1 (555) 123-4567",
		To:   []string{"555.987.6543", "(555) 000-1111"},
	}

	t.Run("sends to every recipient", func(t *testing.T) {
		accounts := &mocks.AccountRepository{}
		provider := &mocks.Provider{}
		m := metrics.NewMetrics(prometheus.NewRegistry())
		svc := newSender(accounts, provider, m)

		accounts.On("GetByProvider", ctx, model.ProviderTwilio).Return(enabledAccount(), nil)

		provider.On("Send", ctx, mock.MatchedBy(func(req smsprovider.Request) bool {
			values, err := url.ParseQuery(req.Body)
			return err == nil &&
				req.URL == "https://api.twilio.com/2010-04-01/Accounts/AC123/Messages.json" &&
				values.Get("From") == "+15551234567" &&
				values.Get("To") == "+5559876543" &&
				values.Get("Body") == "Your code is 1234"
		}), 10*time.Second).Return(nil).Once()
		provider.On("Send", ctx, requestTo("+5550001111"), 10*time.Second).Return(nil).Once()

		err := svc.Send(ctx, msg)

		assert.NoError(t, err)
		accounts.AssertNumberOfCalls(t, "GetByProvider", 2)
		provider.AssertExpectations(t)
		assert.Equal(t, float64(2), testutil.ToFloat64(m.DispatchTotal.WithLabelValues(metrics.OutcomeSuccess)))
	})

	t.Run("fails without recipients before any lookup", func(t *testing.T) {
		accounts := &mocks.AccountRepository{}
		provider := &mocks.Provider{}
		svc := newSender(accounts, provider, nil)

		err := svc.Send(ctx, model.OutboundMessage{Body: "hi", From: "1"})

		assert.ErrorIs(t, err, service.ErrNoRecipients)
		assert.Equal(t, service.ErrCodeNoRecipients, service.ErrorCode(err))
		accounts.AssertNotCalled(t, "GetByProvider", mock.Anything, mock.Anything)
		provider.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("fails when provider is disabled", func(t *testing.T) {
		accounts := &mocks.AccountRepository{}
		provider := &mocks.Provider{}
		svc := newSender(accounts, provider, nil)

		accounts.On("GetByProvider", ctx, model.ProviderTwilio).
			Return(&model.ProviderAccount{Enabled: false}, nil)

		err := svc.Send(ctx, msg)

		assert.ErrorIs(t, err, service.ErrNotEnabled)
		provider.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("surfaces gateway error with status", func(t *testing.T) {
		accounts := &mocks.AccountRepository{}
		provider := &mocks.Provider{}
		svc := newSender(accounts, provider, nil)

		accounts.On("GetByProvider", ctx, model.ProviderTwilio).Return(enabledAccount(), nil)
		provider.On("Send", ctx, requestTo("+5559876543"), 10*time.Second).
			Return(&smsprovider.GatewayError{StatusCode: 401, Message: "Authenticate"})

		err := svc.Send(ctx, msg)

		require.ErrorIs(t, err, smsprovider.ErrGateway)
		assert.Equal(t, service.ErrCodeGatewayError, service.ErrorCode(err))

		var gatewayErr *smsprovider.GatewayError
		require.True(t, errors.As(err, &gatewayErr))
		assert.Equal(t, 401, gatewayErr.StatusCode)

		var serviceErr service.Error
		require.True(t, errors.As(err, &serviceErr))
		assert.Equal(t, "555.987.6543", serviceErr.Recipient)
	})

	t.Run("surfaces timeout without gateway error", func(t *testing.T) {
		accounts := &mocks.AccountRepository{}
		provider := &mocks.Provider{}
		svc := newSender(accounts, provider, nil)

		accounts.On("GetByProvider", ctx, model.ProviderTwilio).Return(enabledAccount(), nil)
		provider.On("Send", ctx, mock.Anything, 10*time.Second).Return(smsprovider.ErrTimeout)

		err := svc.Send(ctx, msg)

		assert.ErrorIs(t, err, smsprovider.ErrTimeout)
		assert.NotErrorIs(t, err, smsprovider.ErrGateway)
		assert.Equal(t, service.ErrCodeTimeout, service.ErrorCode(err))
	})

	t.Run("surfaces network error", func(t *testing.T) {
		accounts := &mocks.AccountRepository{}
		provider := &mocks.Provider{}
		svc := newSender(accounts, provider, nil)

		accounts.On("GetByProvider", ctx, model.ProviderTwilio).Return(enabledAccount(), nil)
		provider.On("Send", ctx, mock.Anything, 10*time.Second).
			Return(errors.Join(smsprovider.ErrTransport, errors.New("connection reset")))

		err := svc.Send(ctx, msg)

		assert.ErrorIs(t, err, smsprovider.ErrTransport)
		assert.Equal(t, service.ErrCodeNetworkError, service.ErrorCode(err))
	})

	t.Run("aborts remaining recipients after configuration failure", func(t *testing.T) {
		accounts := &mocks.AccountRepository{}
		provider := &mocks.Provider{}
		svc := newSender(accounts, provider, nil)

		accounts.On("GetByProvider", ctx, model.ProviderTwilio).
			Return(&model.ProviderAccount{Enabled: true, AccountID: "AC123"}, nil)

		err := svc.Send(ctx, msg)

		assert.ErrorIs(t, err, service.ErrMissingCredential)
		accounts.AssertNumberOfCalls(t, "GetByProvider", 1)
		provider.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("aborts remaining recipients after gateway failure", func(t *testing.T) {
		accounts := &mocks.AccountRepository{}
		provider := &mocks.Provider{}
		m := metrics.NewMetrics(prometheus.NewRegistry())
		svc := newSender(accounts, provider, m)

		accounts.On("GetByProvider", ctx, model.ProviderTwilio).Return(enabledAccount(), nil)
		provider.On("Send", ctx, requestTo("+5559876543"), 10*time.Second).
			Return(&smsprovider.GatewayError{StatusCode: 500})

		err := svc.Send(ctx, msg)

		assert.ErrorIs(t, err, smsprovider.ErrGateway)
		accounts.AssertNumberOfCalls(t, "GetByProvider", 1)
		provider.AssertNumberOfCalls(t, "Send", 1)
		provider.AssertNotCalled(t, "Send", ctx, requestTo("+5550001111"), mock.Anything)
		assert.Equal(t, float64(1), testutil.ToFloat64(m.DispatchTotal.WithLabelValues(service.ErrCodeGatewayError)))
	})

	t.Run("fails on empty recipient entry", func(t *testing.T) {
		accounts := &mocks.AccountRepository{}
		provider := &mocks.Provider{}
		svc := newSender(accounts, provider, nil)

		accounts.On("GetByProvider", ctx, model.ProviderTwilio).Return(enabledAccount(), nil)

		err := svc.Send(ctx, model.OutboundMessage{Body: "hi", From: "1", To: []string{""}})

		assert.ErrorIs(t, err, service.ErrMissingRecipient)
		provider.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestSender_SendEach(t *testing.T) {
	ctx := context.Background()

	msg := model.OutboundMessage{
		Body: "hello",
		From: "+15551234567",
		To:   []string{"+1 555 000 0001", "", "+1 555 000 0003"},
	}

	t.Run("continues past failures", func(t *testing.T) {
		accounts := &mocks.AccountRepository{}
		provider := &mocks.Provider{}
		svc := newSender(accounts, provider, nil)

		accounts.On("GetByProvider", ctx, model.ProviderTwilio).Return(enabledAccount(), nil)
		provider.On("Send", ctx, requestTo("+15550000001"), 10*time.Second).
			Return(&smsprovider.GatewayError{StatusCode: 400})
		provider.On("Send", ctx, requestTo("+15550000003"), 10*time.Second).Return(nil)

		results, err := svc.SendEach(ctx, msg)

		require.NoError(t, err)
		require.Len(t, results, 3)

		assert.Equal(t, "+1 555 000 0001", results[0].Recipient)
		assert.ErrorIs(t, results[0].Err, smsprovider.ErrGateway)

		assert.Equal(t, "", results[1].Recipient)
		assert.ErrorIs(t, results[1].Err, service.ErrMissingRecipient)

		assert.Equal(t, "+1 555 000 0003", results[2].Recipient)
		assert.NoError(t, results[2].Err)

		accounts.AssertNumberOfCalls(t, "GetByProvider", 3)
		provider.AssertExpectations(t)
	})

	t.Run("fails without recipients", func(t *testing.T) {
		accounts := &mocks.AccountRepository{}
		provider := &mocks.Provider{}
		svc := newSender(accounts, provider, nil)

		results, err := svc.SendEach(ctx, model.OutboundMessage{Body: "hi", From: "1"})

		assert.ErrorIs(t, err, service.ErrNoRecipients)
		assert.Nil(t, results)
		accounts.AssertNotCalled(t, "GetByProvider", mock.Anything, mock.Anything)
	})
}
