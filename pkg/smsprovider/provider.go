package smsprovider

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"time"

	"github.com/Behyna/sms-services/notifier/pkg/httpclient"
	"go.uber.org/zap"
)

const maxBodyBytes = 64 * 1024

type Provider interface {
	Send(ctx context.Context, req Request, timeout time.Duration) error
}

type SMSProvider struct {
	newClient httpclient.Factory
	logger    *zap.Logger
}

func NewSMSProvider(newClient httpclient.Factory, logger *zap.Logger) Provider {
	return &SMSProvider{newClient: newClient, logger: logger}
}

// Send posts req with timeout bounding both connect and the whole exchange.
// The client is released on every return path.
func (s *SMSProvider) Send(ctx context.Context, req Request, timeout time.Duration) error {
	client := s.newClient(timeout)
	defer client.Close()

	resp, err := client.Post(ctx, req.URL, bytes.NewBufferString(req.Body), req.Headers)
	if err != nil {
		if isTimeout(err) {
			return ErrTimeout
		}

		s.logger.Warn("Gateway request failed", zap.Error(err), zap.String("url", req.URL))
		return fmt.Errorf("%w: %w", ErrTransport, err)
	}

	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		if isTimeout(err) {
			return ErrTimeout
		}

		s.logger.Debug("Failed to read gateway response body",
			zap.Error(err),
			zap.Int("statusCode", resp.StatusCode))
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	message, ok := errorMessage(body)
	if ok {
		s.logger.Error("Gateway rejected message",
			zap.Int("statusCode", resp.StatusCode),
			zap.String("message", message))
	}

	return &GatewayError{StatusCode: resp.StatusCode, Message: message}
}

// errorMessage reads the optional string field "message" of a JSON body.
// A body that is not JSON is treated the same as one without the field.
func errorMessage(body []byte) (string, bool) {
	var payload struct {
		Message *string `json:"message"`
	}

	if err := json.Unmarshal(body, &payload); err != nil || payload.Message == nil {
		return "", false
	}

	return *payload.Message, true
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
