package service

import (
	"errors"

	"github.com/Behyna/sms-services/notifier/pkg/smsprovider"
)

const (
	ErrCodeNoRecipients        = "NO_RECIPIENTS"
	ErrCodeNotEnabled          = "NOT_ENABLED"
	ErrCodeMissingCredential   = "MISSING_CREDENTIAL"
	ErrCodeMissingSender       = "MISSING_SENDER"
	ErrCodeMissingRecipient    = "MISSING_RECIPIENT"
	ErrCodeAccountLookupFailed = "ACCOUNT_LOOKUP_FAILED"
	ErrCodeTimeout             = smsprovider.ErrorCodeTimeout
	ErrCodeGatewayError        = smsprovider.ErrorCodeGatewayError
	ErrCodeNetworkError        = smsprovider.ErrorCodeNetworkError
)

var (
	ErrNoRecipients      = errors.New(ErrCodeNoRecipients)
	ErrNotEnabled        = errors.New(ErrCodeNotEnabled)
	ErrMissingCredential = errors.New(ErrCodeMissingCredential)
	ErrMissingSender     = errors.New(ErrCodeMissingSender)
	ErrMissingRecipient  = errors.New(ErrCodeMissingRecipient)
	ErrAccountLookup     = errors.New(ErrCodeAccountLookupFailed)
)

// Error is the classified failure returned by SenderService. Recipient is
// empty for failures that happen before any recipient is processed.
type Error struct {
	Code      string
	Recipient string
	Cause     error
}

func NewServiceError(code string, cause error) error {
	return Error{Code: code, Cause: cause}
}

func newRecipientError(code, recipient string, cause error) error {
	return Error{Code: code, Recipient: recipient, Cause: cause}
}

func (e Error) Error() string {
	return e.Cause.Error()
}

func (e Error) Unwrap() error {
	return e.Cause
}

// ErrorCode returns the classification code carried by err, or "" when err
// is not a service error.
func ErrorCode(err error) string {
	var serviceErr Error
	if errors.As(err, &serviceErr) {
		return serviceErr.Code
	}
	return ""
}

func providerErrorCode(err error) string {
	switch {
	case errors.Is(err, smsprovider.ErrTimeout):
		return ErrCodeTimeout
	case errors.Is(err, smsprovider.ErrGateway):
		return ErrCodeGatewayError
	default:
		return ErrCodeNetworkError
	}
}
