package constants

const (
	ErrCodeNoRecipients        = "NO_RECIPIENTS"
	ErrCodeNotEnabled          = "NOT_ENABLED"
	ErrCodeMissingCredential   = "MISSING_CREDENTIAL"
	ErrCodeMissingSender       = "MISSING_SENDER"
	ErrCodeMissingRecipient    = "MISSING_RECIPIENT"
	ErrCodeAccountLookupFailed = "ACCOUNT_LOOKUP_FAILED"
	ErrCodeTimeout             = "TIMEOUT"
	ErrCodeGatewayError        = "GATEWAY_ERROR"
	ErrCodeNetworkError        = "NETWORK_ERROR"
	ErrCodeInternalError       = "INTERNAL_ERROR"
	ErrCodeInvalidRequestBody  = "INVALID_REQUEST_BODY"
	ErrCodeValidationFailed    = "VALIDATION_FAILED"
)

const (
	ErrMsgNoRecipients        = "message has no recipients"
	ErrMsgNotEnabled          = "sms provider is not enabled"
	ErrMsgMissingCredential   = "sms provider credentials are incomplete"
	ErrMsgMissingSender       = "sender number is required"
	ErrMsgMissingRecipient    = "recipient number is empty"
	ErrMsgAccountLookupFailed = "could not load sms provider account"
	ErrMsgTimeout             = "sms gateway timed out"
	ErrMsgGatewayError        = "sms gateway rejected the message"
	ErrMsgNetworkError        = "sms gateway is unreachable"
	ErrMsgInternalError       = "Internal server error"
	ErrMsgInvalidRequestBody  = "failed to parse request body"
	ErrMsgValidationFailed    = "request validation failed"
)

var errorMessages = map[string]string{
	ErrCodeNoRecipients:        ErrMsgNoRecipients,
	ErrCodeNotEnabled:          ErrMsgNotEnabled,
	ErrCodeMissingCredential:   ErrMsgMissingCredential,
	ErrCodeMissingSender:       ErrMsgMissingSender,
	ErrCodeMissingRecipient:    ErrMsgMissingRecipient,
	ErrCodeAccountLookupFailed: ErrMsgAccountLookupFailed,
	ErrCodeTimeout:             ErrMsgTimeout,
	ErrCodeGatewayError:        ErrMsgGatewayError,
	ErrCodeNetworkError:        ErrMsgNetworkError,
	ErrCodeInternalError:       ErrMsgInternalError,
	ErrCodeInvalidRequestBody:  ErrMsgInvalidRequestBody,
	ErrCodeValidationFailed:    ErrMsgValidationFailed,
}

func GetErrorMessage(code string) string {
	if msg, exists := errorMessages[code]; exists {
		return msg
	}
	return ErrMsgInternalError
}

func GetHTTPStatus(code string) int {
	switch code {
	case ErrCodeInvalidRequestBody, ErrCodeNoRecipients, ErrCodeMissingSender, ErrCodeMissingRecipient:
		return 400
	case ErrCodeValidationFailed:
		return 422
	case ErrCodeGatewayError, ErrCodeNetworkError:
		return 502
	case ErrCodeNotEnabled, ErrCodeMissingCredential:
		return 503
	case ErrCodeTimeout:
		return 504
	default:
		return 500
	}
}
