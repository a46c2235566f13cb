package v1

import "github.com/Behyna/sms-services/notifier/internal/api/validator"

const (
	StatusSent    = "SENT"
	StatusPartial = "PARTIAL"
	StatusFailed  = "FAILED"
)

type SendMessageResponse struct {
	Status  string              `json:"status"`
	Results []RecipientResponse `json:"results"`
}

type RecipientResponse struct {
	To     string `json:"to"`
	Status string `json:"status"`
	Code   string `json:"code,omitempty"`
}

type ValidationErrorResponse struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Errors  []validator.Error `json:"errors"`
}
