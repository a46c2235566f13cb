package v1

const (
	ModeFailFast   = "fail_fast"
	ModeBestEffort = "best_effort"
)

type SendMessageRequest struct {
	From string   `json:"from" validate:"omitempty,phone"`
	To   []string `json:"to" validate:"dive,phone"`
	Text string   `json:"text" validate:"required"`
	Mode string   `json:"mode" validate:"omitempty,oneof=fail_fast best_effort"`
}
