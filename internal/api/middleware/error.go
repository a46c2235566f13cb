package middleware

import (
	"errors"

	"github.com/Behyna/sms-services/notifier/internal/constants"
	"github.com/Behyna/sms-services/notifier/internal/service"
	"github.com/gofiber/fiber/v2"
)

type ErrorResponse struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	Recipient string `json:"recipient,omitempty"`
}

func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var serviceErr service.Error
		if errors.As(err, &serviceErr) {
			return handleServiceError(c, serviceErr)
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return c.Status(fiberErr.Code).JSON(ErrorResponse{
				Code:    constants.ErrCodeInternalError,
				Message: fiberErr.Message,
			})
		}

		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Code:    constants.ErrCodeInternalError,
			Message: constants.GetErrorMessage(constants.ErrCodeInternalError),
		})
	}
}

func handleServiceError(c *fiber.Ctx, err service.Error) error {
	errorCode := err.Code

	status := constants.GetHTTPStatus(errorCode)
	if status == 500 && errorCode != constants.ErrCodeAccountLookupFailed {
		errorCode = constants.ErrCodeInternalError
	}

	return c.Status(status).JSON(ErrorResponse{
		Code:      errorCode,
		Message:   constants.GetErrorMessage(errorCode),
		Recipient: err.Recipient,
	})
}
