package v1

import (
	"github.com/Behyna/sms-services/notifier/internal/api/validator"
	"github.com/Behyna/sms-services/notifier/internal/constants"
	"github.com/Behyna/sms-services/notifier/internal/model"
	"github.com/Behyna/sms-services/notifier/internal/service"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type Handler struct {
	logger    *zap.Logger
	service   service.SenderService
	validator validator.IXValidator
}

func NewHandler(logger *zap.Logger, service service.SenderService, validator validator.IXValidator) *Handler {
	return &Handler{logger: logger, service: service, validator: validator}
}

func (h *Handler) Pong(c *fiber.Ctx) error {
	return c.SendString("pong")
}

func (h *Handler) Message(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var request SendMessageRequest
	if err := c.BodyParser(&request); err != nil {
		h.logger.Warn("Failed to parse body", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"code":    constants.ErrCodeInvalidRequestBody,
			"message": constants.GetErrorMessage(constants.ErrCodeInvalidRequestBody),
		})
	}

	if errs := h.validator.Validate(request); len(errs) > 0 {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(ValidationErrorResponse{
			Code:    constants.ErrCodeValidationFailed,
			Message: constants.GetErrorMessage(constants.ErrCodeValidationFailed),
			Errors:  errs,
		})
	}

	msg := model.OutboundMessage{Body: request.Text, To: request.To, From: request.From}

	if request.Mode == ModeBestEffort {
		return h.sendEach(c, msg)
	}

	if err := h.service.Send(ctx, msg); err != nil {
		h.logger.Error("Failed to send message",
			zap.Error(err),
			zap.String("from", request.From),
			zap.Int("recipients", len(request.To)))
		return err
	}

	results := make([]RecipientResponse, 0, len(msg.To))
	for _, to := range msg.To {
		results = append(results, RecipientResponse{To: to, Status: StatusSent})
	}

	h.logger.Info("Message sent",
		zap.String("from", request.From),
		zap.Int("recipients", len(request.To)))

	return c.Status(fiber.StatusOK).JSON(SendMessageResponse{Status: StatusSent, Results: results})
}

func (h *Handler) sendEach(c *fiber.Ctx, msg model.OutboundMessage) error {
	outcomes, err := h.service.SendEach(c.UserContext(), msg)
	if err != nil {
		return err
	}

	failed := 0
	results := make([]RecipientResponse, 0, len(outcomes))
	for _, outcome := range outcomes {
		if outcome.Err != nil {
			failed++
			results = append(results, RecipientResponse{
				To:     outcome.Recipient,
				Status: StatusFailed,
				Code:   service.ErrorCode(outcome.Err),
			})
			continue
		}
		results = append(results, RecipientResponse{To: outcome.Recipient, Status: StatusSent})
	}

	status := StatusSent
	switch {
	case failed == len(outcomes):
		status = StatusFailed
	case failed > 0:
		status = StatusPartial
	}

	h.logger.Info("Message dispatched",
		zap.String("status", status),
		zap.Int("recipients", len(outcomes)),
		zap.Int("failed", failed))

	return c.Status(fiber.StatusOK).JSON(SendMessageResponse{Status: status, Results: results})
}
