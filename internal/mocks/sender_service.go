package mocks

import (
	"context"

	"github.com/Behyna/sms-services/notifier/internal/model"
	"github.com/Behyna/sms-services/notifier/internal/service"
	"github.com/stretchr/testify/mock"
)

type SenderService struct {
	mock.Mock
}

func (s *SenderService) Send(ctx context.Context, msg model.OutboundMessage) error {
	args := s.Called(ctx, msg)
	return args.Error(0)
}

func (s *SenderService) SendEach(ctx context.Context, msg model.OutboundMessage) ([]service.RecipientResult, error) {
	args := s.Called(ctx, msg)
	results, _ := args.Get(0).([]service.RecipientResult)
	return results, args.Error(1)
}
