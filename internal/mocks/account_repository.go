package mocks

import (
	"context"

	"github.com/Behyna/sms-services/notifier/internal/model"
	"github.com/stretchr/testify/mock"
)

type AccountRepository struct {
	mock.Mock
}

func (m *AccountRepository) GetByProvider(ctx context.Context, provider string) (*model.ProviderAccount, error) {
	args := m.Called(ctx, provider)
	return args.Get(0).(*model.ProviderAccount), args.Error(1)
}
