package mocks

import (
	"context"
	"time"

	"github.com/Behyna/sms-services/notifier/pkg/smsprovider"
	"github.com/stretchr/testify/mock"
)

type Provider struct {
	mock.Mock
}

func (p *Provider) Send(ctx context.Context, req smsprovider.Request, timeout time.Duration) error {
	args := p.Called(ctx, req, timeout)
	return args.Error(0)
}
