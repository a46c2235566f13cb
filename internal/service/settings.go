package service

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"github.com/Behyna/sms-services/notifier/internal/config"
	"github.com/Behyna/sms-services/notifier/internal/model"
	"github.com/Behyna/sms-services/notifier/internal/repository"
	"github.com/Behyna/sms-services/notifier/pkg/smsprovider"
	"github.com/spf13/cast"
	"go.uber.org/zap"
)

const DefaultTimeout = 10 * time.Second

// maxTimeoutSeconds is the largest value that still fits in a time.Duration.
const maxTimeoutSeconds = float64(math.MaxInt64) / float64(time.Second)

// EffectiveSettings is what one recipient's send needs after applying override
// precedence.
type EffectiveSettings struct {
	BaseURL     string
	Timeout     time.Duration
	Credentials smsprovider.Credentials
}

type SettingsResolver interface {
	Resolve(ctx context.Context, from, to string) (EffectiveSettings, error)
}

type settingsResolver struct {
	accounts repository.AccountRepository
	config   config.ProcessConfig
	logger   *zap.Logger
}

func NewSettingsResolver(accounts repository.AccountRepository, cfg config.ProcessConfig,
	logger *zap.Logger) SettingsResolver {
	return &settingsResolver{accounts: accounts, config: cfg, logger: logger}
}

// Resolve reads the provider account on every call; nothing is cached.
func (r *settingsResolver) Resolve(ctx context.Context, from, to string) (EffectiveSettings, error) {
	account, err := r.accounts.GetByProvider(ctx, model.ProviderTwilio)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return EffectiveSettings{}, newRecipientError(ErrCodeNotEnabled, to, ErrNotEnabled)
		}

		r.logger.Error("Failed to load provider account",
			zap.Error(err),
			zap.String("provider", model.ProviderTwilio))
		return EffectiveSettings{}, newRecipientError(ErrCodeAccountLookupFailed, to, ErrAccountLookup)
	}

	if account == nil || !account.Enabled {
		return EffectiveSettings{}, newRecipientError(ErrCodeNotEnabled, to, ErrNotEnabled)
	}

	if account.AccountID == "" || account.AuthSecret == "" {
		return EffectiveSettings{}, newRecipientError(ErrCodeMissingCredential, to, ErrMissingCredential)
	}

	if from == "" {
		return EffectiveSettings{}, newRecipientError(ErrCodeMissingSender, to, ErrMissingSender)
	}

	if to == "" {
		return EffectiveSettings{}, newRecipientError(ErrCodeMissingRecipient, to, ErrMissingRecipient)
	}

	return EffectiveSettings{
		BaseURL: r.baseURL(account),
		Timeout: r.timeout(),
		Credentials: smsprovider.Credentials{
			AccountID:  account.AccountID,
			AuthSecret: account.AuthSecret,
		},
	}, nil
}

// baseURL prefers the account override, then process config, then the default.
func (r *settingsResolver) baseURL(account *model.ProviderAccount) string {
	baseURL := smsprovider.DefaultBaseURL

	if account.BaseURL != nil && *account.BaseURL != "" {
		baseURL = *account.BaseURL
	} else if value, ok := r.config.Get(config.KeyTwilioBaseURL); ok {
		if s := cast.ToString(value); s != "" {
			baseURL = s
		}
	}

	return strings.TrimRight(baseURL, "/")
}

func (r *settingsResolver) timeout() time.Duration {
	value, ok := r.config.Get(config.KeyTwilioSendTimeoutSeconds)
	if !ok {
		return DefaultTimeout
	}

	seconds, err := cast.ToFloat64E(value)
	if err != nil || math.IsNaN(seconds) || seconds <= 0 || seconds >= maxTimeoutSeconds {
		r.logger.Warn("Ignoring invalid send timeout",
			zap.Any("value", value),
			zap.Duration("default", DefaultTimeout))
		return DefaultTimeout
	}

	return time.Duration(seconds * float64(time.Second))
}
