package repository

import (
	"context"
	"errors"

	"github.com/Behyna/sms-services/notifier/internal/model"
	"gorm.io/gorm"
)

var ErrAccountNotFound = errors.New("ACCOUNT_NOT_FOUND")

type AccountRepository interface {
	GetByProvider(ctx context.Context, provider string) (*model.ProviderAccount, error)
}

type Account struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &Account{db: db}
}

func (a *Account) GetByProvider(ctx context.Context, provider string) (*model.ProviderAccount, error) {
	var account model.ProviderAccount

	err := a.db.WithContext(ctx).Where("provider = ?", provider).First(&account).Error
	if err == nil {
		return &account, nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrAccountNotFound
	}

	return nil, err
}
