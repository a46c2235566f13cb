package model

import "time"

const ProviderTwilio = "Twilio"

type ProviderAccount struct {
	ID         int64     `gorm:"primaryKey;autoIncrement;column:id;<-:create"`
	Provider   string    `gorm:"column:provider;type:varchar(64);uniqueIndex"`
	Enabled    bool      `gorm:"column:enabled"`
	AccountID  string    `gorm:"column:account_id"`
	AuthSecret string    `gorm:"column:auth_secret"`
	BaseURL    *string   `gorm:"column:base_url"`
	CreatedAt  time.Time `gorm:"column:created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at"`
}

func (ProviderAccount) TableName() string {
	return "provider_accounts"
}
