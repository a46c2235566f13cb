package database

import (
	"context"

	"github.com/Behyna/sms-services/notifier/internal/config"
	"github.com/Behyna/sms-services/notifier/pkg/mysql"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func NewConnection(cfg *config.Config, logger *zap.Logger) (*gorm.DB, error) {
	return mysql.NewConnection(context.Background(), cfg.Database, logger)
}
