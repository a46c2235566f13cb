package mysql

import (
	"testing"

	"github.com/stretchr/testify/assert"
	gormLogger "gorm.io/gorm/logger"
)

func TestBuildDSN(t *testing.T) {
	cfg := Config{Host: "db", Port: "3306", User: "notifier", Password: "pw", Name: "accounts"}

	assert.Equal(t, "notifier:pw@tcp(db:3306)/accounts?charset=utf8mb4&parseTime=True&loc=UTC", buildDSN(cfg))
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, gormLogger.Silent, parseLogLevel("silent"))
	assert.Equal(t, gormLogger.Error, parseLogLevel("ERROR"))
	assert.Equal(t, gormLogger.Info, parseLogLevel("info"))
	assert.Equal(t, gormLogger.Warn, parseLogLevel(""))
}
