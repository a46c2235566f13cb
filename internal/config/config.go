package config

import (
	"fmt"
	"strings"

	"github.com/Behyna/sms-services/notifier/pkg/mysql"
	"github.com/spf13/viper"
)

// Twilio overrides are read through ProcessConfig so that an unset key stays
// distinguishable from a zero value.
const (
	KeyTwilioBaseURL            = "twilio.base_url"
	KeyTwilioSendTimeoutSeconds = "twilio.send_timeout_seconds"
)

type Config struct {
	API      API          `mapstructure:"api"`
	Database mysql.Config `mapstructure:"database"`
}

type API struct {
	Port string `mapstructure:"port"`
}

func Load() (cfg *Config, err error) {
	return load(viper.GetViper())
}

func load(v *viper.Viper) (cfg *Config, err error) {
	v.SetConfigName("config")
	v.SetConfigType("yml")
	v.AddConfigPath("./config")
	v.SetEnvPrefix("SMS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	err = v.ReadInConfig()
	if err != nil {
		return cfg, fmt.Errorf("failed to load config: %w", err)
	}

	err = v.Unmarshal(&cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
