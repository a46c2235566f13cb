package config

import "github.com/spf13/viper"

// ProcessConfig exposes raw process-level settings by key.
type ProcessConfig interface {
	Get(key string) (any, bool)
}

type viperConfig struct {
	v *viper.Viper
}

func NewProcessConfig() ProcessConfig {
	return NewViperProcessConfig(viper.GetViper())
}

func NewViperProcessConfig(v *viper.Viper) ProcessConfig {
	return &viperConfig{v: v}
}

func (c *viperConfig) Get(key string) (any, bool) {
	if !c.v.IsSet(key) {
		return nil, false
	}

	return c.v.Get(key), true
}
