package bootstrap

import (
	"github.com/spf13/viper"
)

type Config struct {
	ServerPort       string  `mapstructure:"SERVER_PORT"`
	RedisUrl         string  `mapstructure:"REDIS_URL"`
	MongoUri         string  `mapstructure:"MONGO_URI"`
	IsLocalCors      bool    `mapstructure:"LOCAL_CORS"`
	DefaultBoardSize int     `mapstructure:"DEFAULT_BOARD_SIZE"`
	DefaultKomi      float64 `mapstructure:"DEFAULT_KOMI"`
}

func Setup(cfgPath string) (*Config, error) {
	viper.SetConfigFile(cfgPath)

	err := viper.ReadInConfig()
	if err != nil {
		return nil, err
	}

	var cfg Config

	err = viper.Unmarshal(&cfg)
	if err != nil {
		return nil, err
	}

	return &cfg, nil
}
