package config

import (
	"errors"
	"log"
	"sync"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/viper"
)

var (
	instance *Config
	once     sync.Once
)

// Init 加载配置：先读取 config.yaml，再用环境变量覆盖
// 环境变量优先级高于配置文件，便于容器化部署
func Init() {
	once.Do(func() {
		v := viper.New()
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")

		cfg := defaultConfig()

		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				log.Fatalf("读取配置文件失败: %v", err)
			}
			// 没有配置文件时仅依赖环境变量
		} else if err := v.Unmarshal(cfg); err != nil {
			log.Fatalf("解析配置文件失败: %v", err)
		}

		if err := envconfig.Process("APP", cfg); err != nil {
			log.Fatalf("读取环境变量失败: %v", err)
		}

		if cfg.Mode != ModeRelease {
			cfg.Mode = ModeDebug
		}
		instance = cfg
	})
}

// Get 获取全局配置实例，必须先调用 Init
func Get() *Config {
	if instance == nil {
		panic("config 未初始化")
	}
	return instance
}

func defaultConfig() *Config {
	return &Config{
		Host:   "0.0.0.0",
		Port:   "8080",
		Prefix: "api",
		Mode:   ModeDebug,
		JWT: JWT{
			AccessExpire: 7 * 24 * 3600,
		},
		Log: Log{
			Level:      "info",
			MaxSize:    50,
			MaxBackups: 5,
			MaxAge:     30,
		},
	}
}
