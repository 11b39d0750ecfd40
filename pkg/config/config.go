// Package config 提供 TOML 配置加载、环境变量覆盖与校验
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"github.com/wyfcoding/latticepricing/pkg/logger"
)

// Config 基础配置结构
type Config struct {
	// 服务名称
	ServiceName string `mapstructure:"service_name"`
	// 服务版本
	Version string `mapstructure:"version"`
	// 环境：dev, staging, prod
	Environment string `mapstructure:"environment"`
	// 日志配置
	Logger LoggerConfig `mapstructure:"logger"`
	// 指标配置
	Metrics MetricsConfig `mapstructure:"metrics"`
	// 定价默认参数
	Pricing PricingConfig `mapstructure:"pricing"`
}

// LoggerConfig 日志配置
type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	Output     string `mapstructure:"output"`
	FilePath   string `mapstructure:"file_path"`
	MaxSize    int    `mapstructure:"max_size"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"`
	Compress   bool   `mapstructure:"compress"`
	WithCaller bool   `mapstructure:"with_caller"`
}

// ToLogger 转换为 logger 包的配置
func (c LoggerConfig) ToLogger() logger.Config {
	return logger.Config{
		Level:      c.Level,
		Format:     c.Format,
		Output:     c.Output,
		FilePath:   c.FilePath,
		MaxSize:    c.MaxSize,
		MaxBackups: c.MaxBackups,
		MaxAge:     c.MaxAge,
		Compress:   c.Compress,
		WithCaller: c.WithCaller,
	}
}

// MetricsConfig 指标配置
type MetricsConfig struct {
	// 是否启用
	Enabled bool `mapstructure:"enabled"`
	// 退出前是否将指标写入日志
	LogSnapshot bool `mapstructure:"log_snapshot"`
}

// PricingConfig 演示程序使用的合约与市场参数
type PricingConfig struct {
	Symbol         string  `mapstructure:"symbol"`
	SpotPrice      float64 `mapstructure:"spot_price"`
	StrikePrice    float64 `mapstructure:"strike_price"`
	TimeToMaturity float64 `mapstructure:"time_to_maturity"`
	RiskFreeRate   float64 `mapstructure:"risk_free_rate"`
	Volatility     float64 `mapstructure:"volatility"`
	DividendYield  float64 `mapstructure:"dividend_yield"`
	Steps          int     `mapstructure:"steps"`
	// 单次定价允许的最大步数
	MaxSteps int `mapstructure:"max_steps"`
}

// Load 从 TOML 文件加载配置，支持环境变量覆盖
func Load(configPath string) (*Config, error) {
	v := newViper(configPath)

	// 读取配置文件
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return decode(v)
}

// LoadWithDefaults 从 TOML 文件加载配置，文件不存在时使用默认值
func LoadWithDefaults(configPath string) (*Config, error) {
	v := newViper(configPath)

	// 读取配置文件（如果不存在则忽略）
	_ = v.ReadInConfig()
	return decode(v)
}

func newViper(configPath string) *viper.Viper {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(configPath)
	v.SetConfigType("toml")

	// 环境变量前缀 APP，使用 _ 替代 .
	v.SetEnvPrefix("APP")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	return v
}

func decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

// Validate 验证配置的有效性
func (c *Config) Validate() error {
	if c.ServiceName == "" {
		return fmt.Errorf("service_name is required")
	}
	if c.Environment == "" {
		c.Environment = "dev"
	}
	switch c.Logger.Output {
	case "stdout", "file", "both":
	default:
		return fmt.Errorf("invalid logger output: %q", c.Logger.Output)
	}
	if c.Pricing.Steps < 1 {
		return fmt.Errorf("pricing.steps must be at least 1, got %d", c.Pricing.Steps)
	}
	if c.Pricing.MaxSteps > 0 && c.Pricing.Steps > c.Pricing.MaxSteps {
		return fmt.Errorf("pricing.steps %d exceeds pricing.max_steps %d", c.Pricing.Steps, c.Pricing.MaxSteps)
	}
	return nil
}

// setDefaults 设置默认值
func setDefaults(v *viper.Viper) {
	v.SetDefault("service_name", "lattice_pricing")
	v.SetDefault("version", "0.1.0")
	v.SetDefault("environment", "dev")

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")
	v.SetDefault("logger.output", "stdout")
	v.SetDefault("logger.file_path", "logs/app.log")
	v.SetDefault("logger.max_size", 100)
	v.SetDefault("logger.max_backups", 10)
	v.SetDefault("logger.max_age", 30)
	v.SetDefault("logger.compress", true)
	v.SetDefault("logger.with_caller", false)

	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.log_snapshot", false)

	v.SetDefault("pricing.symbol", "DEMO")
	v.SetDefault("pricing.spot_price", 100.0)
	v.SetDefault("pricing.strike_price", 100.0)
	v.SetDefault("pricing.time_to_maturity", 1.0)
	v.SetDefault("pricing.risk_free_rate", 0.05)
	v.SetDefault("pricing.volatility", 0.2)
	v.SetDefault("pricing.dividend_yield", 0.0)
	v.SetDefault("pricing.steps", 100)
	v.SetDefault("pricing.max_steps", 5000)
}

// LoadEnvFile 加载 .env 文件到进程环境变量，文件不存在时忽略
func LoadEnvFile(paths ...string) error {
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("failed to load %s file: %w", p, err)
		}
	}
	return nil
}

// GetEnv 获取环境变量，支持默认值
func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
