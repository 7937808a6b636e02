package config

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/viper"
)

// Config 配置结构
type Config struct {
	App     AppConfig     `mapstructure:"app"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// AppConfig 程序信息
type AppConfig struct {
	Name    string `mapstructure:"name"`
	Version string `mapstructure:"version"`
}

// LoggingConfig 日志配置
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	// File 为空时日志写到 stderr，stdout 只留给报告输出
	File string `mapstructure:"file"`
	Dir  string `mapstructure:"dir"`
}

const envPrefix = "PATTERNS_HOMEWORK"

var (
	// GlobalConfig 全局配置实例
	GlobalConfig *Config

	validLevels  = []string{"trace", "debug", "info", "warn", "warning", "error", "fatal", "panic"}
	validFormats = []string{"text", "json"}
)

// Init 初始化配置
func Init() error {
	v := viper.New()

	// 设置默认配置
	setDefaults(v)

	// 设置配置文件路径
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/patterns_homework")

	// 绑定环境变量
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// 读取配置文件
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return err
		}
		// 配置文件不存在，使用默认配置
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	GlobalConfig = cfg
	return nil
}

// setDefaults 设置默认配置
func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "patterns-homework")
	v.SetDefault("app.version", "1.0.0")

	v.SetDefault("logging.level", "warn")
	v.SetDefault("logging.format", "text")
	v.SetDefault("logging.file", "")
	v.SetDefault("logging.dir", "")
}

// Validate 校验配置，返回所有发现的问题
func (c *Config) Validate() error {
	var result *multierror.Error

	if c.App.Name == "" {
		result = multierror.Append(result, ErrEmptyAppName)
	}
	if !contains(validLevels, strings.ToLower(c.Logging.Level)) {
		result = multierror.Append(result, fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.Logging.Level))
	}
	if !contains(validFormats, strings.ToLower(c.Logging.Format)) {
		result = multierror.Append(result, fmt.Errorf("%w: %q", ErrInvalidLogFormat, c.Logging.Format))
	}

	return result.ErrorOrNil()
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}

// GetConfig 获取全局配置
func GetConfig() *Config {
	return GlobalConfig
}
