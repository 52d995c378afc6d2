package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds runtime configuration parsed from environment variables.
type Config struct {
	HTTPAddr           string
	ShutdownTimeout    time.Duration
	CORSAllowedOrigins []string
	LogLevel           string
}

// FromEnv builds Config with defaults, overridden by environment variables.
func FromEnv() Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("HTTP_ADDR", ":8080")
	v.SetDefault("SHUTDOWN_TIMEOUT_SECONDS", 10)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("LOG_LEVEL", "info")
	return fromViper(v)
}

func fromViper(v *viper.Viper) Config {
	timeout := v.GetInt("SHUTDOWN_TIMEOUT_SECONDS")
	if timeout <= 0 {
		timeout = 10
	}
	return Config{
		HTTPAddr:           v.GetString("HTTP_ADDR"),
		ShutdownTimeout:    time.Duration(timeout) * time.Second,
		CORSAllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		LogLevel:           strings.ToLower(v.GetString("LOG_LEVEL")),
	}
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
