package config

import (
	"os"
	"time"
)

type Config struct {
	ProjectID     string
	Region        string
	LogLevel      string
	Port          string
	KMSKeyName    string
	WebhookSecret string
	CoreTimeout   time.Duration
}

func New() *Config {
	return &Config{
		ProjectID:     os.Getenv("PROJECTID"),
		Region:        os.Getenv("REGION"),
		LogLevel:      os.Getenv("LOGLEVEL"),
		Port:          getPort(os.Getenv("PORT")),
		KMSKeyName:    os.Getenv("KMSKEYNAME"),
		WebhookSecret: os.Getenv("WEBHOOKSECRET"),
		CoreTimeout:   getCoreTimeout(os.Getenv("CORETIMEOUT")),
	}
}

func getPort(port string) string {
	if port == "" {
		return "8080"
	}
	return port
}

// getCoreTimeout bounds the core-banking session lifetime (connect, operate,
// disconnect). The core is the only slow, externally controlled dependency.
func getCoreTimeout(raw string) time.Duration {
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return 15 * time.Second
	}
	return d
}
