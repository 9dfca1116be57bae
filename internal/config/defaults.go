package config

import "time"

// DefaultExcludes are glob patterns of static files never copied into the
// generated site.
var DefaultExcludes = []string{
	".git/**",
	"**/.DS_Store",
	"**/Thumbs.db",
	"**/*.psd",
	"**/*.tmp",
	"**/*~",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	exclude := make([]string, len(DefaultExcludes))
	copy(exclude, DefaultExcludes)
	return &Config{
		SiteName:          "Anurag's Restaurant",
		OutputDir:         "public",
		StaticDir:         "static",
		Port:              8080,
		Exclude:           exclude,
		SessionTTLMinutes: 120,
		UIRateLimit:       20,
		UIRateBurst:       40,
	}
}

// SessionTTL returns the idle session lifetime as a duration.
func (c *Config) SessionTTL() time.Duration {
	return time.Duration(c.SessionTTLMinutes) * time.Minute
}
