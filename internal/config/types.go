package config

// Config is the top-level bistro configuration, corresponding to .bistro.yml.
type Config struct {
	SiteName          string   `yaml:"site_name" koanf:"site_name"`
	OutputDir         string   `yaml:"output_dir" koanf:"output_dir"`
	StaticDir         string   `yaml:"static_dir" koanf:"static_dir"`
	BaseURL           string   `yaml:"base_url" koanf:"base_url"`
	Port              int      `yaml:"port" koanf:"port"`
	AllowAllOrigins   bool     `yaml:"allow_all_origins" koanf:"allow_all_origins"`
	Exclude           []string `yaml:"exclude" koanf:"exclude"`
	SessionTTLMinutes int      `yaml:"session_ttl_minutes" koanf:"session_ttl_minutes"`

	// UI changes per second allowed for one session; 0 disables the cap.
	UIRateLimit float64 `yaml:"ui_rate_limit" koanf:"ui_rate_limit"`
	UIRateBurst int     `yaml:"ui_rate_burst" koanf:"ui_rate_burst"`
}
