package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to path.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to bistro! Let's configure your site.")
	fmt.Println()

	defaults := DefaultConfig()
	if _, err := os.Stat(path); err == nil {
		fmt.Printf("Existing %s found; its values are offered as defaults.\n\n", path)
		if existing, err := Load(path); err == nil {
			defaults = existing
		}
	}

	// 1. Restaurant name.
	namePrompt := promptui.Prompt{
		Label:   "Restaurant name",
		Default: defaults.SiteName,
		Validate: func(s string) error {
			if strings.TrimSpace(s) == "" {
				return fmt.Errorf("name is required")
			}
			return nil
		},
	}
	siteName, err := namePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("site name: %w", err)
	}

	// 2. Output directory.
	outputPrompt := promptui.Prompt{
		Label:   "Output directory for the built site",
		Default: defaults.OutputDir,
	}
	outputDir, err := outputPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("output dir: %w", err)
	}

	// 3. Static assets directory.
	staticPrompt := promptui.Prompt{
		Label:   "Static assets directory",
		Default: defaults.StaticDir,
	}
	staticDir, err := staticPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("static dir: %w", err)
	}

	// 4. Port for bistro serve.
	portPrompt := promptui.Prompt{
		Label:   "Port for the live server",
		Default: strconv.Itoa(defaults.Port),
		Validate: func(s string) error {
			n, err := strconv.Atoi(s)
			if err != nil || n < 1 || n > 65535 {
				return fmt.Errorf("port must be a number between 1 and 65535")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	port, _ := strconv.Atoi(portStr)

	// 5. CORS.
	corsPrompt := promptui.Select{
		Label: "Allow cross-origin requests from any origin",
		Items: []string{"no (localhost only)", "yes (any origin)"},
	}
	corsIdx, _, err := corsPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("cors selection: %w", err)
	}

	// 6. Extra exclude patterns.
	excludePrompt := promptui.Prompt{
		Label:   "Extra static exclude patterns (comma-separated, leave blank for defaults)",
		Default: "",
	}
	excludeStr, err := excludePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("exclude patterns: %w", err)
	}

	cfg := DefaultConfig()
	cfg.SiteName = strings.TrimSpace(siteName)
	cfg.OutputDir = outputDir
	cfg.StaticDir = staticDir
	cfg.Port = port
	cfg.AllowAllOrigins = corsIdx == 1
	cfg.BaseURL = defaults.BaseURL
	cfg.SessionTTLMinutes = defaults.SessionTTLMinutes
	cfg.UIRateLimit = defaults.UIRateLimit
	cfg.UIRateBurst = defaults.UIRateBurst
	if excludeStr != "" {
		cfg.Exclude = append(cfg.Exclude, splitAndTrim(excludeStr)...)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

// splitAndTrim splits a comma-separated string and trims whitespace.
func splitAndTrim(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		if token := strings.TrimSpace(part); token != "" {
			result = append(result, token)
		}
	}
	return result
}
