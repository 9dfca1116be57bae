package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"github.com/joho/godotenv"

	"github.com/ziadkadry99/bistro/internal/config"
	"github.com/ziadkadry99/bistro/internal/progress"
)

// loadConfig loads and validates the config, providing a user-friendly error.
// Variables from a .env file in the working directory are visible to the
// BISTRO_* overlay; real environment variables win.
func loadConfig() (*config.Config, error) {
	_ = godotenv.Load()

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `bistro init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// newReporter prints one line per file in verbose mode and a progress bar
// otherwise.
func newReporter() progress.Reporter {
	if verbose {
		return &progress.CIReporter{Out: os.Stderr}
	}
	return progress.NewReporter()
}

// openBrowser opens the given URL in the default browser.
func openBrowser(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	_ = cmd.Start()
}
