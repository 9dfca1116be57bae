package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/bistro/internal/content"
	"github.com/ziadkadry99/bistro/internal/navigation"
	"github.com/ziadkadry99/bistro/internal/server"
	"github.com/ziadkadry99/bistro/internal/session"
	"github.com/ziadkadry99/bistro/internal/site"
)

// sweepInterval is how often idle sessions are dropped.
const sweepInterval = time.Minute

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the restaurant site with live per-visitor state",
	Long: `Starts an HTTP server that renders the page per visitor session and exposes
the content API, the UI state API and the /ws/ui websocket.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().Int("port", 0, "port to listen on (defaults to port from config)")
	serveCmd.Flags().Bool("open", false, "open browser automatically")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	port, _ := cmd.Flags().GetInt("port")
	if port == 0 {
		port = cfg.Port
	}
	if port < 1 || port > 65535 {
		return fmt.Errorf("invalid port %d: must be between 1 and 65535", port)
	}

	store := content.Default()
	registry := navigation.NewRegistry(store.SectionIDs()...)
	sessions := session.NewManager(store, registry, cfg.SessionTTL())
	sessions.SetRateLimit(cfg.UIRateLimit, cfg.UIRateBurst)

	web, err := site.New(store, sessions, site.Config{
		SiteName:  cfg.SiteName,
		StaticDir: cfg.StaticDir,
		Exclude:   cfg.Exclude,
		BaseURL:   cfg.BaseURL,
	})
	if err != nil {
		return fmt.Errorf("creating site: %w", err)
	}

	srv := server.New(server.Config{
		Port:     port,
		AllowAll: cfg.AllowAllOrigins,
	})
	web.RegisterRoutes(srv.Router())

	// Graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go sessions.Run(ctx, sweepInterval)

	go func() {
		<-ctx.Done()
		fmt.Fprintln(os.Stderr, "\nShutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	url := fmt.Sprintf("http://localhost:%d", port)
	fmt.Fprintf(os.Stderr, "bistro %s serving %s at %s\n", Version, cfg.SiteName, url)
	if verbose {
		fmt.Fprintf(os.Stderr, "  Static: %s\n", cfg.StaticDir)
		fmt.Fprintf(os.Stderr, "  Session TTL: %s\n", cfg.SessionTTL())
	}
	fmt.Fprintln(os.Stderr, "Press Ctrl+C to stop.")

	if open, _ := cmd.Flags().GetBool("open"); open {
		go openBrowser(url)
	}

	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
