package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/bistro/internal/site"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Generate the static restaurant site",
	Long:  `Writes index.html, style.css, script.js and content.json to the output directory and copies the static assets next to them.`,
	RunE:  runBuild,
}

func init() {
	buildCmd.Flags().String("output", "", "override output directory (defaults to output_dir from config)")
	buildCmd.Flags().Bool("watch", false, "rebuild whenever a static asset changes")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	outputDir, _ := cmd.Flags().GetString("output")
	if outputDir == "" {
		outputDir = cfg.OutputDir
	}

	generator := site.NewGenerator(outputDir, cfg.StaticDir, cfg.Exclude, cfg.BaseURL)
	generator.SiteName = cfg.SiteName
	generator.Reporter = newReporter()

	count, err := generator.Generate()
	if err != nil {
		return fmt.Errorf("generating site: %w", err)
	}
	fmt.Fprintf(os.Stderr, "Static site generated: %s (%d files)\n", outputDir, count)

	watch, _ := cmd.Flags().GetBool("watch")
	if !watch {
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Fprintf(os.Stderr, "Watching %s for changes. Press Ctrl+C to stop.\n", cfg.StaticDir)
	return generator.Watch(ctx)
}
