package cmd

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "bistro",
	Short: "Build and serve a single-page restaurant website",
	Long: `Bistro renders the restaurant's one-page site (hero, about, menu, gallery,
testimonials and contact) either as static files ready for any web host,
or as a live server that keeps each visitor's open dialogs and header
state in a session and drives section scrolling over a websocket.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".bistro.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
