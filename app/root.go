// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "beacon",
	Short: "Beacon is the web backend for the Beacon Foundation site",
	Long: `Beacon is the web backend for the Beacon Foundation site.
It serves the public content API and the administrative back office
for events, programs, news, courses, subscribers and volunteers.`,
	Args: cobra.OnlyValidArgs,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
