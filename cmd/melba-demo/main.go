package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/melba-ui/melba/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ┌┬┐┌─┐┬  ┌┐ ┌─┐
  │││├┤ │  ├┴┐├─┤
  ┴ ┴└─┘┴─┘└─┘┴ ┴
`

func main() {
	rootCmd := &cobra.Command{
		Use:   "melba-demo",
		Short: "Showcase server for melba toast notifications",
		Long: `melba-demo runs the melba showcase: a page that pushes toast
notifications at every level and renders the stacked overlay live
from the server.

What it exercises:

  • Server-rendered toast overlay with swipe-to-dismiss
  • Tap the stack to switch between stacked and expanded layout
  • JSON event frames over WebSocket, full renders back
  • Prometheus metrics and trace spans per event`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		serveCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		errors.PrintError(err)
		os.Exit(1)
	}
}

// printBanner prints the melba ASCII art banner.
func printBanner() {
	fmt.Print(banner)
}

// success prints a success message.
func success(format string, args ...any) {
	fmt.Printf("\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(format string, args ...any) {
	fmt.Printf("  %s\n", fmt.Sprintf(format, args...))
}
