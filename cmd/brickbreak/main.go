// brickbreak is a single-screen brick breaker that runs in the terminal, in a
// desktop window or over SSH.
//
// Usage:
//
//	brickbreak play             - Play in the terminal
//	brickbreak window           - Play in a desktop window
//	brickbreak serve            - Start SSH server for remote play
//	brickbreak simulate         - Run frames headless and print the result
//	brickbreak layouts <cmd>    - Manage saved block layouts
//	brickbreak sessions         - Show recent session records
//
// Global flags:
//
//	--config <path>       - Config YAML (default: search ~/.brickbreak, ./configs, embedded)
//	--db <path>           - Database path (default: ~/.brickbreak/brickbreak.db)
//	--layout <name>       - Play a saved layout
//	--layout-file <path>  - Play a layout from a text file
//
// Pressing escape exits with status 1.
package main

import (
	"errors"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickbreak/internal/breakout"
)

var (
	// Global flags
	flagConfig     string
	flagDBPath     string
	flagLayout     string
	flagLayoutFile string
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "brickbreak",
})

func main() {
	err := rootCmd.Execute()
	if errors.Is(err, breakout.ErrEscape) {
		os.Exit(1)
	}
	if err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "brickbreak",
	Short: "brickbreak - a single-screen brick breaker",
	Long: `brickbreak bounces a ball off a paddle into a wall of blocks.
Blocks disappear when hit. There is no score and no end: press R to
rebuild the level and Esc to quit.

Available commands:
  play      - Play in the terminal
  window    - Play in a desktop window
  serve     - Start SSH server for remote play
  simulate  - Run frames headless
  layouts   - Manage saved block layouts
  sessions  - Show recent sessions

Examples:
  brickbreak play
  brickbreak window --scale 2
  brickbreak play --layout-file ./castle.txt
  brickbreak layouts import castle ./castle.txt
  brickbreak serve --ssh :2222 --layout castle`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.brickbreak/brickbreak.db", "Path to database")
	rootCmd.PersistentFlags().StringVar(&flagLayout, "layout", "", "Name of a saved layout to play")
	rootCmd.PersistentFlags().StringVar(&flagLayoutFile, "layout-file", "", "Path to a layout text file to play")
	rootCmd.MarkFlagsMutuallyExclusive("layout", "layout-file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(layoutsCmd)
	rootCmd.AddCommand(sessionsCmd)
}
