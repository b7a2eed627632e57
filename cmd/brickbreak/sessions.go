package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/brickbreak/internal/platform/tui"
)

var (
	flagSessionLimit int
	flagBrowse       bool
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "Show recent session records",
	Long: `Show the most recent play sessions from the database.

Examples:
  brickbreak sessions
  brickbreak sessions --limit 50
  brickbreak sessions --browse`,
	Args: cobra.NoArgs,
	RunE: runSessions,
}

func init() {
	sessionsCmd.Flags().IntVar(&flagSessionLimit, "limit", 20, "Number of sessions to show")
	sessionsCmd.Flags().BoolVar(&flagBrowse, "browse", false, "Browse sessions interactively")
}

func runSessions(cmd *cobra.Command, _ []string) error {
	store, err := requireStore()
	if err != nil {
		return err
	}
	defer store.Close()

	sessions, err := store.RecentSessions(flagSessionLimit)
	if err != nil {
		return err
	}

	if flagBrowse {
		width, height := 80, 24 // Defaults
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		return tui.RunHistory(sessions, width, height)
	}

	out := cmd.OutOrStdout()
	if len(sessions) == 0 {
		fmt.Fprintln(out, "No sessions recorded yet.")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STARTED\tHOST\tUSER\tLAYOUT\tDURATION\tFRAMES\tRESETS\tDESTROYED")
	for _, s := range sessions {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%d\t%d\t%d\n",
			s.StartedAt.Format("2006-01-02 15:04"),
			s.Host,
			s.User,
			s.Layout,
			s.Duration().Round(time.Second),
			s.Frames,
			s.Resets,
			s.Destroyed,
		)
	}
	return w.Flush()
}
