package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ederwin/spincube/internal/app/stats"
	"github.com/ederwin/spincube/internal/app/storage"
)

var listLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded sessions",
	Long:  `Display recent recorded sessions with basic statistics.`,
	RunE:  runHistoryList,
}

var historyShowCmd = &cobra.Command{
	Use:   "show <session-id>",
	Short: "Show details of a session",
	Long: `Display a recorded session: duration, turn count, turns per second,
per-face turn histogram, and the full move sequence.`,
	Args: cobra.ExactArgs(1),
	RunE: runHistoryShow,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVar(&listLimit, "limit", 20, "Maximum number of sessions to display")
	historyCmd.AddCommand(historyShowCmd)
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	sessions, err := storage.NewSessionRepository(db).List(listLimit)
	if err != nil {
		return err
	}
	if len(sessions) == 0 {
		fmt.Println("No recorded sessions.")
		return nil
	}

	fmt.Printf("%-36s  %-20s  %-8s  %s\n", "SESSION", "STARTED", "TURNS", "FRONTEND")
	for _, s := range sessions {
		fmt.Printf("%-36s  %-20s  %-8d  %s\n",
			s.SessionID,
			s.StartedAt.Local().Format("2006-01-02 15:04:05"),
			s.TurnCount,
			s.Frontend,
		)
	}
	return nil
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	session, err := storage.NewSessionRepository(db).Get(args[0])
	if err != nil {
		return err
	}
	turns, err := storage.NewTurnRepository(db).GetBySession(session.SessionID)
	if err != nil {
		return err
	}

	summary := stats.Summarize(session, turns)

	fmt.Println("Session: ", summary.SessionID)
	fmt.Println("Started: ", summary.StartedAt)
	if summary.EndedAt != "" {
		fmt.Println("Ended:   ", summary.EndedAt)
	}
	fmt.Printf("Duration: %.1fs\n", float64(summary.DurationMs)/1000)
	fmt.Println("Turns:   ", summary.TurnCount)
	fmt.Printf("TPS:      %.2f\n", summary.TPS)
	if pause := stats.LongestPause(turns); pause > 0 {
		fmt.Printf("Longest pause: %.1fs\n", float64(pause)/1000)
	}
	if len(summary.FaceCounts) > 0 {
		fmt.Println("Faces:")
		for _, face := range []string{"F", "B", "U", "D", "L", "R", "M", "E", "S"} {
			if n := summary.FaceCounts[face]; n > 0 {
				fmt.Printf("  %s: %d\n", face, n)
			}
		}
	}
	if summary.Notation != "" {
		fmt.Println("Moves:   ", summary.Notation)
	}
	if session.Notes != "" {
		fmt.Println("Notes:   ", session.Notes)
	}
	return nil
}
