package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ederwin/spincube"
	"github.com/ederwin/spincube/internal/app/recorder"
	"github.com/ederwin/spincube/internal/app/tui"
	"github.com/ederwin/spincube/internal/app/ui"
)

var (
	recordSession bool
	turnSpeed     float32
	noSlices      bool
	sessionNotes  string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in a desktop window",
	Long: `Open a desktop window showing the cube in 3D.

Keyboard:
  f/b/u/d/l/r   - turn the outer face clockwise
  m/e/s         - turn the inner slice clockwise
  shift+key     - counter-clockwise
  arrow keys    - orbit the camera
  backspace     - reset to solved
  q/Esc         - quit`,
	RunE: runPlay,
}

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Play in the terminal",
	Long: `Play in the terminal: the six faces are drawn as a flat net that
updates as turns finalize, with the same keyboard layout as play.`,
	RunE: runTUI,
}

func init() {
	for _, cmd := range []*cobra.Command{playCmd, tuiCmd} {
		cmd.Flags().BoolVar(&recordSession, "record", false, "Record turns to the session database")
		cmd.Flags().Float32Var(&turnSpeed, "speed", 0, "Turn animation speed in degrees/second (default 270)")
		cmd.Flags().BoolVar(&noSlices, "no-slices", false, "Disable the inner slice moves M, E and S")
		cmd.Flags().StringVar(&sessionNotes, "notes", "", "Notes stored with the recorded session")
		rootCmd.AddCommand(cmd)
	}
}

func newPuzzle() *spincube.Puzzle {
	return spincube.New(
		spincube.WithTurnSpeed(turnSpeed),
		spincube.WithSliceMoves(!noSlices),
	)
}

// startRecording opens the database and starts a session when --record is
// set. It returns a per-turn hook (nil when not recording) and a closer.
func startRecording(frontend string) (func(spincube.Move), func(), error) {
	if !recordSession {
		return nil, func() {}, nil
	}

	db, err := openDB()
	if err != nil {
		return nil, nil, err
	}
	session, err := recorder.Start(db, frontend, sessionNotes)
	if err != nil {
		db.Close()
		return nil, nil, err
	}
	if verbose {
		fmt.Println("recording session", session.ID())
	}

	hook := func(m spincube.Move) {
		if err := session.Record(m); err != nil && verbose {
			fmt.Println("record failed:", err)
		}
	}
	closer := func() {
		if err := session.End(); err != nil {
			fmt.Println("failed to end session:", err)
		} else {
			fmt.Printf("recorded %d turns in session %s\n", session.TurnCount(), session.ID())
		}
		db.Close()
	}
	return hook, closer, nil
}

func runPlay(cmd *cobra.Command, args []string) error {
	hook, closeRec, err := startRecording("play")
	if err != nil {
		return err
	}
	defer closeRec()

	return ui.New(newPuzzle(), hook).Run()
}

func runTUI(cmd *cobra.Command, args []string) error {
	hook, closeRec, err := startRecording("tui")
	if err != nil {
		return err
	}
	defer closeRec()

	return tui.NewModel(newPuzzle(), hook).Run()
}
