package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ederwin/spincube"
)

var applyCmd = &cobra.Command{
	Use:   "apply <moves>",
	Short: "Apply a move sequence to a solved cube",
	Long: `Apply a space-separated move sequence to a solved cube and print the
resulting sticker net.

Example:
  spincube apply "R U R' U'"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runApply,
}

func init() {
	rootCmd.AddCommand(applyCmd)
}

func runApply(cmd *cobra.Command, args []string) error {
	p := spincube.New(spincube.WithHistory(true))
	notation := strings.Join(args, " ")
	if err := p.ApplyNotation(notation); err != nil {
		return fmt.Errorf("failed to apply %q: %w", notation, err)
	}

	fmt.Print(netString(p.Net()))
	fmt.Println("Moves: ", p.History().Notation())
	fmt.Println("Solved:", p.IsSolved())
	return nil
}

// netString renders the net as plain text, up face on top:
//
//	      W W W
//	O O O G G G R R R B B B
//	      Y Y Y
func netString(net spincube.Net) string {
	var b strings.Builder

	writeRow := func(cells [9]spincube.Color, row int) {
		for col := 0; col < 3; col++ {
			b.WriteString(cells[row*3+col].String() + " ")
		}
	}

	for row := 0; row < 3; row++ {
		b.WriteString("      ")
		writeRow(net[spincube.FaceU], row)
		b.WriteString("\n")
	}
	for row := 0; row < 3; row++ {
		for _, f := range []spincube.Face{spincube.FaceL, spincube.FaceF, spincube.FaceR, spincube.FaceB} {
			writeRow(net[f], row)
		}
		b.WriteString("\n")
	}
	for row := 0; row < 3; row++ {
		b.WriteString("      ")
		writeRow(net[spincube.FaceD], row)
		b.WriteString("\n")
	}

	return b.String()
}
