// Package report prints arena results and the leaderboard to a terminal.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const (
	winColor  = "#22c55e"
	lossColor = "#ef4444"
	drawColor = "#eab308"
)

// Summary tallies the results of a series of matches between two players.
type Summary struct {
	PlayerX string
	PlayerO string

	XWins int
	OWins int
	Draws int
}

func NewSummary(playerX, playerO string) *Summary {
	return &Summary{PlayerX: playerX, PlayerO: playerO}
}

func (that *Summary) Add(record *entity.GameRecord) {
	switch {
	case record.IsDraw():
		that.Draws++
	case record.Winner == record.PlayerX:
		that.XWins++
	default:
		that.OWins++
	}
}

func (that *Summary) Total() int {
	return that.XWins + that.OWins + that.Draws
}

type Printer struct {
	output *termenv.Output
}

// NewPrinter writes to w, detecting the colour profile unless one is passed
// in opts.
func NewPrinter(w io.Writer, opts ...termenv.OutputOption) *Printer {
	return &Printer{output: termenv.NewOutput(w, opts...)}
}

// Record prints one finished match.
func (that *Printer) Record(number int, record *entity.GameRecord) error {
	result := that.paint("draw", drawColor)
	if !record.IsDraw() {
		result = that.paint(record.Winner+" wins", winColor)
	}

	_, err := fmt.Fprintf(that.output, "#%-3d %s (X) vs %s (O): %s in %d moves\n",
		number, record.PlayerX, record.PlayerO, result, record.Moves)

	return err
}

func (that *Printer) Summary(summary *Summary) error {
	var builder strings.Builder

	builder.WriteString(that.output.String("Arena").Bold().String())
	fmt.Fprintf(&builder, ": %d games\n", summary.Total())
	fmt.Fprintf(&builder, "  %-20s %s\n", summary.PlayerX+" (X)", that.paint(fmt.Sprintf("%d wins", summary.XWins), winColor))
	fmt.Fprintf(&builder, "  %-20s %s\n", summary.PlayerO+" (O)", that.paint(fmt.Sprintf("%d wins", summary.OWins), winColor))
	fmt.Fprintf(&builder, "  %-20s %s\n", "draws", that.paint(fmt.Sprintf("%d", summary.Draws), drawColor))

	_, err := io.WriteString(that.output, builder.String())

	return err
}

// Leaderboard prints stats in the given order, best first.
func (that *Printer) Leaderboard(board []*entity.PlayerStats) error {
	var builder strings.Builder

	builder.WriteString(that.output.String("Leaderboard").Bold().String())
	builder.WriteString("\n")

	if len(board) == 0 {
		builder.WriteString("  no games recorded\n")
	}

	for i, stats := range board {
		fmt.Fprintf(&builder, "  %2d. %-20s %s %s %s  %5.1f%%  best streak %d\n",
			i+1,
			stats.Name,
			that.paint(fmt.Sprintf("W %-4d", stats.Wins), winColor),
			that.paint(fmt.Sprintf("L %-4d", stats.Losses), lossColor),
			that.paint(fmt.Sprintf("D %-4d", stats.Draws), drawColor),
			stats.WinRate(),
			stats.BestStreak,
		)
	}

	_, err := io.WriteString(that.output, builder.String())

	return err
}

func (that *Printer) paint(text, color string) string {
	return that.output.String(text).Foreground(that.output.Color(color)).String()
}
