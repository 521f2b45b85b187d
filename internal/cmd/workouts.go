package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/renato0307/deckofcards/internal/domain"
)

// WorkoutsCmd prints the card to instruction table for the configured workouts
type WorkoutsCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
	Suit   string `help:"Only show one suit (symbol or name)"`
}

// workoutRow is one card of the table
type workoutRow struct {
	Card        string `json:"card"`
	Exercise    string `json:"exercise"`
	Instruction string `json:"instruction"`
	Reps        int    `json:"reps"`
}

// Run executes the workouts command
func (w *WorkoutsCmd) Run(cli *CLI) error {
	workouts, err := cli.settings.Workouts()
	if err != nil {
		return err
	}

	suits := domain.Suits
	if w.Suit != "" {
		suit, err := domain.ParseSuit(w.Suit)
		if err != nil {
			return err
		}
		suits = []domain.Suit{suit}
	}

	return writeWorkouts(os.Stdout, w.Format, workoutRows(suits, workouts))
}

func workoutRows(suits []domain.Suit, workouts domain.WorkoutMap) []workoutRow {
	rows := make([]workoutRow, 0, len(suits)*len(domain.Ranks))
	for _, suit := range suits {
		for _, rank := range domain.Ranks {
			card := domain.Card{Suit: suit, Rank: rank}
			rows = append(rows, workoutRow{
				Card:        card.String(),
				Exercise:    workouts[suit],
				Instruction: domain.Instruction(card, workouts),
				Reps:        rank.Reps(),
			})
		}
	}
	return rows
}

func writeWorkouts(out io.Writer, format string, rows []workoutRow) error {
	if format == "json" {
		data, err := json.MarshalIndent(rows, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "Card\tReps\tExercise")
	fmt.Fprintln(w, "────\t────\t────────")
	for _, row := range rows {
		fmt.Fprintf(w, "%s\t%d\t%s\n", row.Card, row.Reps, row.Exercise)
	}
	return w.Flush()
}
