package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/reasonprep/internal/argument"
	"github.com/abhisek/reasonprep/internal/question"
	"github.com/abhisek/reasonprep/internal/traps"
)

var diagnoseCmd = &cobra.Command{
	Use:   "diagnose",
	Short: "Diagnose the trap patterns in a question's answer choices",
	RunE: func(cmd *cobra.Command, args []string) error {
		poolPath, _ := cmd.Flags().GetString("pool")
		questionID, _ := cmd.Flags().GetString("question")

		pool, err := question.LoadPool(poolPath)
		if err != nil {
			return fmt.Errorf("load pool: %w", err)
		}

		var q *question.Question
		for i := range pool {
			if pool[i].ID == questionID {
				q = &pool[i]
				break
			}
		}
		if q == nil {
			return fmt.Errorf("question %q not found in pool", questionID)
		}

		tun, err := loadTunables(cmd)
		if err != nil {
			return err
		}

		structure := argument.Analyze(q.Stimulus)
		det := traps.NewDetector(tun)

		fmt.Printf("Question %s (%s)\n\n", q.ID, q.Type)
		for _, diag := range det.DetectAll(q, structure) {
			if diag.Correct {
				fmt.Printf("  [%s] CORRECT: %s\n", diag.ChoiceID, diag.Explanation)
				continue
			}
			label := diag.Detection.TrapLabel
			if label == "" {
				label = "no trap detected"
			}
			fmt.Printf("  [%s] %s (%.2f): %s\n", diag.ChoiceID, label, diag.Detection.Confidence, diag.Explanation)
		}
		return nil
	},
}

func init() {
	diagnoseCmd.Flags().String("pool", "", "Path to question pool JSON")
	diagnoseCmd.Flags().String("question", "", "Question ID to diagnose")
	diagnoseCmd.MarkFlagRequired("pool")
	diagnoseCmd.MarkFlagRequired("question")
}
