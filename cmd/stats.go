package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/reasonprep/internal/qtype"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show performance dashboard and weakness report",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		tun, err := loadTunables(cmd)
		if err != nil {
			return err
		}
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		tr, err := loadHistory(ctx, st, tun)
		if err != nil {
			return err
		}

		d := tr.Dashboard()
		if d.TotalAttempts == 0 {
			fmt.Println("No attempts recorded yet.")
			return nil
		}

		fmt.Printf("Attempts:        %d\n", d.TotalAttempts)
		fmt.Printf("Accuracy:        %.0f%%\n", d.OverallAccuracy*100)
		fmt.Printf("Average time:    %.0fs\n", d.AverageTime)
		fmt.Printf("Time efficiency: %.2f\n", d.TimeEfficiency)

		if len(d.StrongestTypes) > 0 {
			fmt.Println("\nStrongest types:")
			for _, p := range d.StrongestTypes {
				fmt.Printf("  %-28s %.0f%% over %d attempts\n", qtype.DisplayName(p.Type), p.Accuracy*100, p.Attempts)
			}
		}
		if len(d.WeakestTypes) > 0 {
			fmt.Println("\nWeakest types:")
			for _, p := range d.WeakestTypes {
				fmt.Printf("  %-28s %.0f%% over %d attempts\n", qtype.DisplayName(p.Type), p.Accuracy*100, p.Attempts)
			}
		}
		if len(d.TrendingTypes) > 0 {
			fmt.Println("\nTrends:")
			for _, tr := range d.TrendingTypes {
				fmt.Printf("  %-28s %s (confidence %.2f)\n", qtype.DisplayName(tr.Type), tr.Direction, tr.Confidence)
			}
		}
		if len(d.CommonMistakes) > 0 {
			fmt.Println("\nCommon mistakes:")
			for _, m := range d.CommonMistakes {
				fmt.Printf("  %-28s x%d\n", m.Label, m.Count)
			}
		}

		weaknesses := tr.Weaknesses()
		if len(weaknesses) > 0 {
			fmt.Println("\nFocus plan:")
			for _, w := range weaknesses {
				fmt.Printf("  %s (%s priority, %.0f%% accuracy)\n", qtype.DisplayName(w.Type), w.Priority, w.Accuracy*100)
				fmt.Printf("    Practice %d questions (%d/week), target %.0f%%, est. %d days\n",
					w.SuggestedQuestions, w.WeeklyTarget.QuestionCount, w.WeeklyTarget.TargetAccuracy*100, w.EstimatedDays)
				for _, f := range w.FocusPoints {
					fmt.Printf("    - %s\n", f)
				}
			}
		}
		return nil
	},
}
