package cmd

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/abhisek/reasonprep/internal/practice"
	"github.com/abhisek/reasonprep/internal/qtype"
	"github.com/abhisek/reasonprep/internal/question"
	"github.com/abhisek/reasonprep/internal/store"
)

// recentExclusionWindow is how many recent attempts feed the
// repeat-question exclusion list.
const recentExclusionWindow = 50

var practiceCmd = &cobra.Command{
	Use:   "practice",
	Short: "Generate a personalized practice set",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		poolPath, _ := cmd.Flags().GetString("pool")
		count, _ := cmd.Flags().GetInt("count")
		focus, _ := cmd.Flags().GetBool("focus-weaknesses")
		variety, _ := cmd.Flags().GetBool("variety")
		timeLimit, _ := cmd.Flags().GetInt("time-limit")
		minDifficulty, _ := cmd.Flags().GetFloat64("min-difficulty")
		maxDifficulty, _ := cmd.Flags().GetFloat64("max-difficulty")
		typeNames, _ := cmd.Flags().GetStringSlice("types")
		includeRecent, _ := cmd.Flags().GetBool("include-recent")

		pool, err := question.LoadPool(poolPath)
		if err != nil {
			return fmt.Errorf("load pool: %w", err)
		}

		var types []qtype.Type
		for _, name := range typeNames {
			t := qtype.Type(name)
			if !qtype.Valid(t) {
				return fmt.Errorf("unknown question type %q", name)
			}
			types = append(types, t)
		}

		tun, err := loadTunables(cmd)
		if err != nil {
			return err
		}
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		history, err := loadHistory(ctx, st, tun)
		if err != nil {
			return err
		}

		criteria := practice.Criteria{
			TargetTypes:      types,
			MinDifficulty:    minDifficulty,
			MaxDifficulty:    maxDifficulty,
			QuestionCount:    count,
			FocusWeaknesses:  focus,
			Variety:          variety,
			TimeLimitMinutes: timeLimit,
		}
		if !includeRecent {
			repo, err := st.EventRepo()
			if err != nil {
				return err
			}
			recent, err := repo.RecentQuestionIDs(ctx, recentExclusionWindow)
			if err != nil {
				return err
			}
			criteria.ExcludeQuestionIDs = recent
		}

		gen := practice.NewGenerator(tun, history, nil)
		set := gen.Generate(pool, criteria)

		sessionID := uuid.NewString()
		repo, err := st.EventRepo()
		if err != nil {
			return err
		}
		err = repo.AppendSessionEvent(ctx, store.SessionEventData{
			SessionID:     sessionID,
			Action:        "started",
			Strategy:      string(set.Strategy),
			QuestionCount: len(set.Questions),
		})
		if err != nil {
			return fmt.Errorf("log session: %w", err)
		}

		fmt.Printf("Session %s\n", sessionID)
		fmt.Printf("Strategy: %s\n", set.Strategy)
		fmt.Printf("Rationale: %s\n", set.Rationale)
		fmt.Printf("Estimated accuracy: %.0f%%\n\n", set.EstimatedAccuracy*100)

		for i, q := range set.Questions {
			fmt.Printf("%2d. [%s] %s (difficulty %.1f, %ds)\n",
				i+1, qtype.DisplayName(q.Type), q.ID, q.Difficulty.Overall(), q.TimeRecommendation)
		}

		if len(set.Recommendations) > 0 {
			fmt.Println()
			for _, r := range set.Recommendations {
				fmt.Printf("Tip: %s\n", r)
			}
		}
		return nil
	},
}

func init() {
	practiceCmd.Flags().String("pool", "", "Path to question pool JSON")
	practiceCmd.Flags().Int("count", 10, "Number of questions to select")
	practiceCmd.Flags().Bool("focus-weaknesses", false, "Prioritize your weakest question types")
	practiceCmd.Flags().Bool("variety", false, "Spread questions evenly across types")
	practiceCmd.Flags().Int("time-limit", 0, "Session time budget in minutes")
	practiceCmd.Flags().Float64("min-difficulty", 0, "Minimum overall difficulty (1-5 scale, 0 = unbounded)")
	practiceCmd.Flags().Float64("max-difficulty", 0, "Maximum overall difficulty (1-5 scale, 0 = unbounded)")
	practiceCmd.Flags().StringSlice("types", nil, "Restrict to the given question types")
	practiceCmd.Flags().Bool("include-recent", false, "Allow recently attempted questions")
	practiceCmd.MarkFlagRequired("pool")
}
