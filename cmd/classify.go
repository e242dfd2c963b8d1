package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/reasonprep/internal/classify"
	"github.com/abhisek/reasonprep/internal/qtype"
)

var classifyCmd = &cobra.Command{
	Use:   "classify <stem>",
	Short: "Classify a question stem into its reasoning type",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		stem := strings.Join(args, " ")
		stimulus, _ := cmd.Flags().GetString("stimulus")

		res := classify.Classify(stem, stimulus)
		fmt.Printf("Type:        %s\n", qtype.DisplayName(res.Type))
		fmt.Printf("Confidence:  %.2f\n", res.Confidence)
		if res.Secondary != "" {
			fmt.Printf("Secondary:   %s\n", qtype.DisplayName(res.Secondary))
		}
		if len(res.Indicators) > 0 {
			fmt.Printf("Indicators:  %s\n", strings.Join(res.Indicators, ", "))
		}
		fmt.Printf("Recommended: %ds\n", classify.RecommendedTime(res.Type))

		if stimulus != "" {
			d := classify.EstimateDifficulty(stimulus, stem)
			fmt.Printf("Difficulty:  %.1f/5 (abstractness %d, complexity %d, vocabulary %d, traps %d)\n",
				d.Overall(), d.Abstractness, d.ArgumentComplexity, d.VocabularyLevel, d.TrapDensity)
		}
		return nil
	},
}

func init() {
	classifyCmd.Flags().String("stimulus", "", "Optional stimulus passage for difficulty estimation")
}
