package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/reasonprep/internal/argument"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <stimulus>",
	Short: "Decompose an argument passage into components and relationships",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		stimulus := strings.Join(args, " ")
		s := argument.Analyze(stimulus)

		fmt.Printf("Strength: %s\n\n", s.Strength)
		fmt.Println("Components:")
		for _, c := range s.Components {
			marker := " "
			if c.IsMain {
				marker = "*"
			}
			fmt.Printf("  %s %-5s %-10s (%.2f) %s\n", marker, c.ID, c.Type, c.Confidence, c.Text)
		}

		if s.MainConclusion != "" {
			fmt.Printf("\nMain conclusion: %s\n", s.MainConclusion)
		} else {
			fmt.Println("\nMain conclusion: (none identified)")
		}
		for _, p := range s.MainPremises {
			fmt.Printf("Main premise:    %s\n", p)
		}

		if len(s.LogicalFlow) > 0 {
			fmt.Println("\nLogical flow:")
			for _, e := range s.LogicalFlow {
				fmt.Printf("  %s -%s-> %s\n", e.From, e.Relationship, e.To)
			}
		}

		if len(s.Assumptions) > 0 {
			fmt.Println("\nImplicit assumptions:")
			for _, a := range s.Assumptions {
				fmt.Printf("  - %s\n", a)
			}
		}
		return nil
	},
}
