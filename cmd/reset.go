package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all recorded attempts, sessions, and snapshots",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			return fmt.Errorf("refusing to delete learner data without --yes")
		}

		ctx := cmd.Context()
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		client := st.Client()
		if _, err := client.AttemptEvent.Delete().Exec(ctx); err != nil {
			return fmt.Errorf("delete attempts: %w", err)
		}
		if _, err := client.PracticeSessionEvent.Delete().Exec(ctx); err != nil {
			return fmt.Errorf("delete sessions: %w", err)
		}
		if _, err := client.Snapshot.Delete().Exec(ctx); err != nil {
			return fmt.Errorf("delete snapshots: %w", err)
		}

		fmt.Println("Learner data cleared.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Confirm deletion")
}
