package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCompleteCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "complete <lesson-id>",
		Short: "Mark a lesson as completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := lessonArg(args[0])
			if err != nil {
				return err
			}
			st, err := c.open()
			if err != nil {
				return err
			}
			defer st.Close()

			if undo, _ := cmd.Flags().GetBool("undo"); undo {
				st.progress.MarkIncomplete(l.ID)
				fmt.Fprintf(cmd.OutOrStdout(), "Marked %s as not completed.\n", l.ID)
				return nil
			}
			st.progress.MarkComplete(l.ID)
			fmt.Fprintf(cmd.OutOrStdout(), "Marked %s as completed (%d of %d).\n",
				l.ID, st.progress.CompletedCount(), st.progress.TotalCount())
			return nil
		},
	}
	cmd.Flags().Bool("undo", false, "Mark the lesson as not completed instead")
	return cmd
}
