package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tsotne01/css-animation-mastery/internal/content"
	"github.com/tsotne01/css-animation-mastery/internal/curriculum"
)

func newProgressCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "progress",
		Short: "Show course progress",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			st, err := c.open()
			if err != nil {
				return err
			}
			defer st.Close()

			p := st.progress
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Completed: %d of %d lessons (%.0f%%)\n", p.CompletedCount(), p.TotalCount(), p.ProgressPercent())
			if id, ok := p.CurrentLessonID(); ok {
				if l, err := curriculum.GetLesson(id); err == nil {
					id = fmt.Sprintf("%s (%s)", id, content.Resolve(string(st.prefs.Language()), l).Title)
				}
				fmt.Fprintf(out, "Current:   %s\n", id)
			}
			return nil
		},
	}
	cmd.AddCommand(newResetCmd(c))
	return cmd
}

func newResetCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Forget every completed lesson and the current lesson",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if yes, _ := cmd.Flags().GetBool("yes"); !yes {
				return fmt.Errorf("refusing to reset without --yes")
			}
			st, err := c.open()
			if err != nil {
				return err
			}
			defer st.Close()

			st.progress.ResetProgress()
			fmt.Fprintln(cmd.OutOrStdout(), "Progress reset.")
			return nil
		},
	}
	cmd.Flags().BoolP("yes", "y", false, "Confirm the reset")
	return cmd
}
