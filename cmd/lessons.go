package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/tsotne01/css-animation-mastery/internal/content"
	"github.com/tsotne01/css-animation-mastery/internal/curriculum"
)

func newLessonsCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lessons",
		Short: "List the course lessons with completion marks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			module, _ := cmd.Flags().GetString("module")
			return c.listLessons(cmd, module)
		},
	}
	cmd.Flags().String("module", "", "Only list lessons of this module id")
	return cmd
}

func (c *cli) listLessons(cmd *cobra.Command, module string) error {
	st, err := c.open()
	if err != nil {
		return err
	}
	defer st.Close()

	modules := curriculum.Modules()
	if module != "" {
		m, ok := curriculum.GetModule(module)
		if !ok {
			return fmt.Errorf("unknown module %q", module)
		}
		modules = []curriculum.Module{m}
	}

	lang := string(st.prefs.Language())
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	for i, m := range modules {
		if i > 0 {
			fmt.Fprintln(w)
		}
		done, total := curriculum.ModuleProgress(m.ID, st.progress.IsComplete)
		fmt.Fprintf(w, "%s %s\t%d/%d\n", m.Icon, m.Title, done, total)
		for _, l := range m.Lessons {
			mark := " "
			if st.progress.IsComplete(l.ID) {
				mark = "✓"
			}
			title := content.Resolve(lang, l).Title
			if l.IsChallenge() {
				title += " ★"
			}
			fmt.Fprintf(w, "  [%s] %s\t%s\n", mark, l.ID, title)
		}
	}
	return w.Flush()
}
