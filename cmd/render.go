package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tsotne01/css-animation-mastery/internal/preview"
)

func newRenderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "render <lesson-id> [file|-]",
		Short: "Print the preview document for a lesson",
		Long: `Print the complete HTML document the preview would show for a lesson:
the base styles, the CSS and the lesson's demo markup. The CSS is read as
for validate.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := lessonArg(args[0])
			if err != nil {
				return err
			}
			css, err := readCSS(cmd, l, args[1:])
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), preview.BuildDocument(css, l.Fragment()))
			return err
		},
	}
}
