package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tsotne01/css-animation-mastery/internal/challenge"
	"github.com/tsotne01/css-animation-mastery/internal/cssinfo"
	"github.com/tsotne01/css-animation-mastery/internal/curriculum"
)

// errNotPassed makes a failed challenge exit non-zero.
var errNotPassed = errors.New("challenge not passed")

func newValidateCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <lesson-id> [file|-]",
		Short: "Check CSS against a challenge lesson",
		Long: `Check CSS against the requirements of a challenge lesson. The CSS is read
from file, from stdin when file is "-", or is the lesson's starter code when
file is omitted.`,
		Args: cobra.RangeArgs(1, 2),
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

			rules, ok := challenge.For(l.ID, string(st.prefs.Language()))
			if !ok {
				return fmt.Errorf("lesson %s is not a challenge", l.ID)
			}
			css, err := readCSS(cmd, l, args[1:])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if outline, _ := cmd.Flags().GetBool("outline"); outline {
				for _, line := range cssinfo.Parse(css, c.log.Logger).Lines() {
					fmt.Fprintln(out, line)
				}
				fmt.Fprintln(out)
			}

			res := rules.Validate(css)
			if res.Valid {
				fmt.Fprintln(out, "✓", res.Message)
				return nil
			}
			fmt.Fprintln(out, "✗", res.Message)
			return errNotPassed
		},
	}
	cmd.Flags().Bool("outline", false, "Print the rules and animated properties found in the CSS")
	return cmd
}

// readCSS returns the CSS named by the optional file argument: a path,
// "-" for stdin, or nothing for the lesson's starter code.
func readCSS(cmd *cobra.Command, l curriculum.Lesson, args []string) (string, error) {
	if len(args) == 0 {
		return l.DefaultCSS, nil
	}
	var (
		data []byte
		err  error
	)
	if args[0] == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(args[0])
	}
	if err != nil {
		return "", fmt.Errorf("read css: %w", err)
	}
	return strings.TrimPrefix(string(data), "\ufeff"), nil
}
