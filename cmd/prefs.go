package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tsotne01/css-animation-mastery/internal/content"
	"github.com/tsotne01/css-animation-mastery/internal/prefs"
)

func newThemeCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:       "theme [dark|light|toggle]",
		Short:     "Show or change the colour theme",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"dark", "light", "toggle"},
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := c.open()
			if err != nil {
				return err
			}
			defer st.Close()

			if len(args) == 1 {
				if args[0] == "toggle" {
					st.prefs.ToggleTheme()
				} else {
					t, err := prefs.ParseTheme(args[0])
					if err != nil {
						return err
					}
					st.prefs.SetTheme(t)
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), st.prefs.Theme())
			return nil
		},
	}
}

func newLangCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:       "lang [en|ka|toggle]",
		Short:     "Show or change the interface language",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: append(content.Languages(), "toggle"),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := c.open()
			if err != nil {
				return err
			}
			defer st.Close()

			if len(args) == 1 {
				if args[0] == "toggle" {
					st.prefs.ToggleLanguage()
				} else {
					l, err := prefs.ParseLanguage(args[0])
					if err != nil {
						return err
					}
					st.prefs.SetLanguage(l)
				}
			}
			lang := string(st.prefs.Language())
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", lang, content.T(lang, "language."+lang))
			return nil
		},
	}
}
