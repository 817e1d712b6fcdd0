package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tsotne01/css-animation-mastery/internal/preview"
	"github.com/tsotne01/css-animation-mastery/internal/watch"
)

func newPreviewCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview <lesson-id> [file]",
		Short: "Serve the preview of a lesson without the TUI",
		Long: `Serve the preview surface for a lesson until interrupted. The CSS comes
from file, or is the lesson's starter code. With --watch the page reloads
every time file is saved.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := lessonArg(args[0])
			if err != nil {
				return err
			}
			watching, _ := cmd.Flags().GetBool("watch")
			if watching && len(args) < 2 {
				return fmt.Errorf("--watch needs a file")
			}
			if len(args) == 2 && args[1] == "-" {
				return fmt.Errorf("preview reads a file, not stdin")
			}

			ctx := cmd.Context()
			log := c.log.Logger
			srv := preview.NewServer(preview.ServerConfig{Host: c.cfg.Preview.Host, Port: c.cfg.Preview.Port}, log.Named("preview"))
			if err := srv.Start(ctx); err != nil {
				return err
			}
			defer srv.Close()

			r := preview.NewRenderer(srv, l.Fragment(), log)
			load := func() error {
				css, err := readCSS(cmd, l, args[1:])
				if err != nil {
					return err
				}
				r.Apply(ctx, css)
				return nil
			}
			if err := load(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Preview of %s at %s\n", l.ID, srv.URL())
			fmt.Fprintln(cmd.OutOrStdout(), "Press Ctrl+C to stop.")

			if !watching {
				<-ctx.Done()
				return nil
			}
			fw, err := watch.New(args[1], watch.DefaultDelay, log)
			if err != nil {
				return err
			}
			return fw.Run(ctx, func() {
				if err := load(); err != nil {
					log.Warn("reload failed", zap.Error(err))
					return
				}
				log.Info("reloaded", zap.String("file", args[1]))
			})
		},
	}
	cmd.Flags().BoolP("watch", "w", false, "Re-render whenever the file changes")
	return cmd
}
