package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tsotne01/css-animation-mastery/internal/app"
	"github.com/tsotne01/css-animation-mastery/internal/llm"
	"github.com/tsotne01/css-animation-mastery/internal/preview"
	"github.com/tsotne01/css-animation-mastery/internal/screen"
	"github.com/tsotne01/css-animation-mastery/internal/tutor"
)

// runApp opens the stores, starts the preview server and tutor, and
// launches the TUI.
func (c *cli) runApp(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	st, err := c.open()
	if err != nil {
		return err
	}
	defer st.Close()

	log := c.log.Logger
	env := &screen.Env{
		Progress: st.progress,
		Prefs:    st.prefs,
		Surface:  &preview.RecordingSurface{},
		Log:      log,
	}

	if c.cfg.Preview.Enabled {
		srv := preview.NewServer(preview.ServerConfig{Host: c.cfg.Preview.Host, Port: c.cfg.Preview.Port}, log.Named("preview"))
		if err := srv.Start(ctx); err != nil {
			return err
		}
		defer srv.Close()
		env.Surface = srv
		env.PreviewURL = srv.URL()
	}

	if c.cfg.Tutor.Enabled() {
		provider, err := llm.NewProvider(ctx, c.cfg.Tutor, log)
		if err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), "Tutor not configured:", err)
			fmt.Fprintln(cmd.ErrOrStderr(), "AI hints will be unavailable.")
		} else {
			svc := tutor.NewService(provider, tutor.DefaultConfig(), log)
			defer svc.Cancel()
			env.Tutor = svc
		}
	}

	log.Info("starting",
		zap.String("backend", c.cfg.Storage.Backend),
		zap.String("preview", env.PreviewURL),
		zap.Bool("tutor", env.Tutor != nil))
	return app.Run(ctx, env)
}
