package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tsotne01/css-animation-mastery/internal/config"
	"github.com/tsotne01/css-animation-mastery/internal/curriculum"
	"github.com/tsotne01/css-animation-mastery/internal/logging"
	"github.com/tsotne01/css-animation-mastery/internal/prefs"
	"github.com/tsotne01/css-animation-mastery/internal/progress"
	"github.com/tsotne01/css-animation-mastery/internal/store"
)

// cli carries what PersistentPreRunE prepares for every command.
type cli struct {
	cfg *config.Config
	log *logging.Logger
}

// state is an opened backend with both stores loaded from it.
type state struct {
	backend  store.Backend
	progress *progress.Store
	prefs    *prefs.Store
}

func (s *state) Close() error {
	return s.backend.Close()
}

func newRootCmd() *cobra.Command {
	c := &cli{}
	root := &cobra.Command{
		Use:   "cssmastery",
		Short: "Learn CSS animation in the terminal",
		Long: `CSS Animation Mastery is a terminal course on CSS transitions, keyframes,
easing, transforms and scroll-driven animation. Edit CSS in the playground and
watch it run in the browser preview.`,
		SilenceUsage:      true,
		PersistentPreRunE: c.setup,
		PersistentPostRun: func(*cobra.Command, []string) { c.teardown() },
		RunE:              c.runApp,
	}

	flags := root.PersistentFlags()
	flags.String("config", "", "Path to config.yaml (default: data dir, then working directory)")
	flags.String("db", "", "Path to the state database or file (overrides CSSMASTERY_STORAGE_PATH)")
	flags.String("backend", "", "Storage backend: sqlite, file or memory")
	flags.Int("preview-port", 0, "Preview server port, 0 picks a free one")
	flags.String("log-level", "", "Console log level: none, normal or debug")
	flags.String("tutor", "", "Tutor provider: anthropic, openai, gemini, openrouter or mock")

	root.AddCommand(
		newLessonsCmd(c),
		newProgressCmd(c),
		newCompleteCmd(c),
		newValidateCmd(c),
		newRenderCmd(),
		newPreviewCmd(c),
		newThemeCmd(c),
		newLangCmd(c),
		newVersionCmd(),
	)
	return root
}

// Execute runs the command line. SIGINT and SIGTERM cancel the command's
// context.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return newRootCmd().ExecuteContext(ctx)
}

func (c *cli) setup(cmd *cobra.Command, _ []string) error {
	if err := curriculum.Validate(); err != nil {
		return err
	}
	v := config.New()
	if err := config.BindFlags(v, cmd.Flags()); err != nil {
		return err
	}
	file, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(v, file)
	if err != nil {
		return err
	}
	log, err := logging.New(cfg.Logging(), cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	c.cfg, c.log = cfg, log
	return nil
}

func (c *cli) teardown() {
	if c.log != nil {
		_ = c.log.Close()
	}
}

// open connects the configured backend and loads progress and prefs. A
// backend that cannot be opened is replaced by memory for this run.
func (c *cli) open() (*state, error) {
	backend, err := c.openBackend()
	if err != nil {
		c.log.Debug("storage unavailable, keeping state in memory",
			zap.String("backend", c.cfg.Storage.Backend), zap.Error(err))
		backend = store.NewMemory()
	}
	return &state{
		backend:  backend,
		progress: progress.Load(backend, curriculum.TotalLessons(), c.log.Logger),
		prefs:    prefs.Load(backend, c.log.Logger),
	}, nil
}

func (c *cli) openBackend() (store.Backend, error) {
	path, err := c.cfg.StoragePath()
	if err != nil {
		return nil, fmt.Errorf("resolve storage path: %w", err)
	}
	backend, err := store.OpenBackend(store.Kind(c.cfg.Storage.Backend), path)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return backend, nil
}

// lessonArg resolves the lesson named by a positional argument.
func lessonArg(id string) (curriculum.Lesson, error) {
	l, err := curriculum.GetLesson(id)
	if err != nil {
		return curriculum.Lesson{}, fmt.Errorf("%w (see `cssmastery lessons`)", err)
	}
	return l, nil
}
