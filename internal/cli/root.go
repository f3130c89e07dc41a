package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"svw.info/sudokuterm/internal/domain"
	"svw.info/sudokuterm/internal/generator"
	"svw.info/sudokuterm/internal/hint"
	"svw.info/sudokuterm/internal/infrastructure/config"
	"svw.info/sudokuterm/internal/infrastructure/storage"
	"svw.info/sudokuterm/internal/ports"
	"svw.info/sudokuterm/internal/solver"
	"svw.info/sudokuterm/internal/usecase"
	"svw.info/sudokuterm/internal/validator"
)

// app carries the wired service across subcommands.
type app struct {
	cfg    *config.Config
	log    *logrus.Logger
	closer io.Closer
	svc    *usecase.Service
}

// NewRoot builds the command tree. Wiring happens once in the persistent
// pre-run so every subcommand sees the same service.
func NewRoot() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "sudokuterm",
		Short:         "Terminal Sudoku with puzzle generation and per-player statistics",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			a.teardown()
		},
	}
	root.AddCommand(a.playCmd(), a.generateCmd(), a.solveCmd(), a.statsCmd())
	return root
}

func (a *app) setup() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log, closer, err := config.NewLogger(cfg)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = log
	a.closer = closer

	var s ports.Solver
	switch strings.ToLower(strings.TrimSpace(cfg.Solver)) {
	case "dlx":
		s = solver.NewDLX()
	case "", "backtrack", "backtracking":
		s = solver.NewBacktracking()
	default:
		return fmt.Errorf("unknown solver %q (want backtrack or dlx)", cfg.Solver)
	}

	var gen ports.Generator
	if cfg.UniqueCarve {
		gen = generator.NewUnique(s)
	} else {
		gen = generator.New()
	}

	var store ports.StatsStore
	switch strings.ToLower(strings.TrimSpace(cfg.Store)) {
	case "redis":
		store = storage.NewRedis(config.NewRedisClient(cfg))
	case "", "file":
		store = storage.NewFS(cfg.DataDir)
	default:
		return fmt.Errorf("unknown store %q (want file or redis)", cfg.Store)
	}

	a.svc = usecase.NewService(s, gen, validator.New(), hint.NewSingles(), store, log)
	return nil
}

func (a *app) teardown() {
	if a.closer != nil {
		a.closer.Close()
	}
}

// geometry resolves box dimension flags against configured defaults.
func (a *app) geometry(boxWidth, boxHeight int) (domain.Geometry, error) {
	if boxWidth == 0 {
		boxWidth = a.cfg.Board.BoxWidth
	}
	if boxHeight == 0 {
		boxHeight = a.cfg.Board.BoxHeight
	}
	return domain.NewGeometry(boxWidth, boxHeight)
}
