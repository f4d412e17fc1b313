package app

import (
	"context"
	"fmt"
	"io"
	"os"

	appconfig "github.com/doeshing/typecmd/internal/application/config"
	"github.com/doeshing/typecmd/internal/application/doctor"
	"github.com/doeshing/typecmd/internal/application/session"
	"github.com/doeshing/typecmd/internal/domain"
	"github.com/doeshing/typecmd/internal/infrastructure/config"
	"github.com/doeshing/typecmd/internal/infrastructure/console"
	"github.com/doeshing/typecmd/internal/infrastructure/history"
	"github.com/doeshing/typecmd/internal/pkg/filesystem"
	"github.com/doeshing/typecmd/internal/pkg/logger"
	"github.com/doeshing/typecmd/internal/ports"
	"github.com/doeshing/typecmd/internal/version"
)

// Options are the command line overrides applied on top of the config file.
type Options struct {
	ConfigPath  string
	HistoryFile string
	MaxHistory  int
	NoColor     bool
	Verbose     bool
	Out         io.Writer
	LogOut      io.Writer
	// Exit terminates the process on the exit command. Defaults to os.Exit.
	Exit func(code int)
}

// Container wires up application services with infrastructure adapters.
type Container struct {
	Config       domain.Config
	ConfigLoader *config.FileLoader
	Logger       ports.Logger
	Console      *console.ColorConsole
	HistoryStore ports.HistoryRepository
	History      *history.Manager
	Session      *session.Session
}

// BuildContainer constructs the dependency graph.
func BuildContainer(ctx context.Context, opts Options) (*Container, error) {
	cfgLoader := config.NewFileLoader(opts.ConfigPath)
	cfg, err := cfgLoader.Load(ctx)
	if err != nil {
		return nil, err
	}
	applyOverrides(&cfg, opts)
	if err := appconfig.Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgLoader.Path(), err)
	}

	log := logger.New(opts.Verbose, opts.LogOut)
	log.Debug("config loaded", map[string]interface{}{
		"path":    cfgLoader.Path(),
		"backend": cfg.History.Backend,
		"history": cfg.History.File,
	})

	store, err := OpenHistoryStore(cfg.History)
	if err != nil {
		return nil, err
	}
	manager, err := history.NewManager(store, cfg.History.MaxSize)
	if err != nil {
		CloseHistoryStore(store)
		return nil, err
	}

	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	con := console.New(out, cfg.Display.Color)

	sess := session.New(manager, session.Options{
		Version: version.Version,
		Console: con,
		Logger:  log,
		Exit:    opts.Exit,
	})

	return &Container{
		Config:       cfg,
		ConfigLoader: cfgLoader,
		Logger:       log,
		Console:      con,
		HistoryStore: store,
		History:      manager,
		Session:      sess,
	}, nil
}

// Close releases the history backend.
func (c *Container) Close() error {
	return CloseHistoryStore(c.HistoryStore)
}

func applyOverrides(cfg *domain.Config, opts Options) {
	if opts.HistoryFile != "" {
		cfg.History.File = filesystem.ExpandPath(opts.HistoryFile)
	}
	if opts.MaxHistory != 0 {
		cfg.History.MaxSize = opts.MaxHistory
	}
	if opts.NoColor {
		cfg.Display.Color = false
	}
}

// OpenHistoryStore opens the repository selected by settings.
func OpenHistoryStore(settings domain.HistorySettings) (ports.HistoryRepository, error) {
	if settings.UsesSQLite() {
		return history.NewSQLiteStore(settings.File)
	}
	return history.NewFileStore(settings.File), nil
}

// CloseHistoryStore releases store when it holds resources.
func CloseHistoryStore(store ports.HistoryRepository) error {
	if closer, ok := store.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

// NewDoctorService builds diagnostics over the config selected by opts.
// Unlike BuildContainer it never fails, so a broken setup can be inspected.
func NewDoctorService(opts Options, terminal func() bool) *doctor.Service {
	return &doctor.Service{
		ConfigProvider: overridingProvider{loader: config.NewFileLoader(opts.ConfigPath), opts: opts},
		OpenHistory:    OpenHistoryStore,
		Terminal:       terminal,
	}
}

type overridingProvider struct {
	loader *config.FileLoader
	opts   Options
}

func (p overridingProvider) Load(ctx context.Context) (domain.Config, error) {
	cfg, err := p.loader.Load(ctx)
	if err != nil {
		return cfg, err
	}
	applyOverrides(&cfg, p.opts)
	return cfg, nil
}
