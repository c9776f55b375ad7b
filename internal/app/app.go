package app

import (
	"context"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/five82/showroom/internal/catalog"
	"github.com/five82/showroom/internal/config"
	"github.com/five82/showroom/internal/logging"
	"github.com/five82/showroom/internal/logtail"
	"github.com/five82/showroom/internal/prefs"
	"github.com/five82/showroom/internal/state"
	"github.com/five82/showroom/internal/ui"
)

// Options configure the showroom application.
type Options struct {
	ConfigPath  string
	PrefsPath   string // empty uses default ~/.config/showroom/prefs.toml
	CatalogPath string // overrides the config file when set
	Platform    string // overrides prefs and config when set (web | native)
}

// Settings is the resolved startup configuration.
type Settings struct {
	Config   config.Config
	Prefs    prefs.Prefs
	Platform config.Platform
}

// Resolve loads config and prefs and applies the command-line overrides.
// Platform precedence is flag, then prefs, then config.
func Resolve(opts Options) (Settings, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return Settings{}, fmt.Errorf("load config: %w", err)
	}

	if path := strings.TrimSpace(opts.CatalogPath); path != "" {
		expanded, err := config.ExpandPath(path)
		if err != nil {
			return Settings{}, fmt.Errorf("resolve catalog path: %w", err)
		}
		cfg.CatalogPath = expanded
	}

	userPrefs, _ := prefs.Load(opts.PrefsPath)

	platform := userPrefs.PlatformOr(cfg.Platform)
	if strings.TrimSpace(opts.Platform) != "" {
		p, ok := config.ParsePlatform(opts.Platform)
		if !ok {
			return Settings{}, fmt.Errorf("unknown platform %q (want web or native)", opts.Platform)
		}
		platform = p
	}

	return Settings{Config: cfg, Prefs: userPrefs, Platform: platform}, nil
}

// Run boots the showroom TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	settings, err := Resolve(opts)
	if err != nil {
		return err
	}
	cfg := settings.Config

	logger, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	store := &state.Store{}
	store.Update(cat, nil)

	logger.Info("showroom starting",
		zap.String("company", cat.Company.Name),
		zap.Stringer("platform", settings.Platform.Modality()),
		zap.String("catalog", catalogLabel(cfg.CatalogPath)))

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)

	// The built-in catalog never changes, so only files are watched.
	if cfg.CatalogPath != "" {
		watcher := NewCatalogWatcher(cfg.CatalogPath, store, logger)
		g.Go(func() error { return watcher.Run(gctx) })
	}

	g.Go(func() error {
		defer cancel()
		return ui.Run(ui.Options{
			Context:   gctx,
			Store:     store,
			Config:    cfg,
			Platform:  settings.Platform,
			ThemeName: settings.Prefs.Theme,
			PrefsPath: opts.PrefsPath,
			Logger:    logger,
		})
	})

	return g.Wait()
}

// ValidateCatalog loads a catalog and writes a one-screen summary to w.
func ValidateCatalog(path string, w io.Writer) error {
	cat, err := catalog.Load(path)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%s: ok\n", catalogLabel(path))
	fmt.Fprintf(w, "company: %s\n", cat.Company.Name)
	fmt.Fprintf(w, "categories: %d, products: %d\n", len(cat.Categories), cat.ProductCount())
	for _, category := range cat.Categories {
		fmt.Fprintf(w, "  %s %s (%d)\n", category.ID, category.Name, len(category.Products))
		for _, p := range category.Products {
			fmt.Fprintf(w, "    - %s: %d image(s)\n", p.Name, len(p.Images))
		}
	}
	return nil
}

// ShowLogs writes the last n lines of the configured log file to w. Entries
// are formatted unless raw is set.
func ShowLogs(opts Options, n int, raw bool, w io.Writer) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if cfg.LogFile == "" {
		return fmt.Errorf("logging is disabled (log_file is empty)")
	}
	lines, err := logtail.Read(cfg.LogFile, n)
	if err != nil {
		return err
	}
	for _, line := range lines {
		if !raw {
			line = logtail.Format(line)
		}
		fmt.Fprintln(w, line)
	}
	return nil
}

func catalogLabel(path string) string {
	if strings.TrimSpace(path) == "" {
		return "built-in catalog"
	}
	return path
}
