package app

import (
	"context"
	"fmt"
	"io"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ukm/parcel/internal/config"
	"github.com/ukm/parcel/internal/notify"
	"github.com/ukm/parcel/internal/orders"
	"github.com/ukm/parcel/internal/prefs"
	"github.com/ukm/parcel/internal/route"
	"github.com/ukm/parcel/internal/session"
	"github.com/ukm/parcel/internal/state"
	"github.com/ukm/parcel/internal/ui"
)

// Options configure the parcel application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/parcel/prefs.toml
	LogPath    string // overrides log_file from the config
}

// Run boots the parcel TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	closeLog, err := setupLogging(cfg, opts.LogPath)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer closeLog()

	userPrefs, _ := prefs.Load(opts.PrefsPath)

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return err
	}

	return ui.Run(ui.Options{
		Context:        ctx,
		Store:          store,
		Resolver:       route.StaticResolver{},
		Authenticator:  session.StubAuthenticator{Domain: cfg.AuthDomain},
		ToastTTL:       cfg.ToastTTL,
		RequestTimeout: cfg.RequestTimeout,
		Prefs:          userPrefs,
		PrefsPath:      opts.PrefsPath,
	})
}

func buildStore(ctx context.Context, cfg config.Config) (*state.Store, error) {
	list, err := LoadOrders(ctx, sourceFor(cfg), cfg.RequestTimeout)
	if err != nil {
		return nil, fmt.Errorf("load orders: %w", err)
	}
	store, err := state.New(state.Options{
		Orders:        list,
		Notifications: notify.Seed(),
		Authenticator: session.StubAuthenticator{Domain: cfg.AuthDomain},
		AuthTimeout:   cfg.RequestTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("init state: %w", err)
	}
	return store, nil
}

func sourceFor(cfg config.Config) orders.Source {
	if cfg.OrdersFile != "" {
		return orders.FileSource{Path: cfg.OrdersFile}
	}
	return orders.SeedSource{}
}

// setupLogging routes the standard logger to a file while the alt-screen
// owns the terminal. Without a file, log output is discarded.
func setupLogging(cfg config.Config, override string) (func(), error) {
	path := cfg.LogFile
	if override != "" {
		expanded, err := config.ExpandPath(override)
		if err != nil {
			return nil, err
		}
		path = expanded
	}
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	f, err := tea.LogToFile(path, "parcel")
	if err != nil {
		return nil, err
	}
	return func() { _ = f.Close() }, nil
}
