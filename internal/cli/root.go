// Package cli implements the halobharat command tree. The commands are
// thin consumers of the authenticated pipeline, standing in for the mobile
// screens.
package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/manvinortechnologies/HaloBharat-Customer-sub000/internal/api"
	"github.com/manvinortechnologies/HaloBharat-Customer-sub000/internal/apperr"
	"github.com/manvinortechnologies/HaloBharat-Customer-sub000/internal/config"
	"github.com/manvinortechnologies/HaloBharat-Customer-sub000/internal/kv"
	"github.com/manvinortechnologies/HaloBharat-Customer-sub000/internal/session"
	"github.com/manvinortechnologies/HaloBharat-Customer-sub000/internal/storefront"
	"github.com/manvinortechnologies/HaloBharat-Customer-sub000/internal/version"
)

// App holds the wired client stack shared by all commands.
type App struct {
	Config  *config.Config
	Session *session.Store
	Watcher *api.SessionWatcher
	Client  *api.Client
	Store   *storefront.Service
	Log     zerolog.Logger
}

// NewRootCmd creates the root cobra command.
func NewRootCmd() *cobra.Command {
	app := &App{}
	var flags config.FlagOverrides

	cmd := &cobra.Command{
		Use:           "halobharat",
		Short:         "Command-line client for the HaloBharat storefront",
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "help" || cmd.Name() == "version" {
				return nil
			}
			cfg, err := config.Load(flags)
			if err != nil {
				return err
			}
			return app.wire(cfg)
		},
	}

	cmd.PersistentFlags().StringVar(&flags.BaseURL, "base-url", "", "API base URL")
	cmd.PersistentFlags().StringVar(&flags.Storage, "storage", "", "Credential storage backend (file, keyring, sqlite)")
	cmd.PersistentFlags().StringVar(&flags.StorageDir, "storage-dir", "", "Credential storage directory")
	cmd.PersistentFlags().StringVar(&flags.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")

	cmd.AddCommand(
		newLoginCmd(app),
		newLogoutCmd(app),
		newWhoamiCmd(app),
		newProductsCmd(app),
		newCartCmd(app),
		newOrdersCmd(app),
	)
	return cmd
}

func (a *App) wire(cfg *config.Config) error {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.WarnLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()

	backend, err := newBackend(cfg)
	if err != nil {
		return err
	}

	a.Config = cfg
	a.Log = log
	a.Session = session.New(backend, log)
	a.Watcher = api.NewSessionWatcher(a.Session, log)
	a.Watcher.RegisterExpiryNotice(func(ctx context.Context) {
		fmt.Fprintln(os.Stderr, apperr.MsgSessionExpired)
	})
	a.Watcher.RegisterLogoutHandler(func(ctx context.Context) error {
		fmt.Fprintln(os.Stderr, "Logged out. Run: halobharat login")
		return nil
	})
	a.Client = api.NewClient(cfg, a.Session, a.Watcher, log)
	a.Store = storefront.New(a.Client, a.Session)
	return nil
}

func newBackend(cfg *config.Config) (kv.Store, error) {
	switch cfg.Storage {
	case config.StorageKeyring:
		ks := kv.NewKeyringStore("halobharat")
		if !ks.Available() {
			fmt.Fprintln(os.Stderr, "warning: system keyring unavailable, falling back to file storage")
			return kv.NewFileStore(cfg.StorageDir), nil
		}
		return ks, nil
	case config.StorageSQLite:
		return kv.NewSQLiteStore(filepath.Join(cfg.StorageDir, "halobharat.db"))
	default:
		return kv.NewFileStore(cfg.StorageDir), nil
	}
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", apperr.AsError(err).Error())
		os.Exit(1)
	}
}
