package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/CrestNiraj12/terminalreels/domain"
	"github.com/CrestNiraj12/terminalreels/infra/config"
	"github.com/CrestNiraj12/terminalreels/infra/editor"
	"github.com/CrestNiraj12/terminalreels/infra/logging"
	"github.com/CrestNiraj12/terminalreels/infra/mock"
	"github.com/CrestNiraj12/terminalreels/store"
	"github.com/CrestNiraj12/terminalreels/tui"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "terminalreels",
		Short:         "Browse a short-video feed from the terminal",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), configPath)
		},
	}
	root.Flags().StringVarP(&configPath, "config", "c", "", "path to config.toml (default: $TERMINALREELS_CONFIG or ~/.config/terminalreels/config.toml)")

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			v, c, d := resolvedRuntimeVersionInfo(version, commit, date)
			fmt.Fprintf(cmd.OutOrStdout(), "TerminalReels %s\ncommit: %s\nbuilt: %s\n", v, c, d)
		},
	})
	return root
}

func resolveVersionInfo(v, c, d, moduleVersion string, settings map[string]string) (string, string, string) {
	if v == "dev" {
		mv := strings.TrimSpace(moduleVersion)
		if mv != "" && mv != "(devel)" {
			v = mv
		}
	}
	if c == "none" {
		rev := strings.TrimSpace(settings["vcs.revision"])
		if rev != "" {
			if len(rev) > 12 {
				rev = rev[:12]
			}
			c = rev
		}
	}
	if d == "unknown" {
		t := strings.TrimSpace(settings["vcs.time"])
		if t != "" {
			d = t
		}
	}
	return v, c, d
}

func buildSettingsMap(in []debug.BuildSetting) map[string]string {
	out := make(map[string]string, len(in))
	for _, s := range in {
		out[s.Key] = s.Value
	}
	return out
}

func resolvedRuntimeVersionInfo(v, c, d string) (string, string, string) {
	info, ok := debug.ReadBuildInfo()
	if !ok || info == nil {
		return v, c, d
	}
	return resolveVersionInfo(v, c, d, info.Main.Version, buildSettingsMap(info.Settings))
}

func run(ctx context.Context, configPath string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	// 1. Load config from file and environment.
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	// 2. Build infrastructure.
	log, logFile, err := logging.Open(cfg.LogPath, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	defer logFile.Close()
	log.WithField("version", version).Info("starting")

	source := mock.New(mock.WithLatency(cfg.MockLatency))
	scope := store.NewScope(func() *store.Store {
		return store.New(source, store.WithLogger(log), store.WithFeedLimit(cfg.FeedLimit))
	})

	// 3. Wire root TUI model.
	app := tui.NewApp(ctx, tui.Deps{
		Scope:  scope,
		Editor: editor.NewEnvEditor(),
		User:   domain.User{ID: "local-" + cfg.Username, Username: cfg.Username},
		Log:    log,
	})

	// 4. Run.
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := p.Run()
	if m, ok := final.(tui.App); ok {
		m.Close()
	} else {
		app.Close()
	}
	if err != nil {
		return fmt.Errorf("terminalreels: %w", err)
	}
	return nil
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
